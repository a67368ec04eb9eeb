package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/emberwood-game/emberwood/pkg/state"
	"github.com/emberwood-game/emberwood/pkg/world"
)

// FileStorage implements the Storage interface using a JSON file for the save
// slot and the filesystem for authored world resources.
type FileStorage struct {
	savePath string
	dataDir  string
	logger   *slog.Logger
}

// Ensure FileStorage implements Storage interface
var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates a new file storage instance.
func NewFileStorage(savePath, dataDir string, logger *slog.Logger) *FileStorage {
	if dataDir == "" {
		dataDir = "./data"
	}
	return &FileStorage{
		savePath: savePath,
		dataDir:  dataDir,
		logger:   logger,
	}
}

// Health and lifecycle methods

func (f *FileStorage) Ping(ctx context.Context) error {
	if _, err := os.Stat(f.dataDir); err != nil {
		return fmt.Errorf("data dir not accessible: %w", err)
	}
	return nil
}

func (f *FileStorage) Close() error {
	return nil
}

// Save slot operations (JSON file)

func (f *FileStorage) SaveGame(ctx context.Context, sf *state.SaveFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		f.logger.Error("Failed to marshal save file", "error", err)
		return fmt.Errorf("failed to marshal save file: %w", err)
	}

	if err := os.WriteFile(f.savePath, data, 0o644); err != nil {
		f.logger.Error("Failed to write save file", "path", f.savePath, "error", err)
		return fmt.Errorf("failed to write save file: %w", err)
	}

	f.logger.Debug("Game saved", "path", f.savePath, "id", sf.ID)
	return nil
}

func (f *FileStorage) LoadGame(ctx context.Context) (*state.SaveFile, error) {
	data, err := os.ReadFile(f.savePath)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Warn("Save file not found", "path", f.savePath)
			return nil, ErrSaveNotFound
		}
		f.logger.Error("Failed to read save file", "path", f.savePath, "error", err)
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	var sf state.SaveFile
	if err := json.Unmarshal(data, &sf); err != nil {
		f.logger.Error("Failed to unmarshal save file", "path", f.savePath, "error", err)
		return nil, fmt.Errorf("failed to unmarshal save file: %w", err)
	}

	return &sf, nil
}

func (f *FileStorage) DeleteGame(ctx context.Context) error {
	if err := os.Remove(f.savePath); err != nil && !os.IsNotExist(err) {
		f.logger.Error("Failed to delete save file", "path", f.savePath, "error", err)
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}

// World operations (filesystem-backed)

func (f *FileStorage) GetWorld(ctx context.Context, filename string) (*world.Definition, error) {
	path := filepath.Join(f.dataDir, "worlds", filename)
	f.logger.Debug("Loading world", "filename", filename, "full_path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Error("World file not found", "path", path)
			return nil, fmt.Errorf("world not found: %s", filename)
		}
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}

	var def world.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal world: %w", err)
	}

	return &def, nil
}

func (f *FileStorage) ListWorlds(ctx context.Context) (map[string]string, error) {
	worldsDir := filepath.Join(f.dataDir, "worlds")
	worlds := make(map[string]string)

	err := filepath.WalkDir(worldsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			f.logger.Warn("Failed to read world file", "path", path, "error", err)
			return nil
		}

		var def world.Definition
		if err := yaml.Unmarshal(data, &def); err != nil {
			f.logger.Warn("Failed to unmarshal world file", "path", path, "error", err)
			return nil
		}

		worlds[def.Name] = filepath.Base(path)
		return nil
	})
	if err != nil {
		f.logger.Error("Failed to walk worlds directory", "error", err)
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}

	return worlds, nil
}
