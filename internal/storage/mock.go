package storage

import (
	"context"
	"fmt"

	"github.com/emberwood-game/emberwood/pkg/state"
	"github.com/emberwood-game/emberwood/pkg/world"
)

// MockStorage is an in-memory Storage for tests.
type MockStorage struct {
	Save   *state.SaveFile
	Worlds map[string]*world.Definition

	// Error overrides, applied when set.
	SaveErr   error
	LoadErr   error
	DeleteErr error
	WorldErr  error
}

var _ Storage = (*MockStorage)(nil)

func NewMockStorage() *MockStorage {
	return &MockStorage{
		Worlds: make(map[string]*world.Definition),
	}
}

func (m *MockStorage) Ping(ctx context.Context) error { return nil }
func (m *MockStorage) Close() error                   { return nil }

func (m *MockStorage) SaveGame(ctx context.Context, sf *state.SaveFile) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Save = sf
	return nil
}

func (m *MockStorage) LoadGame(ctx context.Context) (*state.SaveFile, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Save == nil {
		return nil, ErrSaveNotFound
	}
	return m.Save, nil
}

func (m *MockStorage) DeleteGame(ctx context.Context) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Save = nil
	return nil
}

func (m *MockStorage) GetWorld(ctx context.Context, filename string) (*world.Definition, error) {
	if m.WorldErr != nil {
		return nil, m.WorldErr
	}
	def, ok := m.Worlds[filename]
	if !ok {
		return nil, fmt.Errorf("world not found: %s", filename)
	}
	return def, nil
}

func (m *MockStorage) ListWorlds(ctx context.Context) (map[string]string, error) {
	if m.WorldErr != nil {
		return nil, m.WorldErr
	}
	out := make(map[string]string, len(m.Worlds))
	for filename, def := range m.Worlds {
		out[def.Name] = filename
	}
	return out, nil
}
