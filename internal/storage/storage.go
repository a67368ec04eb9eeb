package storage

import (
	"context"
	"errors"

	"github.com/emberwood-game/emberwood/pkg/state"
	"github.com/emberwood-game/emberwood/pkg/world"
)

// ErrSaveNotFound is returned by LoadGame when no save file exists yet.
var ErrSaveNotFound = errors.New("save file not found")

// Storage defines a unified interface for all storage operations:
// save-slot persistence plus authored world resources (filesystem-backed).
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Save slot operations. SaveGame is a plain overwrite of the single
	// slot; atomicity is not guaranteed.
	SaveGame(ctx context.Context, sf *state.SaveFile) error
	LoadGame(ctx context.Context) (*state.SaveFile, error)
	DeleteGame(ctx context.Context) error

	// World operations (filesystem-backed)
	GetWorld(ctx context.Context, filename string) (*world.Definition, error)
	ListWorlds(ctx context.Context) (map[string]string, error)
}
