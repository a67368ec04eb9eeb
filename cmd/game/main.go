package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emberwood-game/emberwood/internal/config"
	"github.com/emberwood-game/emberwood/internal/logger"
	"github.com/emberwood-game/emberwood/internal/storage"
	"github.com/emberwood-game/emberwood/pkg/state"
	"github.com/emberwood-game/emberwood/pkg/world"
)

func main() {
	reset := flag.Bool("reset", false, "delete the existing save slot and start fresh")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg)

	store := storage.NewFileStorage(cfg.SavePath, cfg.DataDir, log)
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	ctx := context.Background()
	if err := store.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Data directory not available: %v\n", err)
		os.Exit(1)
	}

	if *reset {
		if err := store.DeleteGame(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reset save slot: %v\n", err)
			os.Exit(1)
		}
	}

	def, err := store.GetWorld(ctx, cfg.WorldFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load world %q: %v\n", cfg.WorldFile, err)
		os.Exit(1)
	}

	spawner := world.NewSpawner(time.Now().UnixNano(), cfg.SpawnChance, cfg.SpawnMode)
	gs, err := state.New(def, spawner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build world: %v\n", err)
		os.Exit(1)
	}

	log.Info("Starting game", "world", def.Name, "save_path", cfg.SavePath, "spawn_mode", cfg.SpawnMode)

	p := tea.NewProgram(NewGameUI(gs, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
