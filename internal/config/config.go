package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/emberwood-game/emberwood/pkg/world"
)

// Config is the environment-driven runtime configuration.
type Config struct {
	Environment string
	LogLevel    slog.Level

	// DataDir holds authored world files (DataDir/worlds/*.yaml).
	DataDir string
	// WorldFile is the world to load, relative to DataDir/worlds.
	WorldFile string
	// SavePath is the single save slot. Saves are a plain overwrite.
	SavePath string

	SpawnMode   world.SpawnMode
	SpawnChance float64
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DataDir:     getEnv("DATA_DIR", "./data"),
		WorldFile:   getEnv("WORLD_FILE", "emberwood.yaml"),
		SavePath:    getEnv("SAVE_PATH", "./savegame.json"),
		SpawnMode:   parseSpawnMode(getEnv("SPAWN_MODE", string(world.SpawnOnEntry))),
		SpawnChance: parseChance(getEnv("SPAWN_CHANCE", "")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseSpawnMode(mode string) world.SpawnMode {
	if world.SpawnMode(mode) == world.SpawnOnce {
		return world.SpawnOnce
	}
	return world.SpawnOnEntry
}

func parseChance(s string) float64 {
	c, err := strconv.ParseFloat(s, 64)
	if err != nil || c <= 0 || c > 1 {
		return world.DefaultSpawnChance
	}
	return c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
