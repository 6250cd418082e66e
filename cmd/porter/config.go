package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kuandriy/porter/internal/batch"
	"github.com/kuandriy/porter/internal/persist"
)

// config matches the YAML config file structure.
type config struct {
	Workers   int    `yaml:"workers"`
	ChunkSize int    `yaml:"chunk_size"`
	CacheSize int64  `yaml:"cache_size"`
	LogLevel  string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		Workers:   runtime.NumCPU(),
		ChunkSize: batch.DefaultChunkSize,
		LogLevel:  "info",
	}
}

// defaultConfigPath resolves porter.yaml next to the binary.
func defaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		exe = "."
	}
	return filepath.Join(filepath.Dir(exe), "porter.yaml")
}

// loadConfig overlays the keys present in the file at path onto the
// defaults. A missing file is not an error unless the user named it
// explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()
	if explicit && !persist.Exists(path) {
		return cfg, fmt.Errorf("config %s not found", path)
	}
	if err := persist.Load(path, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("load config: %w", err)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return defaultConfig(), fmt.Errorf("config log_level: %w", err)
	}
	return cfg, nil
}

// newLogger builds the production zap logger at the configured level.
func newLogger(cfg config, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func (c config) batchOptions(log *zap.Logger) []batch.Option {
	return []batch.Option{
		batch.WithWorkers(c.Workers),
		batch.WithChunkSize(c.ChunkSize),
		batch.WithCache(c.CacheSize),
		batch.WithLogger(log),
	}
}
