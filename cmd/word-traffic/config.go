package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lixenwraith/word-traffic/engine"
)

// Environment variables read after the optional .env file is loaded
const (
	EnvLogLevel     = "WORD_TRAFFIC_LOG_LEVEL"
	EnvListen       = "WORD_TRAFFIC_LISTEN"
	EnvMaxCars      = "WORD_TRAFFIC_MAX_CARS"
	EnvCarsPerLevel = "WORD_TRAFFIC_CARS_PER_LEVEL"
)

// appConfig is the resolved startup configuration
type appConfig struct {
	Game     engine.Config
	Listen   string
	LogLevel string
}

// loadConfig merges defaults, environment and the listen flag, then validates the game tuning
func loadConfig(listenFlag string) (appConfig, error) {
	cfg := appConfig{
		Game:     engine.DefaultConfig(),
		Listen:   getEnv(EnvListen, ""),
		LogLevel: getEnv(EnvLogLevel, ""),
	}
	if listenFlag != "" {
		cfg.Listen = listenFlag
	}

	if err := envInt(EnvMaxCars, &cfg.Game.MaxEntities); err != nil {
		return cfg, err
	}
	if err := envInt(EnvCarsPerLevel, &cfg.Game.CarsPerLevel); err != nil {
		return cfg, err
	}

	if err := cfg.Game.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt overwrites dst when key is set; a malformed value is an error
func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
