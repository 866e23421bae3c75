package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config controls how the join subcommand groups lines into records.
type Config struct {
	// StartPatterns are regular expressions identifying the first line of a record.
	StartPatterns []string `toml:"start-patterns"`
	// Separator is inserted between joined lines.
	Separator string `toml:"separator"`
}

func DefaultConfig() Config {
	return Config{
		// Anything that doesn't begin with whitespace starts a new record.
		StartPatterns: []string{`^\S`},
		Separator:     " ",
	}
}

func LoadConfig(pathname string) (Config, error) {
	data, err := os.ReadFile(pathname)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			return Config{}, fmt.Errorf("%v:\n%s", err, derr.String())
		}
		return Config{}, err
	}
	if len(cfg.StartPatterns) == 0 {
		return Config{}, fmt.Errorf("%s: at least one start pattern is required", pathname)
	}
	return cfg, nil
}
