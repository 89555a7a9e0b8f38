package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Source            string
	Dest              string
	PagesPerSignature int

	LogLevel  string
	LogFormat string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Source == "" {
		return nil, errors.New("Source is a required configuration field and cannot be empty")
	}
	if cfg.Dest == "" {
		return nil, errors.New("Dest is a required configuration field and cannot be empty")
	}
	if cfg.PagesPerSignature <= 0 || cfg.PagesPerSignature%8 != 0 {
		return nil, fmt.Errorf("PagesPerSignature must be a positive multiple of 8, got %d", cfg.PagesPerSignature)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if err := validateLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}

	return &cfg, nil
}
