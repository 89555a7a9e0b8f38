package app

import (
	"context"
	"io"
	"log/slog"
)

// Job is the unit of work handed to a Rearranger.
type Job struct {
	Source            string
	Dest              string
	PagesPerSignature int
}

// SheetsPerSignature is the number of physical sheets folded into one
// signature. Each folded sheet carries four pages.
func (j Job) SheetsPerSignature() int {
	return j.PagesPerSignature / 4
}

// Rearranger reorders the pages of a document into booklet signatures.
type Rearranger interface {
	Rearrange(ctx context.Context, job Job) error
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	rearranger Rearranger
}

// NewApp is the constructor for the main application. It builds an isolated
// logger writing to outW. r may be nil, in which case Run only reports the
// job it would have performed.
func NewApp(outW io.Writer, cfg *Config, r Rearranger) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:       outW,
		logger:     logger,
		config:     cfg,
		rearranger: r,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
