package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/bookbind/internal/app"
	"github.com/vk/bookbind/internal/cli"
)

// main is the entrypoint for the bookbind application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[0], os.Args[1:], os.Environ()); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			msg := exitErr.Message
			if !strings.HasSuffix(msg, "\n") {
				msg += "\n"
			}
			fmt.Fprint(os.Stderr, msg)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Help goes to outW, logs go to errW.
func run(outW, errW io.Writer, programPath string, args, environ []string) error {
	ctx := context.Background()

	settings, err := app.LoadSettingsFromEnv(ctx, environ)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	interp := cli.New(programPath, args)
	outcome := interp.Parse()
	switch outcome.Kind {
	case cli.Help:
		fmt.Fprint(outW, interp.String())
		return nil
	case cli.Failure:
		return cli.UsageError(interp)
	}

	cfg, err := app.NewConfig(app.Config{
		Source:            outcome.Config.Source,
		Dest:              outcome.Config.Dest,
		PagesPerSignature: outcome.Config.PagesPerSignature,
		LogLevel:          settings.LogLevel,
		LogFormat:         settings.LogFormat,
	})
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}

	// Page rearrangement is provided by an external collaborator; without
	// one the app reports the resolved job.
	return app.NewApp(errW, cfg, nil).Run(ctx)
}
