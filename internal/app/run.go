package app

import (
	"context"
	"fmt"

	"github.com/vk/bookbind/internal/ctxlog"
)

// Run hands the configured job to the rearranger.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	job := Job{
		Source:            a.config.Source,
		Dest:              a.config.Dest,
		PagesPerSignature: a.config.PagesPerSignature,
	}
	a.logger.Info("Booklet job resolved.",
		"source", job.Source,
		"dest", job.Dest,
		"pages_per_signature", job.PagesPerSignature,
		"sheets_per_signature", job.SheetsPerSignature(),
	)

	if a.rearranger == nil {
		a.logger.Warn("No page rearranger configured, nothing written.", "dest", job.Dest)
		return nil
	}

	if err := a.rearranger.Rearrange(ctx, job); err != nil {
		return fmt.Errorf("rearrange failed: %w", err)
	}
	a.logger.Info("Booklet written.", "dest", job.Dest)

	a.logger.Debug("App.Run method finished.")
	return nil
}
