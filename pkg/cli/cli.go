package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/monogate/pkg/cli/config"
	"github.com/m-mizutani/monogate/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var logger *slog.Logger

	app := &cli.Command{
		Name:    "monogate",
		Usage:   "Monorepo package registration gate for git pre-commit hooks",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdCheck(),
			cmdAudit(),
			cmdInstall(),
			cmdUninstall(),
		},
		// A bare "monogate" from .git/hooks/pre-commit runs the gate.
		DefaultCommand: "check",
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, types.ErrChecksFailed) {
			// The report is already on stdout; only the exit code matters.
			return err
		}
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
