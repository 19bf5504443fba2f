package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/monogate/pkg/cli/config"
	"github.com/m-mizutani/monogate/pkg/controller/terminal"
	"github.com/m-mizutani/monogate/pkg/domain/types"
	"github.com/m-mizutani/monogate/pkg/infra/git"
	"github.com/m-mizutani/monogate/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdAudit() *cli.Command {
	var (
		checkCfg config.Check
		auditCfg config.Audit
	)

	flags := append(checkCfg.Flags(), auditCfg.Flags()...)

	return &cli.Command{
		Name:    "audit",
		Aliases: []string{"a"},
		Usage:   "Check every package manifest in the tree, not just staged ones",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := checkCfg.Load(c); err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Auditing package registrations",
				slog.String("root", auditCfg.Root),
			)

			uc, err := usecase.NewInspector(git.NewClient(), inspectConfig(&checkCfg))
			if err != nil {
				return err
			}

			report, err := uc.InspectTree(ctx, auditCfg.Root)
			if err != nil {
				return err
			}

			terminal.NewReporter().Print(report)
			if !report.OK() {
				return types.ErrChecksFailed
			}
			return nil
		},
	}
}
