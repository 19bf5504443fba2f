package cli

import (
	"context"

	"github.com/m-mizutani/monogate/pkg/cli/config"
	"github.com/m-mizutani/monogate/pkg/controller/terminal"
	"github.com/m-mizutani/monogate/pkg/domain/types"
	"github.com/m-mizutani/monogate/pkg/infra/git"
	"github.com/m-mizutani/monogate/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// inspectConfig converts check configuration into the use case settings.
func inspectConfig(cfg *config.Check) usecase.InspectConfig {
	return usecase.InspectConfig{
		WorkflowPath:   cfg.WorkflowPath,
		ManifestPath:   cfg.ManifestPath,
		ScriptPrefixes: cfg.ScriptPrefixes,
		PackagePattern: cfg.PackagePattern,
	}
}

func cmdCheck() *cli.Command {
	var checkCfg config.Check

	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "Check staged package manifests against CI triggers and root scripts",
		Flags:   checkCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := checkCfg.Load(c); err != nil {
				return err
			}

			uc, err := usecase.NewInspector(git.NewClient(), inspectConfig(&checkCfg))
			if err != nil {
				return err
			}

			report, err := uc.InspectStaged(ctx)
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
