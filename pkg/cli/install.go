package cli

import (
	"context"

	"github.com/m-mizutani/monogate/pkg/cli/config"
	"github.com/m-mizutani/monogate/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdInstall() *cli.Command {
	var installCfg config.Install

	return &cli.Command{
		Name:  "install",
		Usage: "Install the pre-commit hook into .git/hooks",
		Flags: installCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := usecase.NewHookInstaller(usecase.InstallConfig{
				GitDir:  installCfg.GitDir,
				Command: installCfg.HookCommand,
				Force:   installCfg.Force,
			})
			if err != nil {
				return err
			}

			return uc.Install(ctx)
		},
	}
}

func cmdUninstall() *cli.Command {
	var uninstallCfg config.Uninstall

	return &cli.Command{
		Name:  "uninstall",
		Usage: "Remove the pre-commit hook and restore any backup",
		Flags: uninstallCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := usecase.NewHookInstaller(usecase.InstallConfig{
				GitDir: uninstallCfg.GitDir,
			})
			if err != nil {
				return err
			}

			return uc.Uninstall(ctx)
		},
	}
}
