package config

import "github.com/urfave/cli/v3"

// Install holds hook installation configuration
type Install struct {
	GitDir      string
	HookCommand string
	Force       bool
}

// Flags returns CLI flags for hook installation
func (c *Install) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "git-dir",
			Usage:       "Path to the .git directory",
			Value:       ".git",
			Destination: &c.GitDir,
			Sources:     cli.EnvVars("MONOGATE_GIT_DIR"),
		},
		&cli.StringFlag{
			Name:        "hook-command",
			Usage:       "Command line the pre-commit hook runs",
			Value:       "monogate check",
			Destination: &c.HookCommand,
			Sources:     cli.EnvVars("MONOGATE_HOOK_COMMAND"),
		},
		&cli.BoolFlag{
			Name:        "force",
			Usage:       "Back up and replace an existing pre-commit hook",
			Value:       false,
			Destination: &c.Force,
		},
	}
}

// Uninstall holds hook removal configuration
type Uninstall struct {
	GitDir string
}

// Flags returns CLI flags for hook removal
func (c *Uninstall) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "git-dir",
			Usage:       "Path to the .git directory",
			Value:       ".git",
			Destination: &c.GitDir,
			Sources:     cli.EnvVars("MONOGATE_GIT_DIR"),
		},
	}
}
