package config

import "github.com/urfave/cli/v3"

// Audit holds audit configuration
type Audit struct {
	Root string
}

// Flags returns CLI flags for audit configuration
func (c *Audit) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "root",
			Usage:       "Directory to scan for package manifests",
			Value:       ".",
			Destination: &c.Root,
			Sources:     cli.EnvVars("MONOGATE_ROOT"),
		},
	}
}
