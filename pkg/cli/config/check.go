package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Built-in defaults for the consistency checks.
const (
	DefaultConfigPath     = "monogate.toml"
	DefaultWorkflowPath   = ".github/workflows/ci.yml"
	DefaultManifestPath   = "package.json"
	DefaultPackagePattern = `^(?:services|packages)/[^/]+/package\.json$`
)

// DefaultScriptPrefixes is the ordered list of script name prefixes every
// package must be registered under.
var DefaultScriptPrefixes = []string{"build:", "test:", "lint:"}

// Check holds the consistency check configuration shared by the check
// and audit commands.
type Check struct {
	ConfigPath     string
	WorkflowPath   string
	ManifestPath   string
	ScriptPrefixes []string
	PackagePattern string
}

// Flags returns CLI flags for check configuration
func (c *Check) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to the monogate config file",
			Value:       DefaultConfigPath,
			Destination: &c.ConfigPath,
			Sources:     cli.EnvVars("MONOGATE_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "workflow",
			Usage:       "Path to the CI workflow file",
			Value:       DefaultWorkflowPath,
			Destination: &c.WorkflowPath,
			Sources:     cli.EnvVars("MONOGATE_WORKFLOW"),
		},
		&cli.StringFlag{
			Name:        "manifest",
			Usage:       "Path to the root manifest file",
			Value:       DefaultManifestPath,
			Destination: &c.ManifestPath,
			Sources:     cli.EnvVars("MONOGATE_MANIFEST"),
		},
		&cli.StringSliceFlag{
			Name:        "script-prefixes",
			Usage:       "Required script name prefixes",
			Value:       DefaultScriptPrefixes,
			Destination: &c.ScriptPrefixes,
			Sources:     cli.EnvVars("MONOGATE_SCRIPT_PREFIXES"),
		},
		&cli.StringFlag{
			Name:        "package-pattern",
			Usage:       "Regexp matching package manifest locations",
			Value:       DefaultPackagePattern,
			Destination: &c.PackagePattern,
			Sources:     cli.EnvVars("MONOGATE_PACKAGE_PATTERN"),
		},
	}
}

// checkFile is the monogate.toml layout.
type checkFile struct {
	Workflow       string   `toml:"workflow"`
	Manifest       string   `toml:"manifest"`
	ScriptPrefixes []string `toml:"script_prefixes"`
	PackagePattern string   `toml:"package_pattern"`
}

// Load overlays values from the config file, keeping anything the user
// set explicitly by flag or environment variable. A missing file at the
// default path is fine; an explicitly configured path must exist.
func (c *Check) Load(cmd *cli.Command) error {
	data, err := os.ReadFile(c.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) && !cmd.IsSet("config") {
			return nil
		}
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.ConfigPath))
	}

	var file checkFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.ConfigPath))
	}

	if file.Workflow != "" && !cmd.IsSet("workflow") {
		c.WorkflowPath = file.Workflow
	}
	if file.Manifest != "" && !cmd.IsSet("manifest") {
		c.ManifestPath = file.Manifest
	}
	if len(file.ScriptPrefixes) > 0 && !cmd.IsSet("script-prefixes") {
		c.ScriptPrefixes = file.ScriptPrefixes
	}
	if file.PackagePattern != "" && !cmd.IsSet("package-pattern") {
		c.PackagePattern = file.PackagePattern
	}

	return nil
}
