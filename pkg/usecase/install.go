package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monogate/pkg/domain/interfaces"
	"github.com/m-mizutani/monogate/pkg/domain/types"
)

//go:embed templates/pre-commit.sh.tmpl
var hookTemplate string

// hookMarker identifies hooks written by this tool. Hooks carrying the
// marker are replaced freely on reinstall.
const hookMarker = "installed by monogate"

// backupSuffix is appended to a foreign hook moved aside by --force.
const backupSuffix = ".backup"

// InstallConfig carries the hook installation settings.
type InstallConfig struct {
	GitDir  string // path to the .git directory
	Command string // command line the hook runs
	Force   bool   // back up and replace a foreign pre-commit hook
}

type hookInstaller struct {
	cfg  InstallConfig
	tmpl *template.Template
}

// NewHookInstaller creates a HookInstaller instance
func NewHookInstaller(cfg InstallConfig) (interfaces.HookInstaller, error) {
	tmpl, err := template.New("pre-commit").Parse(hookTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse hook template")
	}

	return &hookInstaller{
		cfg:  cfg,
		tmpl: tmpl,
	}, nil
}

// Install writes the pre-commit hook into the repository's hooks
// directory. A hook written by this tool is overwritten in place; a
// foreign hook is an error unless Force is set, in which case it is
// moved aside as a backup first.
func (uc *hookInstaller) Install(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	if _, err := os.Stat(uc.cfg.GitDir); os.IsNotExist(err) {
		return goerr.Wrap(types.ErrNotGitRepo, "cannot install hook", goerr.V("path", uc.cfg.GitDir))
	}

	hooksDir := filepath.Join(uc.cfg.GitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create hooks directory", goerr.V("path", hooksDir))
	}

	hookPath := filepath.Join(hooksDir, "pre-commit")
	if existing, err := os.ReadFile(hookPath); err == nil && !strings.Contains(string(existing), hookMarker) {
		if !uc.cfg.Force {
			return goerr.Wrap(types.ErrHookExists, "use --force to back it up and replace it",
				goerr.V("path", hookPath))
		}

		backupPath := hookPath + backupSuffix
		if err := os.Rename(hookPath, backupPath); err != nil {
			return goerr.Wrap(err, "failed to back up existing hook", goerr.V("path", hookPath))
		}
		logger.Info("Backed up existing pre-commit hook", "backup", backupPath)
	}

	var buf bytes.Buffer
	if err := uc.tmpl.Execute(&buf, map[string]string{
		"Command": uc.cfg.Command,
	}); err != nil {
		return goerr.Wrap(err, "failed to render hook template")
	}

	if err := os.WriteFile(hookPath, buf.Bytes(), 0o755); err != nil {
		return goerr.Wrap(err, "failed to write hook", goerr.V("path", hookPath))
	}
	// WriteFile keeps the old mode when the file already existed
	if err := os.Chmod(hookPath, 0o755); err != nil {
		return goerr.Wrap(err, "failed to make hook executable", goerr.V("path", hookPath))
	}

	logger.Info("Installed pre-commit hook", "path", hookPath, "command", uc.cfg.Command)

	return nil
}

// Uninstall removes the hook if this tool wrote it and restores a backed
// up foreign hook when present. A missing hook is not an error.
func (uc *hookInstaller) Uninstall(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	hookPath := filepath.Join(uc.cfg.GitDir, "hooks", "pre-commit")
	existing, err := os.ReadFile(hookPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("No pre-commit hook installed", "path", hookPath)
			return nil
		}
		return goerr.Wrap(err, "failed to read hook", goerr.V("path", hookPath))
	}

	if !strings.Contains(string(existing), hookMarker) {
		return goerr.New("pre-commit hook was not installed by monogate, leaving it in place",
			goerr.V("path", hookPath))
	}

	if err := os.Remove(hookPath); err != nil {
		return goerr.Wrap(err, "failed to remove hook", goerr.V("path", hookPath))
	}
	logger.Info("Removed pre-commit hook", "path", hookPath)

	backupPath := hookPath + backupSuffix
	if _, err := os.Stat(backupPath); err == nil {
		if err := os.Rename(backupPath, hookPath); err != nil {
			return goerr.Wrap(err, "failed to restore backed up hook", goerr.V("path", backupPath))
		}
		logger.Info("Restored backed up pre-commit hook", "path", hookPath)
	}

	return nil
}
