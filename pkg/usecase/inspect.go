package usecase

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monogate/pkg/domain/interfaces"
	"github.com/m-mizutani/monogate/pkg/domain/model"
)

// InspectConfig carries the paths and matching rules for one inspection
// run, constructed once at program start.
type InspectConfig struct {
	WorkflowPath   string
	ManifestPath   string
	ScriptPrefixes []string
	PackagePattern string
}

type inspector struct {
	git      interfaces.GitClient
	detector *Detector
	workflow *WorkflowChecker
	scripts  *ScriptChecker
}

// NewInspector creates an InspectorUseCase instance
func NewInspector(gitClient interfaces.GitClient, cfg InspectConfig) (interfaces.InspectorUseCase, error) {
	detector, err := NewDetector(cfg.PackagePattern)
	if err != nil {
		return nil, err
	}

	return &inspector{
		git:      gitClient,
		detector: detector,
		workflow: NewWorkflowChecker(cfg.WorkflowPath),
		scripts:  NewScriptChecker(cfg.ManifestPath, cfg.ScriptPrefixes),
	}, nil
}

// InspectStaged checks packages whose manifests are staged as new
// additions for the pending commit.
func (uc *inspector) InspectStaged(ctx context.Context) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	files, err := uc.git.ListAddedFiles(ctx)
	if err != nil {
		// A failing git command (e.g. running outside a repository)
		// degrades to an empty staged set; the commit may proceed.
		logger.Error("Failed to list staged files", "error", err)
		files = nil
	}

	logger.Debug("Listed staged additions", "files", len(files))

	return uc.inspect(ctx, model.SourceStaged, files)
}

// InspectTree checks every package manifest found under root.
func (uc *inspector) InspectTree(ctx context.Context, root string) (*model.Report, error) {
	paths, err := collectFiles(root)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk tree", goerr.V("root", root))
	}

	ctxlog.From(ctx).Debug("Collected tree files", "root", root, "files", len(paths))

	return uc.inspect(ctx, model.SourceTree, paths)
}

func (uc *inspector) inspect(ctx context.Context, source model.ReportSource, paths []string) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	report := &model.Report{
		Source:   source,
		Packages: uc.detector.Detect(paths),
	}
	if len(report.Packages) == 0 {
		logger.Debug("No new packages detected")
		return report, nil
	}

	logger.Debug("Detected new packages", "count", len(report.Packages))

	wfWarns, err := uc.workflow.Check(ctx, report.Packages)
	if err != nil {
		return nil, goerr.Wrap(err, "workflow check failed")
	}
	report.Warnings = append(report.Warnings, wfWarns...)

	scWarns, err := uc.scripts.Check(ctx, report.Packages)
	if err != nil {
		return nil, goerr.Wrap(err, "script check failed")
	}
	report.Warnings = append(report.Warnings, scWarns...)

	return report, nil
}

// collectFiles returns every regular file under root as a slash
// separated path relative to root, skipping VCS and dependency
// directories.
func collectFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case ".git", "node_modules", "vendor":
				if p != root {
					return filepath.SkipDir
				}
			}
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
