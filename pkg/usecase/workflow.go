package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monogate/pkg/domain/model"
)

// WorkflowChecker verifies that the CI workflow's trigger paths cover
// each new package directory.
type WorkflowChecker struct {
	path string
}

// NewWorkflowChecker creates a checker reading the workflow file at path.
func NewWorkflowChecker(path string) *WorkflowChecker {
	return &WorkflowChecker{path: path}
}

// Check returns one warning per package whose expected trigger glob is
// missing from the workflow. A workflow file absent from disk yields a
// single informational warning and no error; a malformed one is an error.
func (c *WorkflowChecker) Check(ctx context.Context, pkgs []model.PackageRef) ([]model.Warning, error) {
	logger := ctxlog.From(ctx)

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("Workflow file not found, skipping trigger path check", "path", c.path)
			return []model.Warning{{
				Kind:    model.WarnInfo,
				Message: fmt.Sprintf("workflow file %q not found, skipping trigger path check", c.path),
			}}, nil
		}
		return nil, goerr.Wrap(err, "failed to read workflow file", goerr.V("path", c.path))
	}

	var wf model.Workflow
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, goerr.Wrap(err, "failed to parse workflow file", goerr.V("path", c.path))
	}

	filters := wf.On.PathFilters()
	logger.Debug("Loaded workflow trigger paths", "path", c.path, "filters", len(filters))

	var warns []model.Warning
	for _, pkg := range pkgs {
		glob := pkg.TriggerGlob()
		if wf.On.HasPathFilter(glob) {
			continue
		}
		w := model.Warning{
			Kind:    model.WarnWorkflow,
			Package: pkg.Name,
			Message: fmt.Sprintf("trigger path %q is not listed in %s", glob, c.path),
		}
		if near := closestMatch(glob, filters); near != "" {
			w.Hint = fmt.Sprintf("did you mean %q?", near)
		}
		warns = append(warns, w)
	}
	return warns, nil
}
