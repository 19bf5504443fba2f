package interfaces

import (
	"context"

	"github.com/m-mizutani/monogate/pkg/domain/model"
)

// InspectorUseCase defines the package registration checks.
type InspectorUseCase interface {
	// InspectStaged checks packages whose manifests are staged as new
	// additions for the pending commit.
	InspectStaged(ctx context.Context) (*model.Report, error)

	// InspectTree checks every package manifest found under root.
	InspectTree(ctx context.Context, root string) (*model.Report, error)
}

// HookInstaller defines operations for the git pre-commit hook that runs
// the staged check.
type HookInstaller interface {
	// Install writes the pre-commit hook, backing up a foreign one.
	Install(ctx context.Context) error

	// Uninstall removes the installed hook and restores any backup.
	Uninstall(ctx context.Context) error
}
