package interfaces

//go:generate moq -out mocks/git_mock.go -pkg mocks . GitClient

import "context"

// GitClient defines the version-control operations the inspection flow
// depends on. It is injected so tests can substitute a fake.
type GitClient interface {
	// ListAddedFiles returns the paths of files staged as additions for
	// the pending commit, in git's output order.
	ListAddedFiles(ctx context.Context) ([]string, error)
}
