package types

import "github.com/m-mizutani/goerr/v2"

// ErrChecksFailed is returned by the check and audit commands when one or
// more consistency warnings were found. The terminal report has already
// been printed when this error surfaces, so callers exit non-zero without
// logging it again.
var ErrChecksFailed = goerr.New("package consistency checks failed")

var (
	// ErrNotGitRepo is returned when hook management cannot find the
	// .git directory.
	ErrNotGitRepo = goerr.New("git directory not found")

	// ErrHookExists is returned when installing over a pre-commit hook
	// that was not written by this tool and --force was not given.
	ErrHookExists = goerr.New("pre-commit hook already exists")
)
