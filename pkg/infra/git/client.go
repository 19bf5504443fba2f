package git

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monogate/pkg/domain/interfaces"
)

type client struct {
	dir string
}

// Option configures the git client.
type Option func(*client)

// WithDir runs git commands in dir instead of the process working directory.
func WithDir(dir string) Option {
	return func(c *client) {
		c.dir = dir
	}
}

// NewClient creates a git client backed by the git command line tool.
func NewClient(opts ...Option) interfaces.GitClient {
	c := &client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListAddedFiles returns the paths of files staged as additions for the
// pending commit, in git's output order.
func (c *client) ListAddedFiles(ctx context.Context) ([]string, error) {
	args := []string{}
	if c.dir != "" {
		args = append(args, "-C", c.dir)
	}
	args = append(args, "diff", "--cached", "--name-only", "--diff-filter=A")

	cmd := exec.CommandContext(ctx, "git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, goerr.Wrap(err, "failed to list staged files",
			goerr.V("stderr", strings.TrimSpace(stderr.String())))
	}

	var files []string
	scanner := bufio.NewScanner(&stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			files = append(files, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read git output")
	}

	return files, nil
}
