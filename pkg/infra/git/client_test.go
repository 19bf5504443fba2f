package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/monogate/pkg/infra/git"
)

func setupRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git command not available")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	return dir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestListAddedFiles(t *testing.T) {
	dir := setupRepo(t)
	ctx := context.Background()

	// Commit a base file so modifications can be told apart from additions
	writeFile(t, dir, "README.md", "# test\n")
	runGit(t, dir, "add", "README.md")
	runGit(t, dir, "commit", "-m", "init")

	// Stage one addition and one modification
	writeFile(t, dir, "services/api/package.json", `{"name":"api"}`)
	writeFile(t, dir, "README.md", "# test updated\n")
	runGit(t, dir, "add", ".")

	client := git.NewClient(git.WithDir(dir))
	files, err := client.ListAddedFiles(ctx)
	gt.NoError(t, err)

	gt.Equal(t, files, []string{"services/api/package.json"})
}

func TestListAddedFiles_Empty(t *testing.T) {
	dir := setupRepo(t)
	ctx := context.Background()

	client := git.NewClient(git.WithDir(dir))
	files, err := client.ListAddedFiles(ctx)
	gt.NoError(t, err)
	gt.Equal(t, len(files), 0)
}

func TestListAddedFiles_NotARepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git command not available")
	}

	client := git.NewClient(git.WithDir(t.TempDir()))
	_, err := client.ListAddedFiles(context.Background())
	gt.Error(t, err)
}
