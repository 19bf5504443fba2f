package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monogate/pkg/domain/model"
	"github.com/tidwall/gjson"
)

// ScriptChecker verifies that the root manifest's script registry has an
// entry for every required prefix of each new package.
type ScriptChecker struct {
	path     string
	prefixes []string
}

// NewScriptChecker creates a checker reading the root manifest at path.
// prefixes is the ordered list of required script name prefixes such as
// "build:".
func NewScriptChecker(path string, prefixes []string) *ScriptChecker {
	return &ScriptChecker{path: path, prefixes: prefixes}
}

// Check returns one warning per package and missing prefix, in package
// then prefix order. A missing or malformed root manifest is an error.
func (c *ScriptChecker) Check(ctx context.Context, pkgs []model.PackageRef) ([]model.Warning, error) {
	manifest, err := c.load()
	if err != nil {
		return nil, err
	}

	logger := ctxlog.From(ctx)
	logger.Debug("Loaded root manifest scripts", "path", c.path, "scripts", len(manifest.Scripts))

	names := manifest.ScriptNames()

	var warns []model.Warning
	for _, pkg := range pkgs {
		for _, prefix := range c.prefixes {
			script := pkg.ScriptName(prefix)
			if manifest.HasScript(script) {
				continue
			}
			w := model.Warning{
				Kind:    model.WarnScript,
				Package: pkg.Name,
				Message: fmt.Sprintf("script %q is not defined in %s", script, c.path),
			}
			if near := closestMatch(script, names); near != "" {
				w.Hint = fmt.Sprintf("did you mean %q?", near)
			}
			warns = append(warns, w)
		}
	}
	return warns, nil
}

func (c *ScriptChecker) load() (*model.Manifest, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read root manifest", goerr.V("path", c.path))
	}
	if !gjson.ValidBytes(data) {
		return nil, goerr.New("malformed root manifest", goerr.V("path", c.path))
	}

	manifest := &model.Manifest{
		Name:    gjson.GetBytes(data, "name").String(),
		Scripts: map[string]string{},
	}
	for name, cmd := range gjson.GetBytes(data, "scripts").Map() {
		manifest.Scripts[name] = cmd.String()
	}
	return manifest, nil
}
