package usecase

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monogate/pkg/domain/model"
)

// Detector finds newly added package manifests among changed file paths.
type Detector struct {
	pattern *regexp.Regexp
}

// NewDetector compiles pattern into a detector. The pattern is matched
// against repository relative manifest paths such as
// "services/billing/package.json".
func NewDetector(pattern string) (*Detector, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compile package pattern", goerr.V("pattern", pattern))
	}
	return &Detector{pattern: re}, nil
}

// Detect returns one package reference per path matching the manifest
// location pattern, preserving input order.
func (d *Detector) Detect(paths []string) []model.PackageRef {
	var pkgs []model.PackageRef
	for _, p := range paths {
		if d.pattern.MatchString(p) {
			pkgs = append(pkgs, model.NewPackageRef(p))
		}
	}
	return pkgs
}
