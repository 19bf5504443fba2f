package model

import "path"

// PackageRef identifies a monorepo package discovered from its manifest
// file location.
type PackageRef struct {
	Name string // directory basename, e.g. "billing"
	Path string // slash-separated directory path, e.g. "services/billing"
}

// NewPackageRef builds a PackageRef from a manifest file path such as
// "services/billing/package.json". Name is always the final segment of
// the manifest's directory.
func NewPackageRef(manifestPath string) PackageRef {
	dir := path.Dir(manifestPath)
	return PackageRef{
		Name: path.Base(dir),
		Path: dir,
	}
}

// TriggerGlob returns the CI trigger path expected to cover the package.
func (p PackageRef) TriggerGlob() string {
	return p.Path + "/**"
}

// ScriptName returns the root manifest script expected for the given
// prefix, e.g. prefix "build:" yields "build:billing".
func (p PackageRef) ScriptName(prefix string) string {
	return prefix + p.Name
}
