package model

// Workflow is the subset of a GitHub Actions workflow file that the
// trigger-path check reads.
type Workflow struct {
	Name string   `yaml:"name"`
	On   Triggers `yaml:"on"`
}

// Triggers holds the push / pull_request trigger sections of a workflow.
// Absent sections stay nil so that declared-but-empty path lists remain
// distinguishable from undeclared ones.
type Triggers struct {
	Push        *Trigger `yaml:"push"`
	PullRequest *Trigger `yaml:"pull_request"`
}

// Trigger is a single event trigger with its filters.
type Trigger struct {
	Branches []string `yaml:"branches"`
	Paths    []string `yaml:"paths"`
}

// PathFilters returns the trigger path globs the workflow is gated on:
// pull_request paths when declared, falling back to push paths, falling
// back to nil. A declared empty list is returned as is and does not fall
// through to the next level.
func (t Triggers) PathFilters() []string {
	if t.PullRequest != nil && t.PullRequest.Paths != nil {
		return t.PullRequest.Paths
	}
	if t.Push != nil && t.Push.Paths != nil {
		return t.Push.Paths
	}
	return nil
}

// HasPathFilter reports whether glob appears verbatim in the active
// trigger path list.
func (t Triggers) HasPathFilter(glob string) bool {
	for _, p := range t.PathFilters() {
		if p == glob {
			return true
		}
	}
	return false
}
