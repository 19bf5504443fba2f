package model

// ReportSource tells which file set a report was built from.
type ReportSource string

const (
	// SourceStaged covers manifests newly added in the pending commit.
	SourceStaged ReportSource = "staged"
	// SourceTree covers every manifest found in the working tree.
	SourceTree ReportSource = "tree"
)

// Report aggregates the packages examined in one run and the warnings
// raised against them, in detection order.
type Report struct {
	Source   ReportSource
	Packages []PackageRef
	Warnings []Warning
}

// OK reports whether the run passed without warnings.
func (r *Report) OK() bool {
	return len(r.Warnings) == 0
}
