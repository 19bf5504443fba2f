package model

// WarningKind classifies a warning by the check that raised it.
type WarningKind string

const (
	WarnWorkflow WarningKind = "workflow"
	WarnScript   WarningKind = "script"
	WarnInfo     WarningKind = "info"
)

// Warning is a single consistency-check failure surfaced to the committer.
// Warnings never abort the pipeline by themselves; the gate decides.
type Warning struct {
	Kind    WarningKind
	Package string // empty for warnings not tied to a single package
	Message string
	Hint    string // optional remediation hint, e.g. the closest existing entry
}
