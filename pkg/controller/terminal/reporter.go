package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/monogate/pkg/domain/model"
)

// Reporter renders check reports for the committer on stdout.
type Reporter struct {
	out io.Writer
}

// Option is a functional option for Reporter configuration
type Option func(*Reporter)

// WithWriter redirects report output, mainly for tests.
func WithWriter(w io.Writer) Option {
	return func(r *Reporter) {
		r.out = w
	}
}

// NewReporter creates a new Reporter
func NewReporter(opts ...Option) *Reporter {
	r := &Reporter{
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var rule = strings.Repeat("─", 60)

// Print renders the report. A run that detected no packages prints
// nothing, so unrelated commits stay silent.
func (r *Reporter) Print(report *model.Report) {
	if len(report.Packages) == 0 {
		return
	}

	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	faint := color.New(color.Faint)

	if report.OK() {
		green.Fprintf(r.out, "✓ %s correctly registered\n", countPackages(report))
		return
	}

	red.Fprintln(r.out, rule)
	red.Fprintln(r.out, "✗ package registration check failed")
	red.Fprintln(r.out, rule)

	for _, w := range report.Warnings {
		if w.Package != "" {
			yellow.Fprintf(r.out, "  [%s] %s: %s\n", w.Kind, w.Package, w.Message)
		} else {
			yellow.Fprintf(r.out, "  [%s] %s\n", w.Kind, w.Message)
		}
		if w.Hint != "" {
			faint.Fprintf(r.out, "      %s\n", w.Hint)
		}
	}

	fmt.Fprintf(r.out, "%s checked, %d warning(s) found\n", countPackages(report), len(report.Warnings))

	switch report.Source {
	case model.SourceTree:
		red.Fprintln(r.out, "✗ audit failed; register the packages above")
	default:
		red.Fprintln(r.out, "✗ commit aborted; register the packages above and retry")
	}
}

func countPackages(report *model.Report) string {
	word := "packages"
	if len(report.Packages) == 1 {
		word = "package"
	}
	if report.Source == model.SourceStaged {
		word = "new " + word
	}
	return fmt.Sprintf("%d %s", len(report.Packages), word)
}
