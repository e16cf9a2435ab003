// Package report renders the lint outcome for humans.
package report

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/locker/internal/core/domain"
	"go.trai.ch/locker/internal/ui/output"
	"go.trai.ch/locker/internal/ui/style"
)

// Renderer writes the lint report. The verdict goes to stdout, the per-group
// diagnostics go to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output
}

// NewRenderer creates a Renderer. Nil writers default to os.Stdout and
// os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.New(stderr),
	}
}

// Clean reports that no duplicate inputs were found.
func (r *Renderer) Clean() {
	_, _ = fmt.Fprintln(r.stdout, "No duplicate inputs found.")
}

// Duplicates reports every duplicate group: a header on stdout, then one
// line per group on stderr. Groups are ordered by URI so the report is
// stable; names within a group keep their discovery order.
func (r *Renderer) Duplicates(duplicates domain.Duplicates) {
	_, _ = fmt.Fprintln(r.stdout, "The following flake uris contained duplicate entries in your flake.lock:")

	uris := make([]string, 0, len(duplicates))
	for uri := range duplicates {
		uris = append(uris, uri)
	}
	slices.Sort(uris)

	for _, uri := range uris {
		styled := r.output.String(fmt.Sprintf("'%s'", uri)).Foreground(termenv.RGBColor(string(style.Red)))
		_, _ = fmt.Fprintf(r.stderr, "  %s: %s\n", styled, strings.Join(duplicates[uri], ", "))
	}

	_, _ = fmt.Fprintf(r.stderr, "%d duplicate group(s) found\n", len(uris))
}
