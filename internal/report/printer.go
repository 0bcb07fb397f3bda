// Package report provides formatted score-report output for the CLI.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScore outputs a human-readable score breakdown.
func (p *Printer) PrintScore(title string, b *types.ScoreBreakdown) {
	if b == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %3d/100  (%s)\n", b.Overall, b.Label))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Hard skills: %3d\n", b.HardSkills))
	sb.WriteString(fmt.Sprintf("Soft skills: %3d\n", b.SoftSkills))
	sb.WriteString(fmt.Sprintf("Impact:      %3d\n", b.Impact))
	sb.WriteString(fmt.Sprintf("Keywords:    %3d\n", b.Keywords))
	sb.WriteString(fmt.Sprintf("Formatting:  %3d", b.Formatting))

	p.printBox(title, sb.String())
}

// PrintBlockers outputs the blocker list, worst category first.
func (p *Printer) PrintBlockers(blockers []types.Blocker) {
	if len(blockers) == 0 {
		return
	}

	var sb strings.Builder
	for i, blocker := range blockers {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, blocker.Title))
		sb.WriteString(fmt.Sprintf("   Why: %s\n", blocker.Why))
		sb.WriteString(fmt.Sprintf("   Fix: %s\n", blocker.How))
	}

	p.printBox("Blockers", strings.TrimRight(sb.String(), "\n"))
}

// PrintIssues outputs the quality-gate audit trail, truncated to the first
// few entries.
func (p *Printer) PrintIssues(issues []types.QualityIssue) {
	if len(issues) == 0 {
		return
	}

	var sb strings.Builder
	shown := issues
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	for _, issue := range shown {
		status := "fixed"
		if !issue.Fixed {
			status = "found"
		}
		sb.WriteString(fmt.Sprintf("[%s] %s at %s: %s\n", status, issue.Kind, issue.Path, issue.Detail))
	}
	if len(issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(issues)-maxItemsToShow))
	}

	p.printBox("Quality issues", strings.TrimRight(sb.String(), "\n"))
}

// PrintResult outputs the full generate result: provenance, scores,
// blockers, issues, and boost actions.
func (p *Printer) PrintResult(res *types.GenerateResult) {
	if res == nil {
		return
	}

	header := fmt.Sprintf("Provenance: %s", res.Provenance)
	if res.Reason != "" {
		header += fmt.Sprintf("\nReason:     %s", res.Reason)
	}
	header += fmt.Sprintf("\nDuration:   %s", res.Duration.Round(time.Millisecond))
	p.printBox("Result", header)

	p.PrintScore("Score before", res.ScoreBefore)
	p.PrintScore("Score after", res.ScoreAfter)
	p.PrintBlockers(res.Blockers)
	p.PrintIssues(res.Issues)

	if len(res.BoostLog) > 0 {
		p.printBox("Boost actions", strings.Join(res.BoostLog, "\n"))
	}
}
