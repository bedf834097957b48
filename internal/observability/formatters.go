// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted report output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
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

// PrintScoreResult renders a full scoring report.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	p.printSummary(result)
	p.printBreakdown(result)
	p.printIssues(&result.Issues)
	p.printStrengths(result.Strengths)
	p.printKeywords(result.KeywordDetails)
	p.printPassProbability(result.PassProbability)
}

func (p *Printer) printSummary(result *types.ScoreResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %.1f / 100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Mode:     %s", result.Mode))
	if result.AutoReject {
		sb.WriteString("\n\nAUTO-REJECT: required keyword coverage below threshold")
	}
	p.printBox("SCORE SUMMARY", sb.String())
}

func (p *Printer) printBreakdown(result *types.ScoreResult) {
	if len(result.Breakdown) == 0 {
		return
	}

	categories := make([]string, 0, len(result.Breakdown))
	for name := range result.Breakdown {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, name := range categories {
		cb := result.Breakdown[name]
		sb.WriteString(fmt.Sprintf("%-16s %5.1f / %-5.1f\n", name, cb.Score, cb.MaxScore))
	}
	p.printBox("CATEGORY BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printIssues(issues *types.IssueList) {
	if issues.Total() == 0 {
		return
	}

	var sb strings.Builder
	writeGroup := func(label string, group []types.Issue) {
		if len(group) == 0 {
			return
		}
		sb.WriteString(label + ":\n")
		count := min(len(group), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", group[i].Message))
		}
		if len(group) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(group)-maxItemsToShow))
		}
	}

	writeGroup("Critical", issues.Critical)
	writeGroup("Warnings", issues.Warnings)
	writeGroup("Suggestions", issues.Suggestions)
	writeGroup("Info", issues.Info)

	p.printBox("ISSUES", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printStrengths(strengths []types.Strength) {
	if len(strengths) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range strengths {
		sb.WriteString(fmt.Sprintf("  • %s (%.0f%%)\n", s.Message, s.Percent))
	}
	p.printBox("STRENGTHS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printKeywords(kw *types.KeywordDetails) {
	if kw == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Required matched:  %.0f%%\n", kw.RequiredMatchPercent))
	sb.WriteString(fmt.Sprintf("Preferred matched: %.0f%%\n", kw.PreferredMatchPercent))

	if len(kw.MissingRequired) > 0 {
		sb.WriteString("\nMissing required:\n")
		count := min(len(kw.MissingRequired), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", kw.MissingRequired[i]))
		}
		if len(kw.MissingRequired) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(kw.MissingRequired)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printPassProbability(pp *types.PassProbability) {
	if pp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.0f%% (%s, %s)\n\n", pp.Overall, pp.Confidence, pp.Color))
	for _, plat := range pp.Platforms {
		sb.WriteString(fmt.Sprintf("  %-12s %5.0f%%\n", plat.Platform, plat.Probability))
	}
	p.printBox("PASS PROBABILITY", strings.TrimSuffix(sb.String(), "\n"))
}
