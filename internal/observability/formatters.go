// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintParsedResume(parsed *types.ParsedResume) {
	if parsed == nil {
		return
	}

	var sb strings.Builder
	content := parsed.Content

	sb.WriteString(fmt.Sprintf("Name:       %s\n", content.ContactInfo.FullName))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", content.ContactInfo.Email))
	sb.WriteString(fmt.Sprintf("Confidence: %d/100\n", parsed.Confidence))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(content.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(content.Education)))
	sb.WriteString(fmt.Sprintf("Skills:             %d\n", len(content.Skills)))

	if len(content.Skills) > 0 {
		count := min(len(content.Skills), maxItemsToShow)
		sb.WriteString("\nTop skills:\n")
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", content.Skills[i]))
		}
		if len(content.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(content.Skills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobRequirements outputs a human-readable summary of parsed job requirements.
func (p *Printer) PrintJobRequirements(job *types.JobRequirements) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	if job.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	}
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	if job.ExperienceYears.Min != nil {
		if job.ExperienceYears.Max != nil {
			sb.WriteString(fmt.Sprintf("Years:    %d-%d\n", *job.ExperienceYears.Min, *job.ExperienceYears.Max))
		} else {
			sb.WriteString(fmt.Sprintf("Years:    %d+\n", *job.ExperienceYears.Min))
		}
	}

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("\nRequired skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.RequiredSkills[i]))
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs the full score breakdown, matched/missing
// keywords, and top suggestions.
func (p *Printer) PrintScoreReport(result *types.ATSScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall: %d/100 (%s)\n\n", result.OverallScore, result.Classification))
	sb.WriteString(formatComponent("Keywords  ", result.Breakdown.KeywordScore))
	sb.WriteString(formatComponent("Title     ", result.Breakdown.TitleScore))
	sb.WriteString(formatComponent("Experience", result.Breakdown.ExperienceScore))
	sb.WriteString(formatComponent("Format    ", result.Breakdown.FormatScore))
	sb.WriteString(formatComponent("Semantic  ", result.Breakdown.SemanticScore))

	if len(result.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(result.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingKeywords[i]))
		}
		if len(result.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingKeywords)-maxItemsToShow))
		}
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nTop suggestions:\n")
		count := min(len(result.Suggestions), 3)
		for i := 0; i < count; i++ {
			s := result.Suggestions[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", s.Priority, s.Action))
		}
	}

	p.printBox("ATS SCORE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

func formatComponent(label string, c types.ScoreComponent) string {
	return fmt.Sprintf("%s %3d x %.2f = %5.1f\n", label, c.Score, c.Weight, c.WeightedScore)
}
