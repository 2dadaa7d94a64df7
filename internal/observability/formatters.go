// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
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

// truncate shortens s to n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// pad right-pads s with spaces to n runes
func pad(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, inner), inner))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a summary of what the resume contains
func (p *Printer) PrintDocument(doc types.ResumeData) {
	var sb strings.Builder

	name := doc.PersonalInfo.Name
	if strings.TrimSpace(name) == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:      %s\n", name))
	if doc.PersonalInfo.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:     %s\n", doc.PersonalInfo.Title))
	}
	sb.WriteString(fmt.Sprintf("Summary:   %d chars\n", utf8.RuneCountInString(doc.Summary)))
	sb.WriteString(fmt.Sprintf("Links:     %d\n", len(doc.PersonalInfo.Links)))
	sb.WriteString("\n")

	if len(doc.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(doc.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d%%)\n", doc.Skills[i].Name, doc.Skills[i].Level))
		}
		if len(doc.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Experience: %d  Education: %d  Projects: %d",
		len(doc.WorkExperience), len(doc.Education), len(doc.Projects)))

	p.printBox("RESUME", sb.String())
}

// PrintExports outputs the files an export wrote
func (p *Printer) PrintExports(paths []string, elapsed time.Duration) {
	if len(paths) == 0 {
		return
	}

	var sb strings.Builder
	for _, path := range paths {
		sb.WriteString(fmt.Sprintf("• %s\n", filepath.Base(path)))
	}
	sb.WriteString(fmt.Sprintf("\nDirectory: %s\n", filepath.Dir(paths[0])))
	sb.WriteString(fmt.Sprintf("Elapsed:   %s", elapsed.Round(time.Millisecond)))

	p.printBox("EXPORTED PDF", sb.String())
}

// PrintVerification outputs the phrases that were found as selectable text
func (p *Printer) PrintVerification(phrases []string) {
	if len(phrases) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d headings as text:\n\n", len(phrases)))
	count := min(len(phrases), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("✓ %s\n", phrases[i]))
	}
	if len(phrases) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(phrases)-maxItemsToShow))
	}

	p.printBox("ATS TEXT CHECK", strings.TrimSuffix(sb.String(), "\n"))
}
