package output

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"readmefirst/internal/rules"
)

// ReportSink renders the run as a Markdown document on Close.
type ReportSink struct {
	path string
	file *os.File
	mu   sync.Mutex
	doc  Document
}

func NewReportSink(path string) (*ReportSink, error) {
	if path == "" {
		return nil, fmt.Errorf("report path required")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return &ReportSink{path: path, file: f}, nil
}

func (s *ReportSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.add(v)
	return nil
}

func (s *ReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.file.WriteString(RenderMarkdown(s.doc)); err != nil {
		_ = s.file.Close()
		return err
	}
	return s.file.Close()
}

// RenderMarkdown renders a run document as a Markdown report.
func RenderMarkdown(doc Document) string {
	var b strings.Builder
	b.WriteString("# README-FIRST Report\n\n")

	repo := doc.Repo
	if repo == "" {
		repo = "(unknown)"
	}
	b.WriteString(fmt.Sprintf("**Repository:** %s\n\n", repo))

	a := doc.Analysis
	if a == nil {
		b.WriteString("## Analysis failed\n\n")
		msg := doc.Error
		if msg == "" {
			msg = "No analysis was produced."
		}
		b.WriteString(msg + "\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("**Readiness:** %d / %d (%s)\n\n", a.Score, rules.MaxScore, a.Rating))
	if a.ReadmePath != "" {
		b.WriteString(fmt.Sprintf("**README:** `%s`\n\n", a.ReadmePath))
	}

	writeList := func(title string, items []string) {
		b.WriteString("## " + title + "\n\n")
		if len(items) == 0 {
			b.WriteString("- None\n\n")
			return
		}
		for _, item := range items {
			b.WriteString("- " + item + "\n")
		}
		b.WriteString("\n")
	}
	writeList("Missing Essentials", a.Essentials)
	writeList("Detected but Undocumented", a.Undocumented)

	if len(a.Deductions) > 0 {
		b.WriteString("## Deductions\n\n")
		b.WriteString("| Rule | Points | Item |\n")
		b.WriteString("| --- | ---: | --- |\n")
		for _, d := range a.Deductions {
			b.WriteString(fmt.Sprintf("| %s | -%d | %s |\n", d.RuleID, d.Points, d.Item))
		}
		b.WriteString("\n")
	}

	if !a.Detected.Empty() {
		writeList("Detected Configuration", detectedLines(*a))
	}

	b.WriteString("## Quick Start\n\n")
	if len(a.QuickStart) == 0 {
		b.WriteString("No commands could be inferred.\n\n")
	} else {
		b.WriteString("```sh\n")
		for _, cmd := range a.QuickStart {
			b.WriteString(cmd + "\n")
		}
		b.WriteString("```\n\n")
	}

	b.WriteString(closingTip(a.Score) + "\n")
	return b.String()
}
