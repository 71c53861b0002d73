package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"

	"readmefirst/internal/rules"
)

// reportWidth is the width of the horizontal rules framing the text report.
const reportWidth = 60

type ConsoleSink struct {
	writer io.Writer
	format string // "text", "json", "ndjson"
	mu     sync.Mutex
	doc    Document // JSON aggregate
	pal    palette
}

type palette struct {
	bold, dim, red, yellow, green, blue, boldRed, boldYellow, boldGreen, boldCyan *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		bold:       color.New(color.Bold),
		dim:        color.New(color.Faint),
		red:        color.New(color.FgRed),
		yellow:     color.New(color.FgYellow),
		green:      color.New(color.FgGreen),
		blue:       color.New(color.FgBlue),
		boldRed:    color.New(color.FgRed, color.Bold),
		boldYellow: color.New(color.FgYellow, color.Bold),
		boldGreen:  color.New(color.FgGreen, color.Bold),
		boldCyan:   color.New(color.FgCyan, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{p.bold, p.dim, p.red, p.yellow, p.green, p.blue, p.boldRed, p.boldYellow, p.boldGreen, p.boldCyan} {
			c.DisableColor()
		}
	}
	return p
}

func NewConsoleSink(w io.Writer, format string, noColor bool) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}
	return &ConsoleSink{
		writer: w,
		format: format,
		pal:    newPalette(noColor),
	}
}

func (s *ConsoleSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(v)
}

func (s *ConsoleSink) writeLocked(v any) error {
	switch s.format {
	case "json":
		s.doc.add(v)
		return nil
	case "ndjson":
		e, ok := asEvent(v)
		if !ok {
			return nil
		}
		if err := json.NewEncoder(s.writer).Encode(e); err != nil {
			return err
		}
		return s.flush()
	case "text":
		var err error
		switch t := v.(type) {
		case Analysis:
			err = s.renderAnalysis(t)
		case Event:
			err = s.renderEvent(t)
		default:
			return nil
		}
		if err != nil {
			return err
		}
		return s.flush()
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

// flush pushes buffered output to the terminal so progress lines show up
// before a slow clone finishes.
func (s *ConsoleSink) flush() error {
	if f, ok := s.writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (s *ConsoleSink) renderEvent(e Event) error {
	switch e.Type {
	case EventAcquireStarted:
		if e.Via == "api" {
			_, err := s.pal.blue.Fprintf(s.writer, "Fetching %s via GitHub API...\n", e.URL)
			return err
		}
		_, err := s.pal.blue.Fprintf(s.writer, "Cloning %s...\n", e.URL)
		return err
	case EventAnalysisFailed:
		_, err := s.pal.red.Fprintln(s.writer, e.Error)
		return err
	}
	return nil
}

func statusStyle(p palette, r rules.Rating) (string, *color.Color) {
	switch r {
	case rules.RatingUserHostile:
		return "❌  " + string(r), p.red
	case rules.RatingNeedsWork:
		return "⚠️  " + string(r), p.yellow
	default:
		return "✅  " + string(r), p.green
	}
}

func ruleLine(title string) string {
	if title == "" {
		return strings.Repeat("─", reportWidth)
	}
	side := (reportWidth - utf8.RuneCountInString(title) - 2) / 2
	if side < 3 {
		side = 3
	}
	return strings.Repeat("─", side) + " " + title + " " + strings.Repeat("─", side)
}

func (s *ConsoleSink) renderAnalysis(a Analysis) error {
	var b strings.Builder
	p := s.pal

	b.WriteString("\n")
	b.WriteString(p.bold.Sprint(ruleLine("README-FIRST REPORT")) + "\n\n")
	b.WriteString("Repository : " + p.bold.Sprint(a.Repo) + "\n")
	status, c := statusStyle(p, a.Rating)
	b.WriteString("Readiness  : " + c.Sprintf("%d / %d   %s", a.Score, rules.MaxScore, status) + "\n\n")

	if len(a.Essentials) > 0 {
		b.WriteString(p.boldRed.Sprint("❌ Missing Essentials") + "\n")
		for _, item := range a.Essentials {
			b.WriteString(p.red.Sprint("• "+item) + "\n")
		}
		b.WriteString("\n")
	}

	if len(a.Undocumented) > 0 {
		b.WriteString(p.boldYellow.Sprint("⚠️ Detected but Undocumented") + "\n")
		for _, item := range a.Undocumented {
			b.WriteString(p.yellow.Sprint("• "+item) + "\n")
		}
		b.WriteString("\n")
	}

	if !a.Detected.Empty() {
		b.WriteString(p.boldCyan.Sprint("ℹ️ Detected Configuration") + "\n")
		for _, line := range detectedLines(a) {
			b.WriteString("• " + line + "\n")
		}
		b.WriteString("\n")
	}

	if len(a.QuickStart) > 0 {
		b.WriteString(p.boldGreen.Sprint("✅ What You Should Add (Quick Start)") + "\n\n")
		for _, cmd := range a.QuickStart {
			b.WriteString("    " + cmd + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + ruleLine("") + "\n")
	b.WriteString(p.dim.Sprint(closingTip(a.Score)) + "\n\n")

	_, err := io.WriteString(s.writer, b.String())
	return err
}

func closingTip(score int) string {
	if score < 50 {
		return "Tip: Repos scoring below 50 are usually abandoned by users."
	}
	return "Tip: Keep up the good documentation!"
}

func detectedLines(a Analysis) []string {
	d := a.Detected
	var lines []string
	if d.PythonRequires != "" {
		lines = append(lines, "Python version   : "+d.PythonRequires)
	}
	if d.NodeEngine != "" {
		lines = append(lines, "Node engine      : "+d.NodeEngine)
	}
	if len(d.ComposeServices) > 0 {
		lines = append(lines, "Compose services : "+strings.Join(d.ComposeServices, ", "))
	}
	if len(d.EnvKeys) > 0 {
		lines = append(lines, "Env variables    : "+strings.Join(d.EnvKeys, ", "))
	}
	return lines
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.format {
	case "json":
		encoder := json.NewEncoder(s.writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s.doc); err != nil {
			return err
		}
		return s.flush()
	case "text", "ndjson":
		return nil
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}
