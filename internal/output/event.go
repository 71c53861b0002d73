package output

import (
	"encoding/json"

	"readmefirst/internal/manifest"
	"readmefirst/internal/rules"
)

// Lifecycle event types streamed in NDJSON mode.
const (
	EventAnalysisStarted  = "analysis.started"
	EventAcquireStarted   = "acquire.started"
	EventAnalysisFinished = "analysis.finished"
	EventAnalysisFailed   = "analysis.failed"
	EventRunFinished      = "run.finished"
)

// Analysis is the outcome of analysing one repository. The embedded report
// fields (score, rating, essentials, undocumented, deductions) are flattened
// in JSON.
type Analysis struct {
	Repo       string `json:"repo"`
	Target     string `json:"target"`
	ReadmePath string `json:"readme_path,omitempty"`
	rules.Report
	QuickStart []string         `json:"quick_start"`
	Detected   manifest.Details `json:"detected"`
}

// Event is a lifecycle record for NDJSON streaming output.
//
// Text mode renders acquire.started and analysis.failed; JSON mode folds
// events into a single document.
type Event struct {
	Type     string    `json:"type"`
	Repo     string    `json:"repo,omitempty"`
	Target   string    `json:"target,omitempty"`
	URL      string    `json:"url,omitempty"`
	Via      string    `json:"via,omitempty"`
	Error    string    `json:"error,omitempty"`
	Analysis *Analysis `json:"analysis,omitempty"`
	ExitCode int       `json:"exit_code,omitempty"`
}

// MarshalJSON always includes exit_code on run.finished, including 0, and
// omits it from every other event type.
func (e Event) MarshalJSON() ([]byte, error) {
	type plain Event
	if e.Type != EventRunFinished {
		return json.Marshal(plain(e))
	}
	return json.Marshal(struct {
		plain
		ExitCode int `json:"exit_code"`
	}{plain: plain(e), ExitCode: e.ExitCode})
}

func eventFromAnalysis(a Analysis) Event {
	return Event{Type: EventAnalysisFinished, Repo: a.Repo, Target: a.Target, Analysis: &a}
}

// Document is the aggregate JSON form of a run: the analysis when one was
// produced, otherwise the failure message.
type Document struct {
	Repo     string    `json:"repo"`
	Target   string    `json:"target"`
	Error    string    `json:"error,omitempty"`
	Analysis *Analysis `json:"analysis,omitempty"`
	ExitCode int       `json:"exit_code"`
}

// add folds v into the document. Unknown values are ignored.
func (d *Document) add(v any) {
	switch t := v.(type) {
	case Analysis:
		d.Repo, d.Target = t.Repo, t.Target
		d.Analysis = &t
	case Event:
		if t.Repo != "" {
			d.Repo = t.Repo
		}
		if t.Target != "" {
			d.Target = t.Target
		}
		switch t.Type {
		case EventAnalysisFailed:
			d.Error = t.Error
		case EventRunFinished:
			d.ExitCode = t.ExitCode
		}
	}
}

// asEvent converts v to the event streamed for it in NDJSON mode.
func asEvent(v any) (Event, bool) {
	switch t := v.(type) {
	case Event:
		return t, true
	case Analysis:
		return eventFromAnalysis(t), true
	default:
		return Event{}, false
	}
}
