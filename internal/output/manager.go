package output

import (
	"errors"
	"fmt"
)

// Sink is a destination for analysis output. Write receives Analysis and
// Event values; Close finalises aggregate formats.
type Sink interface {
	Write(v any) error
	Close() error
}

// Manager fans every value out to all registered sinks, in order. Write
// failures are kept and reported again by Close.
type Manager struct {
	sinks     []Sink
	writeErrs []error
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) AddSink(s Sink) error {
	if m == nil {
		return fmt.Errorf("output manager is nil")
	}
	if s == nil {
		return fmt.Errorf("sink must not be nil")
	}
	m.sinks = append(m.sinks, s)
	return nil
}

func (m *Manager) Write(v any) error {
	if m == nil {
		return fmt.Errorf("output manager is nil")
	}
	var errs []error
	for _, s := range m.sinks {
		if err := s.Write(v); err != nil {
			errs = append(errs, fmt.Errorf("write %T: %w", s, err))
		}
	}
	if len(errs) > 0 {
		m.writeErrs = append(m.writeErrs, errs...)
		return fmt.Errorf("errors writing to sinks: %w", errors.Join(errs...))
	}
	return nil
}

// Started announces the analysis of target.
func (m *Manager) Started(repo, target string) {
	_ = m.Write(Event{Type: EventAnalysisStarted, Repo: repo, Target: target})
}

// Acquiring announces that url is being fetched via clone or api.
func (m *Manager) Acquiring(url, via string) {
	_ = m.Write(Event{Type: EventAcquireStarted, URL: url, Via: via})
}

// Failed reports an analysis that produced no score.
func (m *Manager) Failed(repo, target, msg string) {
	_ = m.Write(Event{Type: EventAnalysisFailed, Repo: repo, Target: target, Error: msg})
}

// Finished delivers a completed analysis.
func (m *Manager) Finished(a Analysis) {
	_ = m.Write(a)
}

// RunFinished records the process exit code.
func (m *Manager) RunFinished(repo string, code int) {
	_ = m.Write(Event{Type: EventRunFinished, Repo: repo, ExitCode: code})
}

// Close closes every sink even when some fail. The result includes earlier
// write failures.
func (m *Manager) Close() error {
	if m == nil {
		return fmt.Errorf("output manager is nil")
	}
	var errs []error
	if len(m.writeErrs) > 0 {
		errs = append(errs, fmt.Errorf("errors writing to sinks: %w", errors.Join(m.writeErrs...)))
	}
	var closeErrs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			closeErrs = append(closeErrs, fmt.Errorf("close %T: %w", s, err))
		}
	}
	if len(closeErrs) > 0 {
		errs = append(errs, fmt.Errorf("errors closing sinks: %w", errors.Join(closeErrs...)))
	}
	return errors.Join(errs...)
}
