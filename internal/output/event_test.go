package output

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEvent_MarshalExitCode(t *testing.T) {
	tests := []struct {
		name    string
		event   Event
		want    string
		wantNot string
	}{
		{name: "run finished with success", event: Event{Type: EventRunFinished, Repo: "demo"}, want: `"exit_code":0`},
		{name: "run finished with failure", event: Event{Type: EventRunFinished, ExitCode: 2}, want: `"exit_code":2`},
		{name: "other events omit exit code", event: Event{Type: EventAnalysisStarted, Repo: "demo"}, want: `"type":"analysis.started"`, wantNot: "exit_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.event)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if !strings.Contains(string(b), tt.want) {
				t.Fatalf("got %s, want it to contain %s", b, tt.want)
			}
			if tt.wantNot != "" && strings.Contains(string(b), tt.wantNot) {
				t.Fatalf("got %s, want no %s", b, tt.wantNot)
			}
			if strings.Count(string(b), "exit_code") > 1 {
				t.Fatalf("exit_code encoded twice: %s", b)
			}

			var back Event
			if err := json.Unmarshal(b, &back); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if back.Type != tt.event.Type || back.ExitCode != tt.event.ExitCode {
				t.Fatalf("decoded %+v, want %+v", back, tt.event)
			}
		})
	}
}

func TestConsoleSink_NDJSONRunFinishedCarriesZeroExitCode(t *testing.T) {
	var buf strings.Builder
	sink := NewConsoleSink(&buf, "ndjson", false)
	_ = sink.Write(Event{Type: EventRunFinished, Repo: "demo"})
	if err := sink.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if !strings.Contains(buf.String(), `"exit_code":0`) {
		t.Fatalf("run.finished line missing exit_code: %q", buf.String())
	}
}
