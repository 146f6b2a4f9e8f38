package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONReporterEmitsOneEventPerLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporterWithWriter(&buf)

	r.SequenceStarted(SequenceSummary{TargetBitRate: 5_000_000, FrameRate: 30, IntraPeriod: 16, Width: 1920, Height: 1080, Workers: 4, Frames: 64})
	r.GopQPSelected(GopQPSelected{Index: 0, QP: 32, DesiredSize: 12345})
	r.Warning("example warning")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	var event map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &event); err != nil {
		t.Fatalf("line 0 is not valid JSON: %v", err)
	}
	if event["type"] != "sequence_started" {
		t.Errorf("line 0 type = %v, want sequence_started", event["type"])
	}

	if err := json.Unmarshal([]byte(lines[1]), &event); err != nil {
		t.Fatalf("line 1 is not valid JSON: %v", err)
	}
	if event["type"] != "gop_qp_selected" || event["qp"].(float64) != 32 {
		t.Errorf("line 1 = %v, want gop_qp_selected with qp 32", event)
	}
}

func TestNullReporterDiscardsEverything(t *testing.T) {
	var r Reporter = NullReporter{}
	r.SequenceStarted(SequenceSummary{})
	r.GopStarted(GopStarted{})
	r.GopQPSelected(GopQPSelected{})
	r.GopEncoded(GopEncoded{})
	r.DeviationUpdated(DeviationUpdated{})
	r.Progress(SequenceProgress{})
	r.SequenceComplete(SequenceComplete{})
	r.Warning("ignored")
	r.Error(ReporterError{})
	r.Verbose("ignored")
}

func TestCompositeReporterFansOutToAll(t *testing.T) {
	var bufA, bufB bytes.Buffer
	composite := NewCompositeReporter(NewJSONReporterWithWriter(&bufA), NewJSONReporterWithWriter(&bufB))

	composite.Warning("fan out")

	if bufA.Len() == 0 || bufB.Len() == 0 {
		t.Fatal("expected both reporters to receive the event")
	}
	if bufA.String() != bufB.String() {
		t.Errorf("reporters diverged: %q vs %q", bufA.String(), bufB.String())
	}
}
