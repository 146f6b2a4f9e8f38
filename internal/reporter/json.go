package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// JSONReporter outputs NDJSON events, one per line.
type JSONReporter struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONReporter creates a new JSON reporter that writes to stdout.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{writer: os.Stdout}
}

// NewJSONReporterWithWriter creates a JSON reporter with a custom writer.
func NewJSONReporterWithWriter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w}
}

func (r *JSONReporter) timestamp() int64 {
	return time.Now().Unix()
}

func (r *JSONReporter) write(v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(r.writer, string(data))
}

func (r *JSONReporter) SequenceStarted(summary SequenceSummary) {
	r.write(map[string]interface{}{
		"type":            "sequence_started",
		"target_bit_rate": summary.TargetBitRate,
		"frame_rate":      summary.FrameRate,
		"intra_period":    summary.IntraPeriod,
		"width":           summary.Width,
		"height":          summary.Height,
		"workers":         summary.Workers,
		"frames":          summary.Frames,
		"timestamp":       r.timestamp(),
	})
}

func (r *JSONReporter) GopStarted(event GopStarted) {
	r.write(map[string]interface{}{
		"type":                 "gop_started",
		"index":                event.Index,
		"picture_number":       event.PictureNumber,
		"complexity":           event.Complexity,
		"temporal_layer_index": event.TemporalLayerIndex,
		"timestamp":            r.timestamp(),
	})
}

func (r *JSONReporter) GopQPSelected(event GopQPSelected) {
	r.write(map[string]interface{}{
		"type":         "gop_qp_selected",
		"index":        event.Index,
		"qp":           event.QP,
		"desired_size": event.DesiredSize,
		"timestamp":    r.timestamp(),
	})
}

func (r *JSONReporter) GopEncoded(event GopEncoded) {
	r.write(map[string]interface{}{
		"type":         "gop_encoded",
		"index":        event.Index,
		"length":       event.Length,
		"actual_size":  event.ActualSize,
		"desired_size": event.DesiredSize,
		"timestamp":    r.timestamp(),
	})
}

func (r *JSONReporter) DeviationUpdated(update DeviationUpdated) {
	r.write(map[string]interface{}{
		"type":          "deviation_updated",
		"kind":          update.Kind,
		"bracket_index": update.BracketIndex,
		"deviation_q16": update.Deviation,
		"reported":      update.Reported,
		"timestamp":     r.timestamp(),
	})
}

func (r *JSONReporter) Progress(update SequenceProgress) {
	r.write(map[string]interface{}{
		"type":              "progress",
		"pictures_reported": update.PicturesReported,
		"pictures_encoded":  update.PicturesEncoded,
		"pictures_total":    update.PicturesTotal,
		"speed":             update.Speed,
		"eta_seconds":       int64(update.ETA.Seconds()),
		"timestamp":         r.timestamp(),
	})
}

func (r *JSONReporter) SequenceComplete(summary SequenceComplete) {
	r.write(map[string]interface{}{
		"type":             "sequence_complete",
		"total_bits":       summary.TotalBits,
		"gop_count":        summary.GopCount,
		"pictures_run":     summary.PicturesRun,
		"duration_seconds": int64(summary.TotalDuration.Seconds()),
		"average_speed":    summary.AverageSpeed,
		"timestamp":        r.timestamp(),
	})
}

func (r *JSONReporter) Warning(message string) {
	r.write(map[string]interface{}{
		"type":      "warning",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) Error(err ReporterError) {
	r.write(map[string]interface{}{
		"type":       "error",
		"title":      err.Title,
		"message":    err.Message,
		"context":    err.Context,
		"suggestion": err.Suggestion,
		"timestamp":  r.timestamp(),
	})
}

func (r *JSONReporter) Verbose(message string) {
	r.write(map[string]interface{}{
		"type":      "verbose",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}
