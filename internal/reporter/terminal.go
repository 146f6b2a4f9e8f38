package reporter

import (
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/five82/ratectl/internal/util"
)

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu         sync.Mutex
	progress   *progressbar.ProgressBar
	maxPercent float32
	cyan       *color.Color
	green      *color.Color
	yellow     *color.Color
	red        *color.Color
	magenta    *color.Color
	bold       *color.Color
}

// NewTerminalReporter creates a new terminal reporter.
func NewTerminalReporter() *TerminalReporter {
	return &TerminalReporter{
		cyan:    color.New(color.FgCyan, color.Bold),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		magenta: color.New(color.FgMagenta),
		bold:    color.New(color.Bold),
	}
}

func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Printf("  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) SequenceStarted(summary SequenceSummary) {
	fmt.Println()
	_, _ = r.cyan.Println("SEQUENCE")
	const w = 14
	r.printLabel(w, "Bitrate:", fmt.Sprintf("%d bps", summary.TargetBitRate))
	r.printLabel(w, "Frame rate:", fmt.Sprintf("%d fps", summary.FrameRate))
	r.printLabel(w, "Intra period:", fmt.Sprintf("%d", summary.IntraPeriod))
	r.printLabel(w, "Resolution:", fmt.Sprintf("%dx%d", summary.Width, summary.Height))
	r.printLabel(w, "Workers:", fmt.Sprintf("%d", summary.Workers))
	r.printLabel(w, "Frames:", fmt.Sprintf("%d", summary.Frames))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = progressbar.NewOptions(
		summary.Frames,
		progressbar.OptionSetDescription(""),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "Simulating [",
			BarEnd:        "]",
		}),
	)
}

func (r *TerminalReporter) GopStarted(event GopStarted) {
	fmt.Printf("  %s gop %d opens at picture %d (complexity %d, layer %d)\n",
		r.magenta.Sprint("›"), event.Index, event.PictureNumber, event.Complexity, event.TemporalLayerIndex)
}

func (r *TerminalReporter) GopQPSelected(event GopQPSelected) {
	fmt.Printf("  %s gop %d: qp=%d desired_size=%d\n",
		r.magenta.Sprint("›"), event.Index, event.QP, event.DesiredSize)
}

func (r *TerminalReporter) GopEncoded(event GopEncoded) {
	status := r.green.Sprint("on target")
	if event.ActualSize > uint64(event.DesiredSize)*2 {
		status = r.yellow.Sprint("overshoot")
	}
	fmt.Printf("  gop %d complete: %d pictures, %d bits actual vs %d desired (%s)\n",
		event.Index, event.Length, event.ActualSize, event.DesiredSize, status)
}

func (r *TerminalReporter) DeviationUpdated(update DeviationUpdated) {
	fmt.Printf("  %s %s bracket %d: deviation=%.4f reported=%d\n",
		r.bold.Sprint("deviation"), update.Kind, update.BracketIndex,
		float64(update.Deviation)/65536.0, update.Reported)
}

func (r *TerminalReporter) Progress(update SequenceProgress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress == nil {
		return
	}
	if float32(update.PicturesEncoded) >= r.maxPercent {
		r.maxPercent = float32(update.PicturesEncoded)
		_ = r.progress.Set(update.PicturesEncoded)
	}
	r.progress.Describe(fmt.Sprintf("speed %.1fx, eta %s", update.Speed,
		util.FormatDurationFromSecs(int64(update.ETA.Seconds()))))
}

func (r *TerminalReporter) SequenceComplete(summary SequenceComplete) {
	r.mu.Lock()
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
	r.mu.Unlock()

	fmt.Println()
	_, _ = r.cyan.Println("RESULTS")
	r.printLabel(14, "GOPs:", fmt.Sprintf("%d", summary.GopCount))
	r.printLabel(14, "Pictures:", fmt.Sprintf("%d", summary.PicturesRun))
	r.printLabel(14, "Total bits:", fmt.Sprintf("%d", summary.TotalBits))
	r.printLabel(14, "Time:", util.FormatDurationFromSecs(int64(summary.TotalDuration.Seconds())))
	r.printLabel(14, "Avg speed:", fmt.Sprintf("%.1fx", summary.AverageSpeed))
}

func (r *TerminalReporter) Warning(message string) {
	fmt.Println()
	_, _ = r.yellow.Printf("WARN: %s\n", message)
}

func (r *TerminalReporter) Error(err ReporterError) {
	_, _ = fmt.Fprintln(os.Stderr)
	_, _ = r.red.Fprintf(os.Stderr, "ERROR %s\n", err.Title)
	_, _ = fmt.Fprintf(os.Stderr, "  %s\n", err.Message)
	if err.Context != "" {
		_, _ = fmt.Fprintf(os.Stderr, "  Context: %s\n", err.Context)
	}
	if err.Suggestion != "" {
		_, _ = fmt.Fprintf(os.Stderr, "  Suggestion: %s\n", err.Suggestion)
	}
}

func (r *TerminalReporter) Verbose(message string) {
	fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint("·"), message)
}
