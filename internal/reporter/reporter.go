package reporter

// Reporter defines the interface for simulation progress reporting.
type Reporter interface {
	SequenceStarted(summary SequenceSummary)
	GopStarted(event GopStarted)
	GopQPSelected(event GopQPSelected)
	GopEncoded(event GopEncoded)
	DeviationUpdated(update DeviationUpdated)
	Progress(update SequenceProgress)
	SequenceComplete(summary SequenceComplete)
	Warning(message string)
	Error(err ReporterError)
	Verbose(message string)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) SequenceStarted(SequenceSummary) {}
func (NullReporter) GopStarted(GopStarted)           {}
func (NullReporter) GopQPSelected(GopQPSelected)     {}
func (NullReporter) GopEncoded(GopEncoded)           {}
func (NullReporter) DeviationUpdated(DeviationUpdated) {}
func (NullReporter) Progress(SequenceProgress)       {}
func (NullReporter) SequenceComplete(SequenceComplete) {}
func (NullReporter) Warning(string)                  {}
func (NullReporter) Error(ReporterError)              {}
func (NullReporter) Verbose(string)                  {}
