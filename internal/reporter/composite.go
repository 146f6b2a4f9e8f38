package reporter

// CompositeReporter fans out events to multiple reporters.
type CompositeReporter struct {
	reporters []Reporter
}

// NewCompositeReporter creates a composite reporter.
func NewCompositeReporter(reporters ...Reporter) *CompositeReporter {
	return &CompositeReporter{reporters: reporters}
}

func (c *CompositeReporter) SequenceStarted(summary SequenceSummary) {
	for _, r := range c.reporters {
		r.SequenceStarted(summary)
	}
}

func (c *CompositeReporter) GopStarted(event GopStarted) {
	for _, r := range c.reporters {
		r.GopStarted(event)
	}
}

func (c *CompositeReporter) GopQPSelected(event GopQPSelected) {
	for _, r := range c.reporters {
		r.GopQPSelected(event)
	}
}

func (c *CompositeReporter) GopEncoded(event GopEncoded) {
	for _, r := range c.reporters {
		r.GopEncoded(event)
	}
}

func (c *CompositeReporter) DeviationUpdated(update DeviationUpdated) {
	for _, r := range c.reporters {
		r.DeviationUpdated(update)
	}
}

func (c *CompositeReporter) Progress(update SequenceProgress) {
	for _, r := range c.reporters {
		r.Progress(update)
	}
}

func (c *CompositeReporter) SequenceComplete(summary SequenceComplete) {
	for _, r := range c.reporters {
		r.SequenceComplete(summary)
	}
}

func (c *CompositeReporter) Warning(message string) {
	for _, r := range c.reporters {
		r.Warning(message)
	}
}

func (c *CompositeReporter) Error(err ReporterError) {
	for _, r := range c.reporters {
		r.Error(err)
	}
}

func (c *CompositeReporter) Verbose(message string) {
	for _, r := range c.reporters {
		r.Verbose(message)
	}
}
