// Package diag accumulates small numeric summaries over a modeler run:
// counts of rejected events by cause, a histogram of the end-of-stroke
// counts the caller reports, and the running max/average size of
// emitted result batches. It never touches the
// modeler's behavior; it only observes outcomes the caller reports.
package diag

import "strokemodel"

// Counters accumulates run statistics for a StrokeModeler.
type Counters struct {
	RejectedUnexpectedDown     int
	RejectedUnexpectedMove     int
	RejectedUnexpectedUp       int
	RejectedNoStrokeInProgress int

	CatchUpIterationHisto map[int]int

	batches      int
	totalEmitted int
	maxBatch     int
}

// NewCounters returns a zeroed set of counters.
func NewCounters() *Counters {
	return &Counters{CatchUpIterationHisto: make(map[int]int)}
}

// ObserveError records a rejected event by its sentinel cause. Errors
// not recognized as one of the modeler's sentinels are ignored.
func (c *Counters) ObserveError(err error) {
	switch err {
	case strokemodel.ErrUnexpectedDown:
		c.RejectedUnexpectedDown++
	case strokemodel.ErrUnexpectedMove:
		c.RejectedUnexpectedMove++
	case strokemodel.ErrUnexpectedUp:
		c.RejectedUnexpectedUp++
	case strokemodel.ErrNoStrokeInProgress:
		c.RejectedNoStrokeInProgress++
	}
}

// ObserveBatch records the size of one Update/Predict result batch.
func (c *Counters) ObserveBatch(n int) {
	c.batches++
	c.totalEmitted += n
	if n > c.maxBatch {
		c.maxBatch = n
	}
}

// ObserveCatchUpIterations adds one end-of-stroke count n to
// CatchUpIterationHisto.
func (c *Counters) ObserveCatchUpIterations(n int) {
	c.CatchUpIterationHisto[n]++
}

// AverageBatchSize returns the mean result-batch size observed so far,
// or 0 if no batches have been observed.
func (c *Counters) AverageBatchSize() float64 {
	if c.batches == 0 {
		return 0
	}
	return float64(c.totalEmitted) / float64(c.batches)
}

// MaxBatchSize returns the largest result-batch size observed so far.
func (c *Counters) MaxBatchSize() int { return c.maxBatch }

// TotalRejected returns the sum of every rejected-event counter.
func (c *Counters) TotalRejected() int {
	return c.RejectedUnexpectedDown + c.RejectedUnexpectedMove +
		c.RejectedUnexpectedUp + c.RejectedNoStrokeInProgress
}
