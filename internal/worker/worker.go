// Package worker provides types and utilities for the concurrent
// rate-control pipeline simulator.
package worker

// Semaphore provides a counting semaphore for controlling concurrency.
// It is used to limit the number of pictures in flight, the same role it
// plays bounding chunks in flight in the encoder pipeline this simulates.
type Semaphore struct {
	permits chan struct{}
}

// NewSemaphore creates a new semaphore with the given number of permits.
func NewSemaphore(count int) *Semaphore {
	if count <= 0 {
		count = 1
	}
	s := &Semaphore{
		permits: make(chan struct{}, count),
	}
	for i := 0; i < count; i++ {
		s.permits <- struct{}{}
	}
	return s
}

// Acquire blocks until a permit is available.
func (s *Semaphore) Acquire() {
	<-s.permits
}

// Release returns a permit to the semaphore.
func (s *Semaphore) Release() {
	select {
	case s.permits <- struct{}{}:
	default:
	}
}

// Chan returns the underlying permit channel for use with select, enabling
// context-aware acquisition alongside ctx.Done().
func (s *Semaphore) Chan() <-chan struct{} {
	return s.permits
}

// PictureResult contains the outcome of simulating one picture's encode.
type PictureResult struct {
	PictureNumber int
	Bits          uint64
	Error         error
}

// Progress represents simulation progress.
type Progress struct {
	PicturesTotal    int
	PicturesReported int
	PicturesEncoded  int
	BitsTotal        uint64
}

// Percent returns the completion percentage.
func (p Progress) Percent() float64 {
	if p.PicturesTotal == 0 {
		return 0
	}
	return float64(p.PicturesEncoded) / float64(p.PicturesTotal) * 100
}
