package pipeline

import (
	"context"
	"math/rand"
	"sync"

	"github.com/five82/ratectl/internal/model"
	"github.com/five82/ratectl/internal/reporter"
	"github.com/five82/ratectl/internal/worker"
)

// assignedQPs hands the QP GetQuantizer chose for a picture off to the
// worker that later simulates its encode. A sync.Map rather than a plain
// map because the producer writes concurrently with worker reads across
// goroutines.
type assignedQPs struct {
	m sync.Map
}

func (a *assignedQPs) set(pictureNumber, qp int) { a.m.Store(pictureNumber, qp) }

func (a *assignedQPs) take(pictureNumber int) int {
	v, _ := a.m.LoadAndDelete(pictureNumber)
	qp, _ := v.(int)
	return qp
}

// Config configures a simulation run.
type Config struct {
	Workers     int
	ChunkBuffer int
	NoiseFactor float64 // fractional noise applied to simulated encoded size, e.g. 0.1 = +/-10%
	Seed        int64
}

// Summary reports the outcome of a completed run.
type Summary struct {
	TotalBits   uint64
	GopCount    int
	PicturesRun int
}

// Run drives pictures through m: a producer goroutine reports complexity and
// selects QPs strictly in picture order (required by the model's GOP-head
// cache), while Config.Workers worker goroutines simulate each picture's
// encode and call UpdateModel out of arrival order — modeled directly on
// the teacher's internal/encode/encode.go EncodeAll (semaphore-bounded work
// channel, sync.Once error capture, mutex-guarded progress, producer/worker/
// collector goroutines).
func Run(ctx context.Context, m *model.Model, pictures []model.Picture, cfg Config, rep reporter.Reporter) (Summary, error) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	buffer := cfg.ChunkBuffer
	if buffer < 0 {
		buffer = 0
	}

	permits := workers + buffer
	sem := worker.NewSemaphore(permits)
	workChan := make(chan model.Picture, permits)
	resultChan := make(chan worker.PictureResult, len(pictures))

	var runErr error
	var errOnce sync.Once

	var progressMu sync.Mutex
	progress := worker.Progress{PicturesTotal: len(pictures)}

	var qps assignedQPs

	var workersWg sync.WaitGroup
	for i := 0; i < workers; i++ {
		workersWg.Add(1)
		rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
		go func() {
			defer workersWg.Done()
			runWorker(ctx, m, workChan, resultChan, sem, cfg.NoiseFactor, rng, &qps)
		}()
	}

	var collectorWg sync.WaitGroup
	var totalBits uint64
	var gopCount int
	collectorWg.Add(1)
	go func() {
		defer collectorWg.Done()
		for result := range resultChan {
			if result.Error != nil {
				errOnce.Do(func() { runErr = result.Error })
				continue
			}
			progressMu.Lock()
			progress.PicturesEncoded++
			progress.BitsTotal += result.Bits
			progressMu.Unlock()

			totalBits += result.Bits

			head := m.GopForPicture(result.PictureNumber)
			if head.ReportedFrames == head.Length && head.Length > 0 {
				gopCount++
				rep.GopEncoded(reporter.GopEncoded{
					Index:       head.Index,
					Length:      head.Length,
					ActualSize:  head.ActualSize,
					DesiredSize: head.DesiredSize,
				})
			}

			rep.Progress(reporter.SequenceProgress{
				PicturesReported: result.PictureNumber + 1,
				PicturesEncoded:  progress.PicturesEncoded,
				PicturesTotal:    progress.PicturesTotal,
			})
		}
	}()

	go func() {
		defer close(workChan)
		for _, p := range pictures {
			select {
			case <-ctx.Done():
				errOnce.Do(func() { runErr = ctx.Err() })
				return
			default:
			}
			if runErr != nil {
				return
			}

			m.ReportComplexity(p)
			qp := m.GetQuantizer(p)
			qps.set(p.PictureNumber, qp)
			if p.FrameType == model.KeyFrame || p.FrameType == model.IntraOnlyFrame {
				head := m.GopForPicture(p.PictureNumber)
				rep.GopStarted(reporter.GopStarted{
					Index: head.Index, PictureNumber: p.PictureNumber,
					Complexity: p.Complexity, TemporalLayerIndex: p.TemporalLayerIndex,
				})
				rep.GopQPSelected(reporter.GopQPSelected{Index: head.Index, QP: qp, DesiredSize: head.DesiredSize})
			}

			sem.Acquire()
			workChan <- p
		}
	}()

	workersWg.Wait()
	close(resultChan)
	collectorWg.Wait()

	return Summary{TotalBits: totalBits, GopCount: gopCount, PicturesRun: len(pictures)}, runErr
}

func runWorker(ctx context.Context, m *model.Model, workChan <-chan model.Picture, resultChan chan<- worker.PictureResult, sem *worker.Semaphore, noise float64, rng *rand.Rand, qps *assignedQPs) {
	for p := range workChan {
		select {
		case <-ctx.Done():
			sem.Release()
			resultChan <- worker.PictureResult{PictureNumber: p.PictureNumber, Error: ctx.Err()}
			continue
		default:
		}

		qp := qps.take(p.PictureNumber)
		bits := simulateEncode(p, qp, m.Pixels(), noise, rng)
		p.TotalNumBits = bits
		m.UpdateModel(p)

		sem.Release()
		resultChan <- worker.PictureResult{PictureNumber: p.PictureNumber, Bits: bits}
	}
}

// simulateEncode stands in for the real encoder: it asks the model's own
// complexity/QP table for a plausible size at the QP GetQuantizer actually
// assigned this picture, then perturbs it by noise to mimic the gap between
// prediction and a real encode.
func simulateEncode(p model.Picture, qp int, pixels uint64, noise float64, rng *rand.Rand) uint64 {
	isIntra := p.FrameType == model.KeyFrame || p.FrameType == model.IntraOnlyFrame
	predicted := model.PredictPictureBits(isIntra, p.TemporalLayerIndex, p.Complexity, qp, pixels)
	if noise > 0 {
		jitter := 1 + (rng.Float64()*2-1)*noise
		predicted = int64(float64(predicted) * jitter)
	}
	if predicted < 0 {
		predicted = 0
	}
	return uint64(predicted)
}
