// Package ratectl provides a Go library wrapping the rate-control model
// in a synthetic-trace simulation harness.
//
// Basic usage:
//
//	sim, err := ratectl.New(
//	    ratectl.WithTargetBitRate(5_000_000),
//	    ratectl.WithIntraPeriod(16),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := sim.Run(ctx, 640)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("GOPs: %d, total bits: %d\n", result.GopCount, result.TotalBits)
package ratectl

import (
	"context"
	"fmt"

	"github.com/five82/ratectl/internal/config"
	"github.com/five82/ratectl/internal/logging"
	"github.com/five82/ratectl/internal/model"
	"github.com/five82/ratectl/internal/pipeline"
	"github.com/five82/ratectl/internal/reporter"
	"github.com/five82/ratectl/internal/sysinfo"
)

// Simulation is the main entry point for running the rate-control model
// against a synthetic picture trace.
type Simulation struct {
	params      config.SequenceParams
	pipelineCfg pipeline.Config
	traceCfg    pipeline.TraceConfig
	log         *logging.Logger
}

// Result contains the outcome of a simulation run.
type Result struct {
	TotalBits   uint64
	GopCount    int
	PicturesRun int
}

// Option configures a Simulation.
type Option func(*Simulation)

// New creates a new Simulation with the given options. Resolution defaults
// to 1920x1080, intra period to 16, target bitrate to 5Mbps, and worker
// count to the host's detected CPU affinity.
func New(opts ...Option) (*Simulation, error) {
	s := &Simulation{
		params: config.SequenceParams{
			TargetBitRate:     5_000_000,
			FrameRateQ16:      30 << 16,
			LumaWidth:         1920,
			LumaHeight:        1080,
			IntraPeriodLength: 16,
		},
		pipelineCfg: pipeline.Config{
			Workers:     sysinfo.DefaultWorkers(),
			ChunkBuffer: config.DefaultChunkBuffer,
			NoiseFactor: 0.1,
			Seed:        1,
		},
		traceCfg: pipeline.TraceConfig{
			BaseComplexity:   300,
			ComplexityJitter: 40,
			Seed:             1,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// WithTargetBitRate sets the target bitrate in bits/s.
func WithTargetBitRate(bps uint64) Option {
	return func(s *Simulation) { s.params.TargetBitRate = bps }
}

// WithFrameRate sets the frame rate in frames/s.
func WithFrameRate(fps uint64) Option {
	return func(s *Simulation) { s.params.FrameRateQ16 = fps << 16 }
}

// WithIntraPeriod sets the number of pictures between intra frames.
func WithIntraPeriod(n int) Option {
	return func(s *Simulation) { s.params.IntraPeriodLength = n }
}

// WithResolution sets the luma width and height in pixels.
func WithResolution(width, height uint32) Option {
	return func(s *Simulation) {
		s.params.LumaWidth = width
		s.params.LumaHeight = height
	}
}

// WithWorkers sets the simulated encoder worker pool size. A value <= 0
// leaves the host's CPU-affinity-derived default in place.
func WithWorkers(n int) Option {
	return func(s *Simulation) {
		if n > 0 {
			s.pipelineCfg.Workers = n
		}
	}
}

// WithChunkBuffer sets how many pictures are prefetched ahead of the worker
// pool.
func WithChunkBuffer(n int) Option {
	return func(s *Simulation) { s.pipelineCfg.ChunkBuffer = n }
}

// WithComplexity sets the baseline per-picture complexity and its jitter
// range fed to the synthetic trace generator.
func WithComplexity(base, jitter int64) Option {
	return func(s *Simulation) {
		s.traceCfg.BaseComplexity = base
		s.traceCfg.ComplexityJitter = jitter
	}
}

// WithNoise sets the fractional noise applied to simulated encoded sizes.
func WithNoise(factor float64) Option {
	return func(s *Simulation) { s.pipelineCfg.NoiseFactor = factor }
}

// WithSeed sets the RNG seed shared by the trace generator and the
// simulated-encode noise, so a Simulation's runs are reproducible.
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.traceCfg.Seed = seed
		s.pipelineCfg.Seed = seed
	}
}

// WithLogger attaches a logger the model will use for debug tracing.
func WithLogger(log *logging.Logger) Option {
	return func(s *Simulation) { s.log = log }
}

// Run simulates frames pictures using a NullReporter.
func (s *Simulation) Run(ctx context.Context, frames int) (*Result, error) {
	return s.RunWithReporter(ctx, frames, nil)
}

// RunWithReporter simulates frames pictures, emitting progress through rep.
// A nil rep discards all events.
func (s *Simulation) RunWithReporter(ctx context.Context, frames int, rep reporter.Reporter) (*Result, error) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}

	params := s.params
	params.FramesToBeEncoded = frames
	params.Workers = s.pipelineCfg.Workers

	m, err := model.New(params, s.log)
	if err != nil {
		return nil, fmt.Errorf("invalid sequence parameters: %w", err)
	}

	traceCfg := s.traceCfg
	traceCfg.Frames = frames
	traceCfg.IntraPeriod = params.IntraPeriodLength
	trace := pipeline.GenerateTrace(traceCfg)

	summary, err := pipeline.Run(ctx, m, trace, s.pipelineCfg, rep)
	if err != nil {
		return nil, err
	}

	return &Result{
		TotalBits:   summary.TotalBits,
		GopCount:    summary.GopCount,
		PicturesRun: summary.PicturesRun,
	}, nil
}
