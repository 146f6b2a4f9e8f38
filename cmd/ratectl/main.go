// Command ratectl drives the rate-control model against a synthetic
// picture trace, the same shape of exercise internal/pipeline runs in
// tests, but sized and reported for interactive use.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/ratectl/internal/config"
	"github.com/five82/ratectl/internal/logging"
	"github.com/five82/ratectl/internal/model"
	"github.com/five82/ratectl/internal/pipeline"
	"github.com/five82/ratectl/internal/reporter"
	"github.com/five82/ratectl/internal/sysinfo"
)

const appVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ratectl",
		Short: "Rate-control model simulator",
	}
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("ratectl version %s\n", appVersion)
			return nil
		},
	}
}

type simulateFlags struct {
	targetBitRate    uint64
	frameRate        uint64
	intraPeriod      int
	frames           int
	width            uint32
	height           uint32
	workers          int
	chunkBuffer      int
	baseComplexity   int64
	complexityJitter int64
	noise            float64
	seed             int64
	jsonOutput       bool
	verbose          bool
}

func newSimulateCmd() *cobra.Command {
	var f simulateFlags

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the rate-control model over a synthetic picture trace",
		Example: "  ratectl simulate --target-bitrate 5000000 --frame-rate 30 " +
			"--intra-period 16 --frames 640 --width 1920 --height 1080 --workers 8",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(f)
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&f.targetBitRate, "target-bitrate", 5_000_000, "target bitrate in bits/s")
	flags.Uint64Var(&f.frameRate, "frame-rate", 30, "frame rate in frames/s")
	flags.IntVar(&f.intraPeriod, "intra-period", 16, "pictures between intra frames")
	flags.IntVar(&f.frames, "frames", 640, "number of pictures to simulate")
	flags.Uint32Var(&f.width, "width", 1920, "luma width in pixels")
	flags.Uint32Var(&f.height, "height", 1080, "luma height in pixels")
	flags.IntVar(&f.workers, "workers", 0, "simulated encoder worker count (0 = detect from CPU affinity)")
	flags.IntVar(&f.chunkBuffer, "chunk-buffer", config.DefaultChunkBuffer, "pictures prefetched ahead of the worker pool")
	flags.Int64Var(&f.baseComplexity, "base-complexity", 300, "baseline per-picture complexity fed to the model")
	flags.Int64Var(&f.complexityJitter, "complexity-jitter", 40, "+/- range of per-picture complexity jitter")
	flags.Float64Var(&f.noise, "noise", 0.1, "fractional noise applied to simulated encoded sizes")
	flags.Int64Var(&f.seed, "seed", 1, "trace and simulated-encode RNG seed")
	flags.BoolVar(&f.jsonOutput, "json", false, "emit NDJSON events instead of terminal output")
	flags.BoolVar(&f.verbose, "verbose", false, "enable debug logging")

	return cmd
}

func runSimulate(f simulateFlags) error {
	workers := f.workers
	if workers <= 0 {
		workers = sysinfo.DefaultWorkers()
	}

	params := config.SequenceParams{
		FramesToBeEncoded: f.frames,
		TargetBitRate:     f.targetBitRate,
		FrameRateQ16:      f.frameRate << 16,
		LumaWidth:         f.width,
		LumaHeight:        f.height,
		IntraPeriodLength: f.intraPeriod,
		Workers:           workers,
	}

	logLevel := logging.LevelInfo
	if f.verbose {
		logLevel = logging.LevelDebug
	}
	log := logging.New(logging.Config{Level: logLevel, Output: os.Stderr, Enabled: true})

	m, err := model.New(params, log)
	if err != nil {
		return fmt.Errorf("invalid sequence parameters: %w", err)
	}

	var rep reporter.Reporter
	if f.jsonOutput {
		rep = reporter.NewJSONReporter()
	} else {
		rep = reporter.NewTerminalReporter()
	}

	rep.SequenceStarted(reporter.SequenceSummary{
		TargetBitRate: f.targetBitRate,
		FrameRate:     f.frameRate,
		IntraPeriod:   params.IntraPeriodLength,
		Width:         f.width,
		Height:        f.height,
		Workers:       workers,
		Frames:        f.frames,
	})

	trace := pipeline.GenerateTrace(pipeline.TraceConfig{
		Frames:           f.frames,
		IntraPeriod:      params.IntraPeriodLength,
		BaseComplexity:   f.baseComplexity,
		ComplexityJitter: f.complexityJitter,
		Seed:             f.seed,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	start := time.Now()
	summary, err := pipeline.Run(ctx, m, trace, pipeline.Config{
		Workers:     workers,
		ChunkBuffer: f.chunkBuffer,
		NoiseFactor: f.noise,
		Seed:        f.seed,
	}, rep)
	elapsed := time.Since(start)
	if err != nil {
		rep.Error(reporter.ReporterError{Title: "simulation failed", Message: err.Error()})
		return err
	}

	var avgSpeed float32
	if elapsed > 0 {
		avgSpeed = float32(summary.PicturesRun) / float32(elapsed.Seconds()) / float32(f.frameRate)
	}
	rep.SequenceComplete(reporter.SequenceComplete{
		TotalBits:     summary.TotalBits,
		GopCount:      summary.GopCount,
		PicturesRun:   summary.PicturesRun,
		TotalDuration: elapsed,
		AverageSpeed:  avgSpeed,
	})

	return nil
}
