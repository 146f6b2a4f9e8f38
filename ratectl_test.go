package ratectl

import (
	"context"
	"testing"
)

func TestNewAppliesDefaults(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.params.TargetBitRate != 5_000_000 {
		t.Errorf("TargetBitRate = %d, want 5000000", s.params.TargetBitRate)
	}
	if s.params.IntraPeriodLength != 16 {
		t.Errorf("IntraPeriodLength = %d, want 16", s.params.IntraPeriodLength)
	}
	if s.pipelineCfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", s.pipelineCfg.Workers)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	s, err := New(
		WithTargetBitRate(1_000_000),
		WithFrameRate(24),
		WithIntraPeriod(8),
		WithResolution(1280, 720),
		WithWorkers(2),
		WithComplexity(500, 10),
		WithNoise(0.2),
		WithSeed(77),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.params.TargetBitRate != 1_000_000 {
		t.Errorf("TargetBitRate = %d, want 1000000", s.params.TargetBitRate)
	}
	if got := s.params.FrameRateQ16 >> 16; got != 24 {
		t.Errorf("FrameRate = %d, want 24", got)
	}
	if s.params.IntraPeriodLength != 8 {
		t.Errorf("IntraPeriodLength = %d, want 8", s.params.IntraPeriodLength)
	}
	if s.params.LumaWidth != 1280 || s.params.LumaHeight != 720 {
		t.Errorf("Resolution = %dx%d, want 1280x720", s.params.LumaWidth, s.params.LumaHeight)
	}
	if s.pipelineCfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", s.pipelineCfg.Workers)
	}
	if s.traceCfg.BaseComplexity != 500 || s.traceCfg.ComplexityJitter != 10 {
		t.Errorf("Complexity = %d/%d, want 500/10", s.traceCfg.BaseComplexity, s.traceCfg.ComplexityJitter)
	}
	if s.pipelineCfg.NoiseFactor != 0.2 {
		t.Errorf("NoiseFactor = %v, want 0.2", s.pipelineCfg.NoiseFactor)
	}
	if s.traceCfg.Seed != 77 || s.pipelineCfg.Seed != 77 {
		t.Errorf("Seed = %d/%d, want 77/77", s.traceCfg.Seed, s.pipelineCfg.Seed)
	}
}

func TestRunProducesAResult(t *testing.T) {
	s, err := New(WithWorkers(2), WithIntraPeriod(16))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := s.Run(context.Background(), 48)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.PicturesRun != 48 {
		t.Errorf("PicturesRun = %d, want 48", result.PicturesRun)
	}
	if result.GopCount < 2 {
		t.Errorf("GopCount = %d, want at least 2", result.GopCount)
	}
	if result.TotalBits == 0 {
		t.Error("TotalBits should be nonzero")
	}
}

func TestWithWorkersIgnoresNonPositive(t *testing.T) {
	s, err := New(WithWorkers(4))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	before := s.pipelineCfg.Workers

	WithWorkers(0)(s)
	WithWorkers(-1)(s)

	if s.pipelineCfg.Workers != before {
		t.Errorf("Workers = %d, want unchanged %d", s.pipelineCfg.Workers, before)
	}
}
