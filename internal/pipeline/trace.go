// Package pipeline simulates the concurrent encoder pipeline spec.md §1
// treats as an external collaborator: a sequential producer that reports
// complexity and assigns QPs in picture order, and a pool of workers that
// "encode" (simulate a measured size for) and report pictures back to the
// model out of order, exercising its out-of-order-tolerant contract end to
// end.
package pipeline

import (
	"math/rand"

	"github.com/five82/ratectl/internal/model"
)

// TraceConfig parameterizes a synthetic picture sequence.
type TraceConfig struct {
	Frames            int
	IntraPeriod       int
	BaseComplexity    int64
	ComplexityJitter  int64 // +/- range added to BaseComplexity per picture
	Seed              int64
}

// GenerateTrace builds a deterministic synthetic sequence of Pictures: one
// intra/key frame every IntraPeriod pictures, inter frames cycling through
// temporal layers 1..4 in between, complexity jittered by a seeded RNG so
// repeated runs with the same seed reproduce the same trace.
func GenerateTrace(cfg TraceConfig) []model.Picture {
	if cfg.IntraPeriod < 1 {
		cfg.IntraPeriod = 1
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	pictures := make([]model.Picture, cfg.Frames)
	for i := 0; i < cfg.Frames; i++ {
		frameType := model.InterFrame
		layer := 1 + ((i - 1) % 4)
		if i%cfg.IntraPeriod == 0 {
			frameType = model.KeyFrame
			layer = 0
		}

		complexity := cfg.BaseComplexity
		if cfg.ComplexityJitter > 0 {
			complexity += rng.Int63n(2*cfg.ComplexityJitter+1) - cfg.ComplexityJitter
		}
		if complexity < 1 {
			complexity = 1
		}

		pictures[i] = model.Picture{
			PictureNumber:      i,
			Complexity:         complexity,
			TemporalLayerIndex: layer,
			FramesInSW:         cfg.IntraPeriod,
			FrameType:          frameType,
		}
	}
	return pictures
}
