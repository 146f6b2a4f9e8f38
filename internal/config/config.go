// Package config provides configuration types and validation for ratectl.
package config

import (
	"fmt"

	"github.com/five82/ratectl/internal/ratectlerrors"
)

// Default constants for the simulator's worker pool, mirroring the teacher's
// AutoParallelConfig defaults for an encoding pipeline's worker sizing.
const (
	// DefaultWorkers is the default simulated encoder worker count before
	// internal/sysinfo's CPU-affinity sizing is consulted.
	DefaultWorkers = 8

	// DefaultChunkBuffer is the prefetch depth kept ready for workers.
	DefaultChunkBuffer = 4

	// MaxQP and MinQP bound the quantizer range the model must stay within.
	MaxQP = 63
	MinQP = 0
)

// SequenceParams are the constructor inputs named in spec.md §6's init:
// frames_to_be_encoded, target_bit_rate, frame_rate (16.16 fixed point),
// luma_width, luma_height, intra_period_length.
type SequenceParams struct {
	// FramesToBeEncoded is N, the number of pictures in the sequence.
	FramesToBeEncoded int

	// TargetBitRate is the target bitrate in bits/s.
	TargetBitRate uint64

	// FrameRateQ16 is the frame rate as a 16.16 fixed-point value; the model
	// shifts this right by 16 to obtain an integer frames/s.
	FrameRateQ16 uint64

	// LumaWidth and LumaHeight are the actual resolution in pixels.
	LumaWidth  uint32
	LumaHeight uint32

	// IntraPeriodLength is P, the number of pictures between successive
	// intra frames. Values below 1 are clamped to 1 by Validate.
	IntraPeriodLength int

	// Workers is the number of simulated encoder worker goroutines the
	// pipeline harness should run; 0 means "let internal/sysinfo decide".
	Workers int
}

// Validate checks sequence parameters for errors and applies the
// intra-period clamp spec.md §6 requires ("clamped to ≥1").
func (p *SequenceParams) Validate() error {
	if p.FramesToBeEncoded <= 0 {
		return ratectlerrors.NewConfigError(fmt.Sprintf("frames_to_be_encoded must be positive, got %d", p.FramesToBeEncoded))
	}
	if p.TargetBitRate == 0 {
		return ratectlerrors.NewConfigError("target_bit_rate must be non-zero")
	}
	if p.FrameRateQ16>>16 == 0 {
		return ratectlerrors.NewConfigError("frame_rate must shift right by 16 to a non-zero frames/s")
	}
	if p.LumaWidth == 0 || p.LumaHeight == 0 {
		return ratectlerrors.NewConfigError(fmt.Sprintf("luma_width and luma_height must be non-zero, got %dx%d", p.LumaWidth, p.LumaHeight))
	}
	if p.IntraPeriodLength < 1 {
		p.IntraPeriodLength = 1
	}
	if p.Workers < 0 {
		return ratectlerrors.NewConfigError(fmt.Sprintf("workers must be non-negative, got %d", p.Workers))
	}
	return nil
}

// Pixels returns the actual resolution's pixel area.
func (p *SequenceParams) Pixels() uint64 {
	return uint64(p.LumaWidth) * uint64(p.LumaHeight)
}

// FrameRate returns the frame rate in frames/s, after the 16.16 shift.
func (p *SequenceParams) FrameRate() uint64 {
	return p.FrameRateQ16 >> 16
}
