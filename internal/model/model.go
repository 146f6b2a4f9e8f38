// Package model implements the rate-control core: the complexity-to-size
// prediction tables, the GOP registry, the damped-feedback QP selector, the
// bracket-based deviation learner, and the mid-GOP on-the-fly adjuster.
//
// The Model is the sole piece of shared mutable state; every exported
// method except Pixels (which returns a value fixed at construction)
// acquires its mutex on entry and releases it on every exit path, is
// non-reentrant, and never calls back into caller code while held.
package model

import (
	"sync"

	"github.com/five82/ratectl/internal/config"
	"github.com/five82/ratectl/internal/logging"
)

// Model is process-wide, per-sequence rate-control state.
type Model struct {
	mu sync.Mutex

	targetBitRate uint64
	frameRate     uint64
	intraPeriod   int
	pixels        uint64

	totalBits      uint64
	reportedFrames uint64

	gopInfos    []GopInfo
	currentHead *GopInfo

	intraDeviation [IntraDeviationBracketNumber]deviationBracket
	interDeviation [InterDeviationBracketNumber]deviationBracket

	log *logging.Logger
}

// New constructs a Model for a sequence described by params. This is the
// core's only fallible operation (§4.9): params are validated and, on
// success, the gop_infos array and deviation tables are allocated.
func New(params config.SequenceParams, log *logging.Logger) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	m := &Model{
		targetBitRate:  params.TargetBitRate,
		frameRate:      params.FrameRate(),
		intraPeriod:    params.IntraPeriodLength,
		pixels:         params.Pixels(),
		gopInfos:       make([]GopInfo, params.FramesToBeEncoded),
		intraDeviation: intraDeviationDefaults,
		interDeviation: interDeviationDefaults,
		log:            log,
	}
	return m, nil
}

// ReportComplexity records the externally measured complexity of a picture.
// Called exactly once per picture, before GetQuantizer. Copies the scalars
// named in spec.md's Design Notes out of the caller's picture into the
// GopInfo entry so the model never holds a reference to caller-owned memory.
func (m *Model) ReportComplexity(p Picture) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := &m.gopInfos[p.PictureNumber]
	g.Index = p.PictureNumber
	g.Complexity = p.Complexity
	g.TemporalLayerIndex = p.TemporalLayerIndex
	g.FramesInSW = p.FramesInSW

	m.log.Debug("reported complexity",
		"picture", p.PictureNumber, "complexity", p.Complexity,
		"temporal_layer", p.TemporalLayerIndex)
}

// GetQuantizer assigns a QP to a picture. Called exactly once per picture.
// An intra/key picture starts a new GOP (§4.4–4.5); an inter picture returns
// its GOP head's QP shifted by DeltaLevels and, once enough of the GOP has
// reported, perturbed by the mid-GOP adjuster (§4.7).
func (m *Model) GetQuantizer(p Picture) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.FrameType.isIntra() {
		head := m.recordNewGop(p.PictureNumber, p.Complexity, p.TemporalLayerIndex, p.FramesInSW)
		qp := m.selectQP(head)
		m.log.Debug("selected gop qp",
			"picture", p.PictureNumber, "qp", qp, "desired_size", head.DesiredSize)
		return qp
	}

	head := m.gopHeadFor(p.PictureNumber)
	qp := clip(head.QP+DeltaLevels[p.TemporalLayerIndex], 0, MaxQPValue)

	if delta := m.onTheFlyDelta(head, p.TemporalLayerIndex); delta != 0 {
		qp = clip(qp+delta, 0, MaxQPValue)
		m.log.Debug("mid-gop adjustment",
			"picture", p.PictureNumber, "delta", delta, "qp", qp)
	}
	return qp
}

// Pixels returns the sequence's pixel area, for callers that need it to
// scale predictions themselves (e.g. internal/pipeline's synthetic encoder).
func (m *Model) Pixels() uint64 {
	return m.pixels
}

// Snapshot returns a copy of the GopInfo recorded for a picture index.
// This is not part of spec.md's external interface; it exists purely for
// observability (reporting, tests) and never influences model state.
func (m *Model) Snapshot(index int) GopInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gopInfos[index]
}

// GopForPicture returns a copy of the GopInfo for the GOP that owns
// pictureNumber — its head's entry for an inter picture, its own entry for
// an intra picture. Like Snapshot, this exists only for observability.
func (m *Model) GopForPicture(pictureNumber int) GopInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.gopHeadFor(pictureNumber)
}

// TotalBits returns the cumulative reported bits across the whole run so far.
func (m *Model) TotalBits() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalBits
}

// ReportedFrames returns the count of pictures whose UpdateModel has run.
func (m *Model) ReportedFrames() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reportedFrames
}

// UpdateModel records a picture's encoded size after it has been encoded.
// Called exactly once per picture, after ReportComplexity and GetQuantizer
// for that picture have both completed.
func (m *Model) UpdateModel(p Picture) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.applyUpdate(p)

	m.log.Debug("updated model",
		"picture", p.PictureNumber, "bits", p.TotalNumBits, "total_bits", m.totalBits)
}
