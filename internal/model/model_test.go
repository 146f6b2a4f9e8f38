package model

import (
	"testing"

	"github.com/five82/ratectl/internal/config"
)

func newTestModel(t *testing.T, targetBitRate uint64, n, intraPeriod int) *Model {
	t.Helper()
	params := config.SequenceParams{
		FramesToBeEncoded: n,
		TargetBitRate:     targetBitRate,
		FrameRateQ16:      30 << 16,
		LumaWidth:         1920,
		LumaHeight:        1080,
		IntraPeriodLength: intraPeriod,
	}
	m, err := New(params, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

// simulatedEncode returns a plausible encoded size for a picture at qp by
// asking the tables directly, mirroring what a real encoder would produce
// if it hit the model's own prediction exactly.
func simulatedEncode(m *Model, p Picture, qp int) uint64 {
	var bits int64
	if p.FrameType.isIntra() {
		bits = scaleToActual(intraBits(p.Complexity, qp), m.pixels)
	} else {
		bits = scaleToActual(interBits(p.TemporalLayerIndex, p.Complexity, qp), m.pixels)
	}
	if bits < 0 {
		bits = 0
	}
	return uint64(bits)
}

// TestDegenerateLowBitrate is spec.md §8 scenario 1.
func TestDegenerateLowBitrate(t *testing.T) {
	m := newTestModel(t, 100_000, 64, 16)

	var lastIntraQP int
	gopCount := 0
	for i := 0; i < 64; i++ {
		frameType := InterFrame
		layer := 0
		if i%16 == 0 {
			frameType = KeyFrame
			gopCount++
		} else {
			layer = ((i-1)%5) + 1
		}

		p := Picture{PictureNumber: i, Complexity: 500, TemporalLayerIndex: layer, FramesInSW: 16, FrameType: frameType}
		m.ReportComplexity(p)
		qp := m.GetQuantizer(p)
		if qp < 0 || qp > MaxQPValue {
			t.Fatalf("picture %d: qp %d out of [0,63]", i, qp)
		}
		if frameType == KeyFrame {
			lastIntraQP = qp
		}

		p.TotalNumBits = simulatedEncode(m, p, qp)
		m.UpdateModel(p)
	}

	if gopCount < 4 {
		t.Fatalf("expected at least 4 GOPs, got %d", gopCount)
	}
	if lastIntraQP < 45 {
		t.Errorf("expected last intra QP >= 45 at 100kbps, got %d", lastIntraQP)
	}

	perFrameTarget := float64(m.targetBitRate) / float64(m.frameRate)
	want := perFrameTarget * float64(m.reportedFrames)
	got := float64(m.totalBits)
	if got < want*0.75 || got > want*1.25 {
		t.Errorf("total_bits %v not within 25%% of target %v", got, want)
	}
}

// TestFeedbackConvergence is spec.md §8 scenario 2.
//
// completeGop only fires once a GOP's Length is known, and Length is only
// set retroactively when the *next* GOP's head is selected (select.go's
// recordNewGop). So pictures must all be selected (ReportComplexity +
// GetQuantizer) in picture order before any of them are updated — exactly
// how internal/pipeline's producer runs ahead of its worker pool — rather
// than interleaving select/update one GOP at a time. A 4th head is added
// solely to close out GOP 2's Length; only GOPs 0-2 are expected to
// complete and feed the bracket.
func TestFeedbackConvergence(t *testing.T) {
	m := newTestModel(t, 5_000_000, 49, 16)

	type selected struct {
		p  Picture
		qp int
	}
	var pics []selected

	for gop := 0; gop < 4; gop++ {
		head := Picture{PictureNumber: gop * 16, Complexity: 300, TemporalLayerIndex: 0, FramesInSW: 16, FrameType: KeyFrame}
		m.ReportComplexity(head)
		qp := m.GetQuantizer(head)
		pics = append(pics, selected{head, qp})

		if gop == 3 {
			break // the closing head only needs to be selected, not fully encoded
		}

		for p := 1; p < 16; p++ {
			pic := Picture{PictureNumber: gop*16 + p, Complexity: 300, TemporalLayerIndex: 1, FramesInSW: 16, FrameType: InterFrame}
			m.ReportComplexity(pic)
			pqp := m.GetQuantizer(pic)
			pics = append(pics, selected{pic, pqp})
		}
	}

	for _, s := range pics {
		p := s.p
		p.TotalNumBits = simulatedEncode(m, p, s.qp) * 2
		m.UpdateModel(p)
	}

	bracket := m.intraDeviationBracket(300)
	if bracket.reported != 3 {
		t.Errorf("reported = %d, want 3", bracket.reported)
	}
	want := int64(2) << RCDeviationPrecision
	tolerance := want / 4
	if bracket.deviation < want-tolerance || bracket.deviation > want+tolerance {
		t.Errorf("deviation = %d, want close to %d (2.0 in Q16)", bracket.deviation, want)
	}
}

// TestDownsizePath is spec.md §8 scenario 3.
func TestDownsizePath(t *testing.T) {
	m := newTestModel(t, 1_000_000, 64, 16)
	raw := m.targetGopBytes()

	for gop := 0; gop < 3; gop++ {
		head := Picture{PictureNumber: gop * 16, Complexity: 300, TemporalLayerIndex: 0, FramesInSW: 16, FrameType: KeyFrame}
		m.ReportComplexity(head)
		qp := m.GetQuantizer(head)

		expected := simulatedEncode(m, head, qp)
		head.TotalNumBits = expected * 10
		m.UpdateModel(head)

		for p := 1; p < 16; p++ {
			pic := Picture{PictureNumber: gop*16 + p, Complexity: 300, TemporalLayerIndex: 1, FramesInSW: 16, FrameType: InterFrame}
			m.ReportComplexity(pic)
			pqp := m.GetQuantizer(pic)
			pic.TotalNumBits = simulatedEncode(m, pic, pqp) * 10
			m.UpdateModel(pic)
		}
	}

	fourth := Picture{PictureNumber: 48, Complexity: 300, TemporalLayerIndex: 0, FramesInSW: 16, FrameType: KeyFrame}
	m.ReportComplexity(fourth)
	m.GetQuantizer(fourth)

	desired := m.gopInfos[48].DesiredSize
	if desired >= raw {
		t.Errorf("desired_size %d should be strictly less than raw target %d after heavy overshoot", desired, raw)
	}
	if desired != raw/MaxDownsizeFactor {
		t.Errorf("desired_size = %d, want raw/%d = %d (underflow policy)", desired, MaxDownsizeFactor, raw/MaxDownsizeFactor)
	}
}

// TestIntraPeriodOne is spec.md §8 scenario 5.
//
// Every picture is its own GOP head, but a head's Length is only known once
// the following head is selected. Select all 9 pictures (8 under test plus
// one closing head) before updating any of them, so Length is populated for
// all 8 by the time it's checked.
func TestIntraPeriodOne(t *testing.T) {
	m := newTestModel(t, 5_000_000, 9, 0)
	if m.intraPeriod != 1 {
		t.Fatalf("intraPeriod = %d, want 1 (clamped)", m.intraPeriod)
	}

	pictures := make([]Picture, 9)
	qps := make([]int, 9)
	for i := range pictures {
		p := Picture{PictureNumber: i, Complexity: 300, TemporalLayerIndex: 0, FramesInSW: 1, FrameType: KeyFrame}
		m.ReportComplexity(p)
		qp := m.GetQuantizer(p)
		if qp < 0 || qp > MaxQPValue {
			t.Fatalf("picture %d: qp out of range: %d", i, qp)
		}
		pictures[i], qps[i] = p, qp
	}

	for i, p := range pictures {
		p.TotalNumBits = simulatedEncode(m, p, qps[i])
		m.UpdateModel(p)
	}

	for i := 0; i < 8; i++ {
		if m.gopInfos[i].Length != 1 {
			t.Errorf("picture %d: Length = %d, want 1", i, m.gopInfos[i].Length)
		}
	}
}

// TestComplexitySentinel is spec.md §8 scenario 6.
func TestComplexitySentinel(t *testing.T) {
	got := intraBits(50000, 20)
	lastReal, extrapolated := findSegment(intraTable, 1600)
	if extrapolated {
		t.Fatal("1600 should resolve to a real segment")
	}
	want := lastReal.cells[20].min + PitchOnMaxComplexityForIntraFrames*(50000-lastReal.scopeStart)
	if got != want {
		t.Errorf("intraBits(50000, 20) = %d, want %d", got, want)
	}
}

func TestGetQuantizerClamping(t *testing.T) {
	m := newTestModel(t, 50_000_000_000, 16, 16)
	p := Picture{PictureNumber: 0, Complexity: 1, TemporalLayerIndex: 0, FramesInSW: 16, FrameType: KeyFrame}
	m.ReportComplexity(p)
	qp := m.GetQuantizer(p)
	if qp < 0 || qp > MaxQPValue {
		t.Errorf("qp %d out of [0,63] at an enormous bitrate", qp)
	}
}

// TestBoundedLearning drives 10 GOPs (plus one closing head) of deliberate
// overshoot to completion and checks that the intra bracket's Reported
// count saturates at MaxReported. As in TestFeedbackConvergence, every
// picture must be selected before any is updated, or completeGop never
// fires and the assertion would hold vacuously on an always-zero Reported.
func TestBoundedLearning(t *testing.T) {
	m := newTestModel(t, 5_000_000, 161, 16)

	type selected struct {
		p  Picture
		qp int
	}
	var pics []selected

	for gop := 0; gop < 11; gop++ {
		p := Picture{PictureNumber: gop * 16, Complexity: 300, TemporalLayerIndex: 0, FramesInSW: 16, FrameType: KeyFrame}
		m.ReportComplexity(p)
		qp := m.GetQuantizer(p)
		pics = append(pics, selected{p, qp})

		if gop == 10 {
			break // the closing head only needs to be selected, not fully encoded
		}

		for f := 1; f < 16; f++ {
			ip := Picture{PictureNumber: gop*16 + f, Complexity: 300, TemporalLayerIndex: 1, FramesInSW: 16, FrameType: InterFrame}
			m.ReportComplexity(ip)
			iqp := m.GetQuantizer(ip)
			pics = append(pics, selected{ip, iqp})
		}
	}

	for _, s := range pics {
		p := s.p
		if p.FrameType.isIntra() {
			p.TotalNumBits = simulatedEncode(m, p, s.qp) * 3
		} else {
			p.TotalNumBits = simulatedEncode(m, p, s.qp)
		}
		m.UpdateModel(p)
	}

	bracket := m.intraDeviationBracket(300)
	if bracket.reported != MaxReported {
		t.Errorf("reported = %d, want MaxReported (%d) after 10 completed GOPs of overshoot", bracket.reported, MaxReported)
	}
	for i, b := range m.intraDeviation {
		if b.reported > MaxReported {
			t.Errorf("intra bracket %d: reported = %d, exceeds MaxReported", i, b.reported)
		}
	}
}

func TestReportedFramesAndTotalBitsMonotone(t *testing.T) {
	m := newTestModel(t, 5_000_000, 32, 16)
	var lastReported, lastBits uint64
	for i := 0; i < 32; i++ {
		frameType := InterFrame
		if i%16 == 0 {
			frameType = KeyFrame
		}
		p := Picture{PictureNumber: i, Complexity: 300, TemporalLayerIndex: 0, FramesInSW: 16, FrameType: frameType}
		m.ReportComplexity(p)
		qp := m.GetQuantizer(p)
		p.TotalNumBits = simulatedEncode(m, p, qp)
		m.UpdateModel(p)

		if m.reportedFrames < lastReported {
			t.Fatalf("reportedFrames decreased: %d -> %d", lastReported, m.reportedFrames)
		}
		if m.totalBits < lastBits {
			t.Fatalf("totalBits decreased: %d -> %d", lastBits, m.totalBits)
		}
		lastReported, lastBits = m.reportedFrames, m.totalBits
	}
}

func TestDeterministicAcrossInstances(t *testing.T) {
	run := func() []int {
		m := newTestModel(t, 5_000_000, 32, 16)
		var qps []int
		for i := 0; i < 32; i++ {
			frameType := InterFrame
			layer := 1
			if i%16 == 0 {
				frameType = KeyFrame
				layer = 0
			}
			p := Picture{PictureNumber: i, Complexity: 400, TemporalLayerIndex: layer, FramesInSW: 16, FrameType: frameType}
			m.ReportComplexity(p)
			qp := m.GetQuantizer(p)
			qps = append(qps, qp)
			p.TotalNumBits = simulatedEncode(m, p, qp)
			m.UpdateModel(p)
		}
		return qps
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("picture %d: qp %d != %d across independent instances", i, a[i], b[i])
		}
	}
}
