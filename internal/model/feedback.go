package model

// applyUpdate implements §4.6's per-report bookkeeping and, once a GOP's
// reported_frames reaches its length, the bracket convergence step.
func (m *Model) applyUpdate(p Picture) {
	m.totalBits += p.TotalNumBits
	m.reportedFrames++

	head := m.gopHeadFor(p.PictureNumber)
	frame := &m.gopInfos[p.PictureNumber]

	head.ActualSize += p.TotalNumBits
	head.ReportedFrames++
	frame.Encoded = true

	if p.FrameType.isIntra() {
		head.IntraSize = p.TotalNumBits
	} else {
		frame.ActualSize = p.TotalNumBits
	}

	if head.Length > 0 && head.ReportedFrames == head.Length {
		m.completeGop(head)
	}
}

// completeGop updates the running per-bracket deviation factors once every
// frame of a GOP has reported, per §4.6.
func (m *Model) completeGop(head *GopInfo) {
	interSize := (int64(head.ActualSize) - int64(head.IntraSize)) / int64(m.intraPeriod)

	if head.IntraSize > 0 {
		intraVar := head.ExpectedIntraSize * head.IntraDeviation / int64(head.IntraSize)
		bracket := m.intraDeviationBracket(head.Complexity)
		updateDeviationBracket(bracket, intraVar)
	}

	if interSize > 0 {
		interVar := head.ExpectedInterSize * head.InterDeviation / interSize
		cInter := m.estimateGopComplexity(head)
		bracket := m.interDeviationBracket(cInter)
		updateDeviationBracket(bracket, interVar)
	}
}

// updateDeviationBracket folds one more observation into the bracket's
// bounded running average, per §4.6 / Invariant "Bounded learning".
func updateDeviationBracket(b *deviationBracket, v int64) {
	b.deviation = (b.deviation*int64(b.reported) + v) / int64(b.reported+1)
	if b.reported < MaxReported {
		b.reported++
	}
}
