package model

// targetGopBytes computes the raw per-GOP target: (target_bitrate /
// frame_rate) x intra_period. Despite the name (kept from the reference's
// get_gop_size_in_bytes for continuity), every size quantity in this package
// is denominated in bits — see the Units note in DESIGN.md — so this
// returns bits, not bytes.
func (m *Model) targetGopBytes() int64 {
	return int64(m.targetBitRate/m.frameRate) * int64(m.intraPeriod)
}

func (m *Model) perFrameTargetBytes() int64 {
	return int64(m.targetBitRate / m.frameRate)
}

// dampedTargetSize implements §4.4: the raw target corrected by the
// cumulative shortfall against what should have been delivered by now, with
// the >180-picture-index extra-damping quirk and the downsize-underflow
// policy both carried from the authoritative source.
func (m *Model) dampedTargetSize(gopIndex int) int64 {
	raw := m.targetGopBytes()
	shortfall := m.perFrameTargetBytes()*int64(m.reportedFrames) - int64(m.totalBits)

	damping := int64(DampingFactor)
	if gopIndex > dampingExtendedThreshold {
		damping = DampingFactorExtended
	}

	tentative := raw + shortfall/damping
	if tentative < 0 {
		return raw / MaxDownsizeFactor
	}
	return tentative
}

// fixedDivByQ16 divides value by a Q16 fixed-point multiplier, i.e.
// value / (denominator / 65536).
func fixedDivByQ16(value, q16Denominator int64) int64 {
	if q16Denominator == 0 {
		return value
	}
	return value * (1 << RCDeviationPrecision) / q16Denominator
}

// recordNewGop closes out the previous GOP head's length and opens the new
// one at index, computing its damped target size. It does not select a QP;
// callers invoke selectQP next.
func (m *Model) recordNewGop(index int, complexity int64, temporalLayer, framesInSW int) *GopInfo {
	if m.currentHead != nil {
		m.currentHead.Length = index - m.currentHead.Index
	}

	head := &m.gopInfos[index]
	head.Exists = true
	head.Index = index
	head.Complexity = complexity
	head.TemporalLayerIndex = temporalLayer
	head.FramesInSW = framesInSW
	head.DesiredSize = m.dampedTargetSize(index)

	m.currentHead = head
	return head
}

// selectQP implements §4.5: scan qp from 0 upward until the deviation-
// corrected predicted size fits within the GOP's desired size, or qp hits
// the ceiling.
func (m *Model) selectQP(head *GopInfo) int {
	cInter := m.estimateGopComplexity(head)

	intraBracket := m.intraDeviationBracket(head.Complexity)
	ensureInitialized(intraBracket)
	interBracket := m.interDeviationBracket(cInter)
	ensureInitialized(interBracket)

	for qp := 0; qp <= MaxQPValue; qp++ {
		intraBitsScaled, interBitsScaled := m.predictGopSize(head, qp)

		intraCorrected := fixedDivByQ16(intraBitsScaled, intraBracket.deviation)
		interCorrected := fixedDivByQ16(interBitsScaled, interBracket.deviation)

		if head.DesiredSize >= intraCorrected+interCorrected || qp == MaxQPValue {
			head.QP = qp
			head.IntraDeviation = intraBracket.deviation
			head.InterDeviation = interBracket.deviation
			head.ExpectedIntraSize = intraBitsScaled
			head.ExpectedInterSize = interBitsScaled / int64(m.intraPeriod)
			return qp
		}
	}
	return MaxQPValue
}
