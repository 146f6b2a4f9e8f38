package model

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// onTheFlyDelta implements §4.7: once enough of a GOP has reported and the
// requesting frame's temporal layer is shallow enough to be worth
// correcting, compute a bounded QP nudge from the cumulative byte deviation
// observed so far this GOP.
func (m *Model) onTheFlyDelta(head *GopInfo, temporalLayerIndex int) int {
	if head.ReportedFrames <= AmountOfReportedFramesToTriggerOnTheFlyQP {
		return 0
	}
	if temporalLayerIndex >= MaxInterLevelForOnTheFlyQP {
		return 0
	}

	interFramesReported := int64(head.ReportedFrames - 1)
	expected := head.ExpectedInterSize * interFramesReported
	actual := int64(head.ActualSize) - int64(head.IntraSize)
	if actual <= 0 {
		return 0
	}

	r := (expected + head.ExpectedIntraSize) * 10 / (actual + int64(head.IntraSize))
	delta := 10 - abs64(r)

	if delta > MaxDeltaQPWithinGOP {
		delta = MaxDeltaQPWithinGOP
	}
	if delta < -MaxDeltaQPWithinGOP {
		delta = -MaxDeltaQPWithinGOP
	}
	return int(delta)
}
