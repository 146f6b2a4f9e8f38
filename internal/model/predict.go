package model

// clip bounds v to [lo, hi].
func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// findSegment returns the first segment in list whose range contains c. If
// none does, it returns the last non-sentinel segment and reports
// extrapolated == true, signalling the caller to replace the computed pitch
// with the fixed max-complexity constant (§4.1's max-complexity policy).
// Lists are terminated by a sentinel (scopeEnd == MaxComplexity) whose cells
// are never read.
func findSegment(list []complexitySegment, c int64) (*complexitySegment, bool) {
	for i := range list {
		if list[i].contains(c) {
			return &list[i], false
		}
	}
	for i := len(list) - 1; i >= 0; i-- {
		if !list[i].isSentinel() {
			return &list[i], true
		}
	}
	return &list[len(list)-1], true
}

// segmentBits evaluates the bilinear formula for one (segment, qp, complexity)
// triple. When extrapolated is true, pitch is the fixed max-complexity
// constant rather than the segment's computed slope.
func segmentBits(seg *complexitySegment, qp int, c int64, extrapolated bool, fixedPitch int64) int64 {
	cell := seg.cells[qp]
	var pitch int64
	if extrapolated {
		pitch = fixedPitch
	} else {
		span := seg.scopeEnd - seg.scopeStart
		if span == 0 {
			pitch = 0
		} else {
			pitch = (cell.max - cell.min) / span
		}
	}
	return cell.min + pitch*(c-seg.scopeStart)
}

// intraBits predicts an intra frame's size in bits at the reference pixel
// area, for complexity c at quantizer qp.
func intraBits(c int64, qp int) int64 {
	seg, extrapolated := findSegment(intraTable, c)
	return segmentBits(seg, qp, c, extrapolated, PitchOnMaxComplexityForIntraFrames)
}

// interBits predicts an inter frame's size in bits at the reference pixel
// area, for temporal layer, complexity c and quantizer qp. DeltaLevels (7
// entries) spans more temporal layers than the inter complexity table (5,
// per the authoritative source); layers beyond the table's range reuse its
// deepest layer's model, on the grounds that the size/complexity surface
// the table captures saturates well before the QP-offset schedule does.
func interBits(temporalLayer int, c int64, qp int) int64 {
	layer := clip(temporalLayer, 0, MaxTemporalLayers-1)
	seg, extrapolated := findSegment(interTable[layer], c)
	return segmentBits(seg, qp, c, extrapolated, PitchOnMaxComplexityForInterFrames)
}

// PredictPictureBits exposes the model's own complexity/QP size prediction,
// scaled to pixels, for external callers that need to simulate a plausible
// encoded size without duplicating the table lookup (namely internal/pipeline's
// synthetic encoder). isIntra selects the intra or inter table.
func PredictPictureBits(isIntra bool, temporalLayer int, complexity int64, qp int, pixels uint64) int64 {
	var ref int64
	if isIntra {
		ref = intraBits(complexity, qp)
	} else {
		ref = interBits(temporalLayer, complexity, qp)
	}
	return scaleToActual(ref, pixels)
}

// scaleToActual converts a size predicted at the reference pixel area to the
// actual resolution's size (§4.8 backward scale).
func scaleToActual(sizeRef int64, pixels uint64) int64 {
	if pixels == 0 {
		return sizeRef
	}
	return sizeRef * int64(pixels) / ModelDefaultPixelArea
}

// scaleToReference converts a size at the actual resolution back to the
// reference pixel area (§4.8 forward scale).
func scaleToReference(sizeActual int64, pixels uint64) int64 {
	if pixels == 0 {
		return sizeActual
	}
	return sizeActual * ModelDefaultPixelArea / int64(pixels)
}

// estimateGopComplexity averages reported inter-frame complexity within the
// intra period ahead of head, skipping zero-complexity (unreported) entries
// and stopping at the next GOP head, if any falls inside the window.
func (m *Model) estimateGopComplexity(head *GopInfo) int64 {
	limit := head.Index + m.intraPeriod
	if limit > len(m.gopInfos) {
		limit = len(m.gopInfos)
	}
	var sum, count int64
	for i := head.Index + 1; i < limit; i++ {
		g := &m.gopInfos[i]
		if g.Exists {
			break
		}
		if g.Complexity == 0 {
			continue
		}
		sum += g.Complexity
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / count
}

// predictGopSize implements §4.3: given the GOP head and a candidate intra
// QP, it returns the predicted intra and total-inter sizes in bits, scaled
// to the model's actual resolution, and records each in-window picture's
// desired_size as a side effect (mirroring the reference, which folds
// prediction and bookkeeping into one pass).
func (m *Model) predictGopSize(head *GopInfo, intraQP int) (intraBitsScaled, totalInterBitsScaled int64) {
	cInter := m.estimateGopComplexity(head)

	window := m.intraPeriod
	if head.FramesInSW < window {
		window = head.FramesInSW
	}
	if remaining := len(m.gopInfos) - head.Index; remaining < window {
		window = remaining
	}
	if window < 0 {
		window = 0
	}

	var totalInterBitsRef int64
	for p := 1; p <= window; p++ {
		idx := head.Index + p
		if idx >= len(m.gopInfos) {
			break
		}
		g := &m.gopInfos[idx]
		interQP := clip(intraQP+DeltaLevels[g.TemporalLayerIndex], 0, MaxQPValue)
		bits := interBits(g.TemporalLayerIndex, cInter, interQP)
		g.DesiredSize = scaleToActual(bits, m.pixels)
		totalInterBitsRef += bits
	}

	var avgRef int64
	if head.FramesInSW > 0 {
		avgRef = totalInterBitsRef / int64(head.FramesInSW)
	}
	for p := window + 1; p < m.intraPeriod; p++ {
		idx := head.Index + p
		if idx >= len(m.gopInfos) {
			break
		}
		g := &m.gopInfos[idx]
		if g.Exists {
			break
		}
		g.DesiredSize = scaleToActual(avgRef, m.pixels)
	}

	intraBitsRef := intraBits(head.Complexity, intraQP)
	return scaleToActual(intraBitsRef, m.pixels), scaleToActual(totalInterBitsRef, m.pixels)
}
