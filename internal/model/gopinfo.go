package model

// findGopHead walks backward from position until it reaches an entry with
// Exists == true. Picture 0 always has Exists == true once the sequence has
// started, which guarantees termination; worst case is O(P).
func (m *Model) findGopHead(position int) *GopInfo {
	for i := position; i >= 0; i-- {
		if m.gopInfos[i].Exists {
			return &m.gopInfos[i]
		}
	}
	// Unreachable under the init invariant (gopInfos[0].Exists is set when
	// GetQuantizer records picture 0 as the first intra), but guards against
	// a caller driving get_quantizer before the first intra.
	return &m.gopInfos[0]
}

// gopHeadFor resolves the GOP head for position, preferring the cached
// current head (the common case, O(1)) and falling back to a backward walk
// when position precedes it — e.g. a late, out-of-order report for an
// earlier picture. This mirrors the Design Notes' suggested cache without
// changing the external contract of findGopHead.
func (m *Model) gopHeadFor(position int) *GopInfo {
	if m.currentHead != nil && position >= m.currentHead.Index {
		return m.currentHead
	}
	return m.findGopHead(position)
}
