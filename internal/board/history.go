package board

// DefaultHistoryCapacity is the number of undo steps kept.
const DefaultHistoryCapacity = 50

// History is a bounded, snapshot-based undo stack. A gesture captures the
// pre-mutation state into a pending slot and commits it only when the
// gesture actually changed something; an uncommitted capture never touches
// the stack.
type History struct {
	entries  []Snapshot // oldest first
	pending  *Snapshot
	capacity int
}

// NewHistory creates a history holding at most capacity snapshots.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

// Capture records s as the pending snapshot, replacing any previous one.
func (h *History) Capture(s Snapshot) {
	cp := s.Clone()
	h.pending = &cp
}

// Commit pushes the pending snapshot, evicting the oldest entry at capacity.
// It reports whether anything was pending.
func (h *History) Commit() bool {
	if h.pending == nil {
		return false
	}
	h.push(*h.pending)
	h.pending = nil
	return true
}

// Discard drops the pending snapshot.
func (h *History) Discard() { h.pending = nil }

// HasPending reports whether a capture is awaiting commit.
func (h *History) HasPending() bool { return h.pending != nil }

// Record pushes s directly, for one-shot actions. A pending capture is left
// in place.
func (h *History) Record(s Snapshot) {
	h.push(s.Clone())
}

// Pop removes and returns the newest snapshot.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = Snapshot{}
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Len returns the number of committed snapshots.
func (h *History) Len() int { return len(h.entries) }

// Capacity returns the maximum number of snapshots kept.
func (h *History) Capacity() int { return h.capacity }

func (h *History) push(s Snapshot) {
	if len(h.entries) == h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = s
		return
	}
	h.entries = append(h.entries, s)
}
