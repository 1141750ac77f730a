package solver

// history remembers the most recent position keys in a fixed-size ring.
type history struct {
	ring  []uint64
	next  int
	full  bool
	count map[uint64]int
}

func newHistory(size int) *history {
	if size <= 0 {
		return nil
	}
	return &history{
		ring:  make([]uint64, size),
		count: make(map[uint64]int, size),
	}
}

// visit records key and reports whether it was already in the window.
func (h *history) visit(key uint64) bool {
	if h == nil {
		return false
	}
	seen := h.count[key] > 0

	if h.full {
		old := h.ring[h.next]
		if h.count[old]--; h.count[old] == 0 {
			delete(h.count, old)
		}
	}
	h.ring[h.next] = key
	h.count[key]++
	h.next++
	if h.next == len(h.ring) {
		h.next = 0
		h.full = true
	}
	return seen
}
