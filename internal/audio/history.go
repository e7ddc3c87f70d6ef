package audio

import "sync"

// History records the last N smoothed levels into a ring buffer so the HUD
// can draw a short trace of recent input activity.
type History struct {
	mu        sync.RWMutex
	buffer    []float64
	nextIndex int
	stored    int
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = 1
	}
	return &History{buffer: make([]float64, size)}
}

func (h *History) Push(v float64) {
	h.mu.Lock()
	h.buffer[h.nextIndex] = v
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
	}
	if h.stored < len(h.buffer) {
		h.stored++
	}
	h.mu.Unlock()
}

// Snapshot returns up to the last n levels, most recent last.
func (h *History) Snapshot(n int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n > h.stored {
		n = h.stored
	}
	out := make([]float64, 0, n)
	// Walk backwards from nextIndex - 1.
	idx := h.nextIndex - 1
	if idx < 0 {
		idx = len(h.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, h.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(h.buffer) - 1
		}
	}
	// Reverse to chronological order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
