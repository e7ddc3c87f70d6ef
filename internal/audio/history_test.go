package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistorySnapshotOrder(t *testing.T) {
	h := NewHistory(8)
	for _, v := range []float64{1, 2, 3, 4} {
		h.Push(v)
	}
	assert.Equal(t, []float64{2, 3, 4}, h.Snapshot(3))
	assert.Equal(t, []float64{1, 2, 3, 4}, h.Snapshot(10))
}

func TestHistoryWrapAround(t *testing.T) {
	h := NewHistory(4)
	for v := 1.0; v <= 6; v++ {
		h.Push(v)
	}
	// Oldest entries were overwritten.
	assert.Equal(t, []float64{3, 4, 5, 6}, h.Snapshot(8))
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(4)
	assert.Empty(t, h.Snapshot(4))
}
