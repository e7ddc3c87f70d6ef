package sim

// Field is a water surface simulated with a discrete wave equation on a
// regular grid. Two height buffers (current and previous) advance together;
// each Step computes the next state from the 4-neighbor laplacian and applies
// damping so disturbances die out over time.
type Field struct {
	w, h     int
	current  []float32
	previous []float32
	next     []float32 // scratch, reused every step
}

func NewField(w, h int) *Field {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Field{
		w:        w,
		h:        h,
		current:  make([]float32, w*h),
		previous: make([]float32, w*h),
		next:     make([]float32, w*h),
	}
}

func (f *Field) Width() int  { return f.w }
func (f *Field) Height() int { return f.h }

// Heights exposes the current height buffer, row-major. The slice is only
// valid until the next Step and must not be written by callers.
func (f *Field) Heights() []float32 { return f.current }

func (f *Field) At(x, y int) float32 {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return 0
	}
	return f.current[y*f.w+x]
}

// Disturb adds magnitude to the surface at (x, y). Out-of-bounds points are
// ignored.
func (f *Field) Disturb(x, y int, magnitude float64) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	f.current[y*f.w+x] += float32(magnitude)
}

// Step advances the simulation one tick:
//
//	next = 2*current - previous + speed*laplacian(current)
//	next *= damping
//
// Neighbors wrap toroidally, so waves leaving one edge re-enter the other.
func (f *Field) Step(speed, damping float64) {
	w, h := f.w, f.h
	cur, prev, next := f.current, f.previous, f.next
	sp := float32(speed)
	dm := float32(damping)

	for y := 0; y < h; y++ {
		up := y - 1
		if up < 0 {
			up = h - 1
		}
		down := y + 1
		if down >= h {
			down = 0
		}
		row := y * w
		rowUp := up * w
		rowDown := down * w

		for x := 0; x < w; x++ {
			left := x - 1
			if left < 0 {
				left = w - 1
			}
			right := x + 1
			if right >= w {
				right = 0
			}

			c := cur[row+x]
			lap := cur[rowUp+x] + cur[rowDown+x] + cur[row+left] + cur[row+right] - 4*c
			next[row+x] = (2*c - prev[row+x] + sp*lap) * dm
		}
	}

	f.previous, f.current, f.next = f.current, f.next, f.previous
}

// Energy is the sum of squared heights, used to observe overall decay.
func (f *Field) Energy() float64 {
	var e float64
	for _, v := range f.current {
		e += float64(v) * float64(v)
	}
	return e
}
