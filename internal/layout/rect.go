// Package layout computes character-grid regions for panes and overlays.
package layout

// Rect is a region of the character grid. X and Y are the top-left cell.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Direction is the axis a split runs along.
type Direction int

const (
	// Vertical stacks segments top to bottom.
	Vertical Direction = iota
	// Horizontal places segments left to right.
	Horizontal
)

// Split cuts r into one segment per percentage. Each segment gets
// floor(size*pct/100) cells; whatever is left over goes to the last segment
// so the segments always tile r exactly.
func Split(r Rect, dir Direction, percents ...int) []Rect {
	if len(percents) == 0 {
		return nil
	}
	total := r.Width
	if dir == Vertical {
		total = r.Height
	}
	sizes := make([]int, len(percents))
	used := 0
	for i, p := range percents {
		p = clamp(p, 0, 100)
		sizes[i] = total * p / 100
		used += sizes[i]
	}
	if rest := total - used; rest > 0 {
		sizes[len(sizes)-1] += rest
	}
	return place(r, dir, sizes)
}

// SplitEqual cuts r into n segments of equal size. Leftover cells are given
// one each to the leading segments.
func SplitEqual(r Rect, dir Direction, n int) []Rect {
	if n <= 0 {
		return nil
	}
	total := r.Width
	if dir == Vertical {
		total = r.Height
	}
	sizes := make([]int, n)
	base, rest := total/n, total%n
	for i := range sizes {
		sizes[i] = base
		if i < rest {
			sizes[i]++
		}
	}
	return place(r, dir, sizes)
}

// CenteredRect returns the region in the middle of r covering percentX of its
// width and percentY of its height. r is split vertically first and the
// middle band is then split horizontally.
func CenteredRect(percentX, percentY int, r Rect) Rect {
	percentX = clamp(percentX, 0, 100)
	percentY = clamp(percentY, 0, 100)
	rows := Split(r, Vertical, (100-percentY)/2, percentY, (100-percentY)/2)
	cols := Split(rows[1], Horizontal, (100-percentX)/2, percentX, (100-percentX)/2)
	return cols[1]
}

func place(r Rect, dir Direction, sizes []int) []Rect {
	out := make([]Rect, len(sizes))
	offset := 0
	for i, size := range sizes {
		if dir == Vertical {
			out[i] = Rect{X: r.X, Y: r.Y + offset, Width: r.Width, Height: size}
		} else {
			out[i] = Rect{X: r.X + offset, Y: r.Y, Width: size, Height: r.Height}
		}
		offset += size
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
