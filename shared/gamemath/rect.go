package gamemath

// Rect is an integer axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H int
}

// NewRect truncates float coordinates to a Rect.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: int(x), Y: int(y), W: int(w), H: int(h)}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether r and o share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Inset returns a rectangle scaled to the given fractions of r and centred in it.
func (r Rect) Inset(fw, fh float64) Rect {
	w := int(float64(r.W) * fw)
	h := int(float64(r.H) * fh)
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}
