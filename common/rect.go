package common

// Rect is an axis-aligned box in world pixels. X, Y is the lower-left
// corner; Y grows upwards.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromCenter builds a Rect of the given size centered on cx, cy.
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y }
func (r Rect) Top() float64    { return r.Y + r.Height }
