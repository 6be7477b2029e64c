package obj

import (
	"math"

	"github.com/milk9111/modordie/common"
)

// Camera tracks the lower-left corner of the visible window and scrolls it
// whenever the player gets closer than a margin to one of the screen edges.
type Camera struct {
	screenW float64
	screenH float64

	marginLeft   float64
	marginRight  float64
	marginBottom float64
	marginTop    float64

	viewLeft   float64
	viewBottom float64
}

// NewCamera creates a camera sized to the configured screen, positioned at
// the world origin.
func NewCamera(conf common.Conf) *Camera {
	return &Camera{
		screenW:      float64(conf.ScreenWidth),
		screenH:      float64(conf.ScreenHeight),
		marginLeft:   conf.LeftViewportMargin,
		marginRight:  conf.RightViewportMargin,
		marginBottom: conf.BottomViewportMargin,
		marginTop:    conf.TopViewportMargin,
	}
}

func (c *Camera) ViewLeft() float64   { return c.viewLeft }
func (c *Camera) ViewBottom() float64 { return c.viewBottom }

// Bounds returns the view rectangle as left, right, bottom, top.
func (c *Camera) Bounds() (left, right, bottom, top float64) {
	return c.viewLeft, c.viewLeft + c.screenW, c.viewBottom, c.viewBottom + c.screenH
}

// Center returns the world coordinate at the middle of the view.
func (c *Camera) Center() (float64, float64) {
	return c.viewLeft + c.screenW/2, c.viewBottom + c.screenH/2
}

// Reset moves the view back to the world origin.
func (c *Camera) Reset() {
	c.viewLeft = 0
	c.viewBottom = 0
}

// Scroll shifts the view just enough to bring the actor back inside the
// margins. All four edges are checked against the offsets as they were on
// entry, so the result does not depend on check order. The new offsets are
// truncated to whole pixels. It reports whether the view moved.
func (c *Camera) Scroll(actor common.Rect) bool {
	left, bottom := c.viewLeft, c.viewBottom
	var dx, dy float64
	changed := false

	if boundary := left + c.marginLeft; actor.Left() < boundary {
		dx -= boundary - actor.Left()
		changed = true
	}

	if boundary := left + c.screenW - c.marginRight; actor.Right() > boundary {
		dx += actor.Right() - boundary
		changed = true
	}

	if boundary := bottom + c.screenH - c.marginTop; actor.Top() > boundary {
		dy += actor.Top() - boundary
		changed = true
	}

	if boundary := bottom + c.marginBottom; actor.Bottom() < boundary {
		dy -= boundary - actor.Bottom()
		changed = true
	}

	if !changed {
		return false
	}

	c.viewLeft = math.Trunc(left + dx)
	c.viewBottom = math.Trunc(bottom + dy)
	return true
}
