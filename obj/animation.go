package obj

import "math"

// WalkAnimation swaps a sprite's texture between a standing frame and a
// cycle of walking frames. The cycle advances every ChangeDistance pixels
// of horizontal travel rather than on a timer.
type WalkAnimation struct {
	Stand          Texture
	Frames         []Texture
	ChangeDistance float64

	frame   int
	lastX   float64
	started bool
}

func NewWalkAnimation(stand Texture, frames []Texture, changeDistance float64) *WalkAnimation {
	return &WalkAnimation{Stand: stand, Frames: frames, ChangeDistance: changeDistance}
}

// Frame returns the index of the current walking frame.
func (a *WalkAnimation) Frame() int {
	return a.frame
}

func (a *WalkAnimation) Update(s *Sprite) {
	if !a.started {
		a.lastX = s.CenterX
		a.started = true
	}

	switch {
	case s.ChangeX < 0:
		s.FacingLeft = true
	case s.ChangeX > 0:
		s.FacingLeft = false
	}

	if s.ChangeX == 0 || len(a.Frames) == 0 {
		a.lastX = s.CenterX
		if a.Stand != nil {
			s.SetTexture(a.Stand)
		}
		return
	}

	if math.Abs(s.CenterX-a.lastX) >= a.ChangeDistance {
		a.lastX = s.CenterX
		a.frame = (a.frame + 1) % len(a.Frames)
	}
	s.SetTexture(a.Frames[a.frame])
}
