package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/modordie/common"
)

// Sprite is a positioned, textured object: the player or a map tile.
// Coordinates are world pixels with Y pointing up.
type Sprite struct {
	CenterX float64
	CenterY float64
	ChangeX float64
	ChangeY float64
	Scale   float64

	FacingLeft bool

	// HomeX is the x coordinate an animated tile oscillates around.
	HomeX float64
	Wave  *Oscillator
	Walk  *WalkAnimation

	texture Texture
	body    *cp.Body
}

func NewSprite(tex Texture, x, y float64) *Sprite {
	return &Sprite{CenterX: x, CenterY: y, Scale: 1, texture: tex}
}

func (s *Sprite) Texture() Texture { return s.texture }

func (s *Sprite) SetTexture(tex Texture) { s.texture = tex }

func (s *Sprite) Width() float64 {
	if s.texture == nil {
		return 0
	}
	w, _ := s.texture.Size()
	return float64(w) * s.Scale
}

func (s *Sprite) Height() float64 {
	if s.texture == nil {
		return 0
	}
	_, h := s.texture.Size()
	return float64(h) * s.Scale
}

func (s *Sprite) Left() float64   { return s.CenterX - s.Width()/2 }
func (s *Sprite) Right() float64  { return s.CenterX + s.Width()/2 }
func (s *Sprite) Bottom() float64 { return s.CenterY - s.Height()/2 }
func (s *Sprite) Top() float64    { return s.CenterY + s.Height()/2 }

// Rect returns the sprite's collision bounds.
func (s *Sprite) Rect() common.Rect {
	return common.RectFromCenter(s.CenterX, s.CenterY, s.Width(), s.Height())
}

// Update applies the sprite's velocity. Sprites driven by a physics body
// are moved by the CollisionWorld instead.
func (s *Sprite) Update() {
	if s.body != nil {
		return
	}
	s.CenterX += s.ChangeX
	s.CenterY += s.ChangeY
}

// UpdateAnimation advances the walk cycle, if the sprite has one.
func (s *Sprite) UpdateAnimation() {
	if s.Walk != nil {
		s.Walk.Update(s)
	}
}
