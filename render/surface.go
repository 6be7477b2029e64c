package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/modordie/obj"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// Surface draws a level onto the ebiten screen. World coordinates have Y
// pointing up; the surface flips them into screen space using the current
// viewport.
type Surface struct {
	screen *ebiten.Image

	width  float64
	height float64

	viewLeft   float64
	viewBottom float64

	Background color.Color

	faceSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace
}

// NewSurface creates a surface with a width x height viewport at the world
// origin.
func NewSurface(width, height int) (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &Surface{
		width:      float64(width),
		height:     float64(height),
		Background: colornames.Skyblue,
		faceSource: src,
		faces:      make(map[float64]*text.GoTextFace),
	}, nil
}

// Begin sets the image the following draw calls render into.
func (s *Surface) Begin(screen *ebiten.Image) {
	s.screen = screen
}

func (s *Surface) Clear() {
	if s.screen == nil {
		return
	}
	s.screen.Fill(s.Background)
}

func (s *Surface) SetViewport(left, right, bottom, top float64) {
	s.viewLeft = left
	s.viewBottom = bottom
	s.width = right - left
	s.height = top - bottom
}

// ToScreen maps a world point to screen pixels.
func (s *Surface) ToScreen(x, y float64) (float64, float64) {
	return x - s.viewLeft, s.viewBottom + s.height - y
}

func (s *Surface) DrawSprites(list *obj.SpriteList) {
	if s.screen == nil || list == nil {
		return
	}
	for _, sp := range list.Sprites() {
		tex, ok := sp.Texture().(*Texture)
		if !ok || tex.Image == nil {
			continue
		}

		x, y := s.ToScreen(sp.Left(), sp.Top())
		w, h := sp.Width(), sp.Height()
		if x+w < 0 || y+h < 0 || x > s.width || y > s.height {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		if sp.FacingLeft {
			tw, _ := tex.Size()
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(tw), 0)
		}
		op.GeoM.Scale(sp.Scale, sp.Scale)
		op.GeoM.Translate(math.Round(x), math.Round(y))
		op.Filter = ebiten.FilterNearest
		s.screen.DrawImage(tex.Image, op)
	}
}

// DrawText draws str with its baseline-bottom-left corner at world x, y.
func (s *Surface) DrawText(str string, x, y float64, clr color.Color, size float64) {
	if s.screen == nil {
		return
	}
	sx, sy := s.ToScreen(x, y)

	op := &text.DrawOptions{}
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(clr)
	op.LayoutOptions.SecondaryAlign = text.AlignEnd
	text.Draw(s.screen, str, s.face(size), op)
}

func (s *Surface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.faceSource, Size: size}
	s.faces[size] = f
	return f
}
