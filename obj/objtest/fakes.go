// Package objtest provides in-memory stand-ins for the collaborators a
// level needs, so levels can be driven without a window or audio device.
package objtest

import (
	"fmt"
	"image/color"
	"path"
	"strings"

	"github.com/milk9111/modordie/obj"
)

// Texture is a sized texture with no pixels.
type Texture struct {
	Name string
	W, H int
}

func (t *Texture) Size() (int, int) { return t.W, t.H }

// Sound is the handle returned by Assets.Sound.
type Sound struct {
	Name string
}

// Assets serves textures of a fixed size for any .png path and sounds for
// any .wav path. Names listed in Missing fail to load.
type Assets struct {
	TileW, TileH     int
	SpriteW, SpriteH int
	// Missing holds base names (without extension) that fail to load.
	Missing map[string]bool

	Loaded []string
	Played []string
}

// NewAssets returns assets with 128x128 tiles and a 96x128 player.
func NewAssets() *Assets {
	return &Assets{TileW: 128, TileH: 128, SpriteW: 96, SpriteH: 128, Missing: map[string]bool{}}
}

func (a *Assets) Texture(p string) (obj.Texture, error) {
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if a.Missing[name] || path.Ext(p) != ".png" {
		return nil, fmt.Errorf("objtest: texture %q not found", p)
	}
	a.Loaded = append(a.Loaded, p)
	if strings.HasPrefix(name, "character") {
		return &Texture{Name: name, W: a.SpriteW, H: a.SpriteH}, nil
	}
	return &Texture{Name: name, W: a.TileW, H: a.TileH}, nil
}

func (a *Assets) Sound(p string) (obj.Sound, error) {
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if a.Missing[name] || path.Ext(p) != ".wav" {
		return nil, fmt.Errorf("objtest: sound %q not found", p)
	}
	a.Loaded = append(a.Loaded, p)
	return &Sound{Name: name}, nil
}

func (a *Assets) Play(s obj.Sound) {
	if snd, ok := s.(*Sound); ok {
		a.Played = append(a.Played, snd.Name)
	}
}

// PlayCount returns how often the named sound was played.
func (a *Assets) PlayCount(name string) int {
	n := 0
	for _, p := range a.Played {
		if p == name {
			n++
		}
	}
	return n
}

// Viewport is one SetViewport call.
type Viewport struct {
	Left, Right, Bottom, Top float64
}

// Text is one DrawText call.
type Text struct {
	Text  string
	X, Y  float64
	Color color.Color
	Size  float64
}

// Surface records what a level draws. Texts and Drawn are reset on Clear.
type Surface struct {
	Clears    int
	Viewports []Viewport
	Texts     []Text
	Drawn     []int
}

func (s *Surface) Clear() {
	s.Clears++
	s.Texts = nil
	s.Drawn = nil
}

func (s *Surface) DrawSprites(list *obj.SpriteList) {
	s.Drawn = append(s.Drawn, list.Len())
}

func (s *Surface) DrawText(text string, x, y float64, clr color.Color, size float64) {
	s.Texts = append(s.Texts, Text{Text: text, X: x, Y: y, Color: clr, Size: size})
}

func (s *Surface) SetViewport(left, right, bottom, top float64) {
	s.Viewports = append(s.Viewports, Viewport{Left: left, Right: right, Bottom: bottom, Top: top})
}

// LastViewport returns the most recent committed viewport.
func (s *Surface) LastViewport() (Viewport, bool) {
	if len(s.Viewports) == 0 {
		return Viewport{}, false
	}
	return s.Viewports[len(s.Viewports)-1], true
}

// HasText reports whether text was drawn since the last Clear.
func (s *Surface) HasText(text string) bool {
	for _, t := range s.Texts {
		if t.Text == text {
			return true
		}
	}
	return false
}

// Behavior is a variant with only the default ground and hooks for tests.
type Behavior struct {
	ExtraKeys []obj.Key
	MapFn     func(l *obj.Level) error
	UpdateFn  func(l *obj.Level, dt float64) error

	Updates int
	Wins    int
}

func (b *Behavior) Keys() []obj.Key { return b.ExtraKeys }

func (b *Behavior) DrawMap(l *obj.Level) error {
	if b.MapFn != nil {
		return b.MapFn(l)
	}
	return l.DrawGround()
}

func (b *Behavior) Update(l *obj.Level, dt float64) error {
	b.Updates++
	if b.UpdateFn != nil {
		return b.UpdateFn(l, dt)
	}
	return nil
}

func (b *Behavior) OnDraw(l *obj.Level, s obj.Surface) {}

func (b *Behavior) Win(l *obj.Level) error {
	b.Wins++
	return nil
}
