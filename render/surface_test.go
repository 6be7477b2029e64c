package render

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestSurfaceToScreen(t *testing.T) {
	s, err := NewSurface(1280, 960)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}

	tests := []struct {
		name         string
		left, bottom float64
		x, y         float64
		wantX, wantY float64
	}{
		{name: "origin", x: 0, y: 0, wantX: 0, wantY: 960},
		{name: "top left", x: 0, y: 960, wantX: 0, wantY: 0},
		{name: "scrolled right", left: 500, x: 600, y: 100, wantX: 100, wantY: 860},
		{name: "scrolled up", bottom: 200, x: 10, y: 300, wantX: 10, wantY: 860},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetViewport(tt.left, tt.left+1280, tt.bottom, tt.bottom+960)
			gotX, gotY := s.ToScreen(tt.x, tt.y)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Fatalf("ToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSurfaceWithoutScreen(t *testing.T) {
	s, err := NewSurface(640, 480)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	// Nothing to draw into yet; these must not panic.
	s.Clear()
	s.DrawSprites(nil)
	s.DrawText("hi", 0, 0, color.White, 12)
	NewPhysicsDrawer(s).DrawSegment(cp.Vector{}, cp.Vector{X: 1, Y: 1}, cp.FColor{A: 1}, nil)
}

func TestFaceCachedPerSize(t *testing.T) {
	s, err := NewSurface(640, 480)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if s.face(18) != s.face(18) {
		t.Fatal("face(18) not cached")
	}
	if s.face(18) == s.face(32) {
		t.Fatal("different sizes share a face")
	}
}

func TestTextureCache(t *testing.T) {
	c := NewTextureCache()
	if _, ok := c.Get("tiles/grassMid.png"); ok {
		t.Fatal("empty cache returned a texture")
	}
	tex := &Texture{}
	c.Put("tiles/grassMid.png", tex)
	c.Put("", tex)
	got, ok := c.Get("tiles/grassMid.png")
	if !ok || got != tex {
		t.Fatalf("Get = %v, %v", got, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	if w, h := (*Texture)(nil).Size(); w != 0 || h != 0 {
		t.Fatalf("nil Size = %d,%d", w, h)
	}
}

func TestFColorClamp(t *testing.T) {
	got := fcolorToRGBA(cp.FColor{R: 2, G: -1, B: 0.5, A: 1})
	want := color.RGBA{R: 255, G: 0, B: 127, A: 255}
	if got != want {
		t.Fatalf("fcolorToRGBA = %v, want %v", got, want)
	}
}
