package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConf(t *testing.T) {
	c := DefaultConf()
	if c.ScreenWidth != 1280 || c.ScreenHeight != 960 {
		t.Fatalf("screen = %dx%d, want 1280x960", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TileSize() != 128 {
		t.Fatalf("TileSize() = %v, want 128", c.TileSize())
	}
	if c.PlayerStartX != 200 || c.PlayerStartY != 200 {
		t.Fatalf("start = (%v,%v), want (200,200)", c.PlayerStartX, c.PlayerStartY)
	}
}

func TestLoadConfCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		body    string
		wantErr bool
		check   func(t *testing.T, c Conf)
	}{
		{
			name: "partial override keeps defaults",
			body: "screen_width: 800\nleft_viewport_margin: 120\n",
			check: func(t *testing.T, c Conf) {
				if c.ScreenWidth != 800 {
					t.Errorf("ScreenWidth = %d, want 800", c.ScreenWidth)
				}
				if c.LeftViewportMargin != 120 {
					t.Errorf("LeftViewportMargin = %v, want 120", c.LeftViewportMargin)
				}
				if c.ScreenHeight != 960 {
					t.Errorf("ScreenHeight = %d, want default 960", c.ScreenHeight)
				}
				if c.TileResources != "tiles" {
					t.Errorf("TileResources = %q, want default tiles", c.TileResources)
				}
			},
		},
		{
			name:    "invalid yaml",
			body:    "screen_width: [1, 2\n",
			wantErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "conf"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			c, err := LoadConf(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConf() failed: %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestLoadConfMissingCustomPath(t *testing.T) {
	_, err := LoadConf(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestRectEdges(t *testing.T) {
	r := RectFromCenter(200, 200, 96, 128)
	if r.Left() != 152 || r.Right() != 248 {
		t.Errorf("left/right = %v/%v, want 152/248", r.Left(), r.Right())
	}
	if r.Bottom() != 136 || r.Top() != 264 {
		t.Errorf("bottom/top = %v/%v, want 136/264", r.Bottom(), r.Top())
	}
}
