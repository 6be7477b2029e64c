package assets

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "tiles/grassMid.png", want: "tiles/grassMid.png"},
		{in: "assets/tiles/grassMid.png", want: "tiles/grassMid.png"},
		{in: "./sprites/character0.png", want: "sprites/character0.png"},
		{in: "/home/me/modordie/assets/audio/jump1.wav", want: "audio/jump1.wav"},
		{in: "/tmp/jump1.wav", want: "jump1.wav"},
	}
	for _, tt := range tests {
		if got := cleanAssetPath(tt.in); got != tt.want {
			t.Errorf("cleanAssetPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoaderMissingTexture(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, nil)
	_, err := l.Texture("tiles/nope.png")
	if err == nil {
		t.Fatal("expected error for missing texture")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "tiles/nope.png") {
		t.Fatalf("err %q does not name the path", err)
	}
}

func TestLoaderBadImage(t *testing.T) {
	l := NewLoader(fstest.MapFS{
		"tiles/broken.png": &fstest.MapFile{Data: []byte("not a png")},
	}, nil)
	if _, err := l.Texture("tiles/broken.png"); err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("err = %v, want decode error", err)
	}
}

func TestLoaderMissingSound(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, nil)
	if _, err := l.Sound("audio/jump1.wav"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoaderUnsupportedSound(t *testing.T) {
	l := NewLoader(fstest.MapFS{
		"audio/theme.ogg": &fstest.MapFile{Data: []byte{0}},
	}, nil)
	if _, err := l.Sound("audio/theme.ogg"); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("err = %v, want unsupported format", err)
	}
}

func TestLoaderPlayIgnoresForeignSounds(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, nil)
	l.Play(nil)
	l.Play("not a player")
}

func TestEmbeddedAssetsPresent(t *testing.T) {
	for _, p := range []string{
		"tiles/grassLeft.png",
		"tiles/grassMid.png",
		"tiles/grassRight.png",
		"tiles/water.png",
		"tiles/waterTop_low.png",
		"tiles/signExit.png",
		"sprites/character0.png",
		"sprites/characterw0.png",
		"sprites/characterw3.png",
		"audio/jump1.wav",
		"audio/gameover1.wav",
		"audio/gameover2.wav",
	} {
		if _, err := fs.Stat(FS(), p); err != nil {
			t.Errorf("embedded %s: %v", p, err)
		}
	}
}

func TestLoaderSetMuted(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, nil)
	if l.muted {
		t.Fatal("new loader is muted")
	}
	l.SetMuted(true)
	if !l.muted {
		t.Fatal("SetMuted(true) did not mute")
	}
	l.Play(nil)
}
