package obj_test

import (
	"testing"

	"github.com/milk9111/modordie/obj"
	"github.com/milk9111/modordie/obj/objtest"
)

func TestWalkAnimation(t *testing.T) {
	stand := &objtest.Texture{Name: "character0", W: 96, H: 128}
	frames := []obj.Texture{
		&objtest.Texture{Name: "characterw0", W: 96, H: 128},
		&objtest.Texture{Name: "characterw1", W: 96, H: 128},
		&objtest.Texture{Name: "characterw2", W: 96, H: 128},
	}

	s := obj.NewSprite(stand, 0, 0)
	s.Walk = obj.NewWalkAnimation(stand, frames, 64)

	s.UpdateAnimation()
	if s.Texture() != stand {
		t.Fatal("expected standing texture while idle")
	}

	s.ChangeX = 8
	for i := 0; i < 8; i++ {
		s.Update()
		s.UpdateAnimation()
	}
	if s.Walk.Frame() != 1 {
		t.Fatalf("Frame() = %d after 64px, want 1", s.Walk.Frame())
	}
	if s.Texture() != frames[1] {
		t.Fatal("texture does not follow frame")
	}
	if s.FacingLeft {
		t.Fatal("expected facing right")
	}

	s.ChangeX = -8
	s.Update()
	s.UpdateAnimation()
	if !s.FacingLeft {
		t.Fatal("expected facing left")
	}

	s.ChangeX = 0
	s.UpdateAnimation()
	if s.Texture() != stand {
		t.Fatal("expected standing texture after stopping")
	}
}
