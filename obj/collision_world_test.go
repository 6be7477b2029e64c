package obj_test

import (
	"math"
	"testing"

	"github.com/milk9111/modordie/obj"
	"github.com/milk9111/modordie/obj/objtest"
)

func tileRow(first, n int, y float64) *obj.SpriteList {
	l := obj.NewSpriteList()
	for i := first; i < first+n; i++ {
		l.Append(obj.NewSprite(&objtest.Texture{W: 128, H: 128}, float64(i)*128, y))
	}
	return l
}

func newActor(x, y float64) *obj.Sprite {
	return obj.NewSprite(&objtest.Texture{W: 96, H: 128}, x, y)
}

func TestCollisionWorldLands(t *testing.T) {
	actor := newActor(200, 200)
	cw := obj.NewCollisionWorld(actor, tileRow(0, 11, 64), 1)

	if cw.CanJump() {
		t.Fatal("CanJump() = true while 8px above the ground")
	}

	for i := 0; i < 60; i++ {
		cw.Update()
	}

	if got := actor.Bottom(); math.Abs(got-128) > 1 {
		t.Fatalf("Bottom() = %v, want ~128", got)
	}
	if math.Abs(actor.ChangeY) > 1 {
		t.Fatalf("ChangeY = %v after landing, want ~0", actor.ChangeY)
	}
	if !cw.CanJump() {
		t.Fatal("CanJump() = false while standing on the ground")
	}
}

func TestCollisionWorldJump(t *testing.T) {
	actor := newActor(200, 200)
	cw := obj.NewCollisionWorld(actor, tileRow(0, 11, 64), 1)
	for i := 0; i < 60; i++ {
		cw.Update()
	}

	actor.ChangeY = 10
	for i := 0; i < 5; i++ {
		cw.Update()
	}

	if actor.Bottom() < 150 {
		t.Fatalf("Bottom() = %v five frames into a jump, want > 150", actor.Bottom())
	}
	if cw.CanJump() {
		t.Fatal("CanJump() = true in mid air")
	}

	for i := 0; i < 60; i++ {
		cw.Update()
	}
	if !cw.CanJump() {
		t.Fatal("CanJump() = false after coming back down")
	}
}

func TestCollisionWorldBlocksWalls(t *testing.T) {
	walls := tileRow(0, 20, 64)
	walls.Append(
		obj.NewSprite(&objtest.Texture{W: 128, H: 128}, 640, 192),
		obj.NewSprite(&objtest.Texture{W: 128, H: 128}, 640, 320),
	)
	actor := newActor(200, 200)
	cw := obj.NewCollisionWorld(actor, walls, 1)
	for i := 0; i < 30; i++ {
		cw.Update()
	}

	for i := 0; i < 150; i++ {
		actor.ChangeX = 5
		cw.Update()
	}

	if actor.Right() > 576+10 {
		t.Fatalf("Right() = %v, walked through the wall at 576", actor.Right())
	}
	if actor.Right() < 560 {
		t.Fatalf("Right() = %v, stopped short of the wall at 576", actor.Right())
	}
}

func TestCollisionWorldMergesWalls(t *testing.T) {
	tests := []struct {
		name  string
		walls func() *obj.SpriteList
		want  int
	}{
		{
			name:  "single strip",
			walls: func() *obj.SpriteList { return tileRow(0, 11, 64) },
			want:  1,
		},
		{
			name: "strip and platform",
			walls: func() *obj.SpriteList {
				l := tileRow(0, 11, 64)
				l.Append(tileRow(15, 3, 320).Sprites()...)
				return l
			},
			want: 2,
		},
		{
			name: "gap splits strip",
			walls: func() *obj.SpriteList {
				l := tileRow(0, 3, 64)
				l.Append(tileRow(4, 3, 64).Sprites()...)
				return l
			},
			want: 2,
		},
		{
			name:  "empty",
			walls: obj.NewSpriteList,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cw := obj.NewCollisionWorld(newActor(200, 600), tt.walls(), 1)
			if got := len(cw.Walls()); got != tt.want {
				t.Fatalf("len(Walls()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCollisionWorldMergedExtent(t *testing.T) {
	cw := obj.NewCollisionWorld(newActor(200, 600), tileRow(0, 11, 64), 1)
	bb := cw.Walls()[0]
	if bb.L != -64 || bb.R != 1344 || bb.B != 0 || bb.T != 128 {
		t.Fatalf("wall = %+v, want L=-64 R=1344 B=0 T=128", bb)
	}
}

func TestCollisionWorldNoWallJump(t *testing.T) {
	tests := []struct {
		name string
		wall func() []*obj.Sprite
	}{
		{
			name: "tall box",
			wall: func() []*obj.Sprite {
				return []*obj.Sprite{obj.NewSprite(&objtest.Texture{W: 128, H: 1024}, 640, 640)}
			},
		},
		{
			name: "stacked tiles",
			wall: func() []*obj.Sprite {
				var col []*obj.Sprite
				for i := 0; i < 8; i++ {
					col = append(col, obj.NewSprite(&objtest.Texture{W: 128, H: 128}, 640, 192+float64(i)*128))
				}
				return col
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			walls := tileRow(0, 20, 64)
			walls.Append(tt.wall()...)
			actor := newActor(200, 200)
			cw := obj.NewCollisionWorld(actor, walls, 1)
			for i := 0; i < 30; i++ {
				cw.Update()
			}

			highest := actor.Bottom()
			for i := 0; i < 400; i++ {
				actor.ChangeX = 5
				if cw.CanJump() {
					if actor.Bottom() > 128+groundSlack {
						t.Fatalf("tick %d: CanJump() = true in mid air, Bottom() = %v Right() = %v", i, actor.Bottom(), actor.Right())
					}
					actor.ChangeY = 10
				}
				cw.Update()
				highest = math.Max(highest, actor.Bottom())
			}

			if actor.Right() > 576+10 {
				t.Fatalf("Right() = %v, got past the wall at 576", actor.Right())
			}
			if highest > 128+80 {
				t.Fatalf("highest Bottom() = %v, climbed the wall", highest)
			}
		})
	}
}

// groundSlack is how far above the ground top the actor may rest.
const groundSlack = 2.0
