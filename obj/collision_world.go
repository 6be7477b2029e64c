package obj

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeSolid
)

// groundProbe is how far below the actor's feet a solid surface still
// counts as standing on it.
const groundProbe = 2.0

// groundInset keeps the foot probe clear of a wall the actor is pressed
// into; the solver leaves it a couple of pixels deep.
const groundInset = 4.0

// CollisionWorld moves one actor through a set of immovable walls under
// constant gravity. Each Update advances exactly one frame.
type CollisionWorld struct {
	space *cp.Space
	actor *Sprite

	body  *cp.Body
	shape *cp.Shape

	walls []cp.BB
}

// NewCollisionWorld builds a fresh physics space for actor, with every
// sprite in walls as static geometry. gravity is in pixels per frame².
func NewCollisionWorld(actor *Sprite, walls *SpriteList, gravity float64) *CollisionWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})

	cw := &CollisionWorld{space: space, actor: actor}
	cw.buildStaticShapes(walls)
	cw.attachActor()
	return cw
}

// buildStaticShapes merges horizontally adjacent walls that share a bottom
// and top edge into one box, so the actor does not catch on tile seams.
func (cw *CollisionWorld) buildStaticShapes(walls *SpriteList) {
	if walls == nil || walls.Len() == 0 {
		return
	}

	boxes := make([]cp.BB, 0, walls.Len())
	for _, s := range walls.Sprites() {
		if s.Width() <= 0 || s.Height() <= 0 {
			continue
		}
		boxes = append(boxes, cp.BB{L: s.Left(), B: s.Bottom(), R: s.Right(), T: s.Top()})
	}
	sort.Slice(boxes, func(i, j int) bool {
		if boxes[i].B != boxes[j].B {
			return boxes[i].B < boxes[j].B
		}
		if boxes[i].T != boxes[j].T {
			return boxes[i].T < boxes[j].T
		}
		return boxes[i].L < boxes[j].L
	})

	var merged []cp.BB
	for _, bb := range boxes {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.B == bb.B && last.T == bb.T && bb.L <= last.R+0.5 && bb.R >= last.L {
				last.R = math.Max(last.R, bb.R)
				continue
			}
		}
		merged = append(merged, bb)
	}

	for _, bb := range merged {
		shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		cw.space.AddShape(shape)
	}
	cw.walls = merged
}

func (cw *CollisionWorld) attachActor() {
	a := cw.actor
	if a == nil {
		return
	}

	// infinite moment keeps the box upright
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: a.CenterX, Y: a.CenterY})
	body.SetVelocity(a.ChangeX, a.ChangeY)

	shape := cp.NewBox(body, a.Width(), a.Height(), 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeActor)

	cw.space.AddBody(body)
	cw.space.AddShape(shape)

	cw.body = body
	cw.shape = shape
	a.body = body
}

// Update advances the actor one frame. Position and velocity are read from
// the sprite first so that changes made by input or level logic since the
// last frame take effect. Only the vertical velocity is written back; the
// horizontal one stays under input control.
func (cw *CollisionWorld) Update() {
	if cw.body == nil {
		return
	}
	a := cw.actor
	cw.body.SetPosition(cp.Vector{X: a.CenterX, Y: a.CenterY})
	cw.body.SetVelocity(a.ChangeX, a.ChangeY)

	cw.space.Step(1)

	p := cw.body.Position()
	a.CenterX, a.CenterY = p.X, p.Y
	a.ChangeY = cw.body.Velocity().Y
}

// CanJump reports whether the actor stands on a wall: some static box must
// have its top edge at the actor's feet and reach under them. Touching the
// side of a wall does not count.
func (cw *CollisionWorld) CanJump() bool {
	if cw.body == nil {
		return false
	}
	a := cw.actor
	feet := a.Bottom()
	probe := cp.BB{L: a.Left() + groundInset, B: feet - groundProbe, R: a.Right() - groundInset, T: feet}

	grounded := false
	cw.space.BBQuery(probe, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if shape.Body() != cw.space.StaticBody {
			return
		}
		if top := shape.BB().T; top >= feet-groundProbe && top <= feet+groundProbe {
			grounded = true
		}
	}, nil)
	return grounded
}

// Walls returns the merged static boxes.
func (cw *CollisionWorld) Walls() []cp.BB {
	return cw.walls
}

// DebugDraw renders the physics shapes through d.
func (cw *CollisionWorld) DebugDraw(d cp.Drawer) {
	if cw == nil || cw.space == nil || d == nil {
		return
	}
	cp.DrawSpace(cw.space, d)
}
