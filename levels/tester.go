package levels

import "github.com/milk9111/modordie/obj"

func init() {
	Register("tester", newTester)
}

// Tester is a flat strip of ground for trying out movement and scrolling.
type Tester struct {
	spec *Spec
}

func newTester(spec *Spec) obj.Behavior {
	return &Tester{spec: spec}
}

func (t *Tester) Keys() []obj.Key { return nil }

func (t *Tester) DrawMap(l *obj.Level) error {
	if err := l.DrawGround(); err != nil {
		return err
	}
	return layPlatforms(l, t.spec.Platforms)
}

func (t *Tester) Update(l *obj.Level, dt float64) error { return nil }

func (t *Tester) OnDraw(l *obj.Level, s obj.Surface) {}

func (t *Tester) Win(l *obj.Level) error { return nil }
