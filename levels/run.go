package levels

import (
	"image/color"

	"github.com/milk9111/modordie/obj"
	"golang.org/x/image/colornames"
)

// KeyWater holds the animated water tiles of the run level.
const KeyWater obj.Key = "water"

func init() {
	Register("run", newRun)
}

// Run is a race against rising water: the player has to reach the exit
// sign before the flood catches up.
type Run struct {
	spec *Spec

	water *obj.SpriteList
	exit  *obj.Sprite
}

func newRun(spec *Spec) obj.Behavior {
	return &Run{spec: spec}
}

func (r *Run) Keys() []obj.Key { return []obj.Key{KeyWater} }

func (r *Run) DrawMap(l *obj.Level) error {
	if err := l.DrawGround(); err != nil {
		return err
	}
	if err := layPlatforms(l, r.spec.Platforms); err != nil {
		return err
	}

	r.water = l.List(KeyWater)
	if w := r.spec.Water; w != nil {
		radius := l.Conf().TileRadius
		for col := w.From; col < w.To; col += 2 {
			x := float64(col) * radius

			top, err := l.TileSprite(w.Top, x, 0)
			if err != nil {
				return err
			}
			r.addWave(top, x)

			for row := 1; row <= w.Depth; row++ {
				fill, err := l.TileSprite(w.Fill, x, -float64(row)*2*radius)
				if err != nil {
					return err
				}
				r.addWave(fill, x)
			}
		}
	}

	r.exit = nil
	if e := r.spec.Exit; e != nil {
		door, err := l.TileSprite(e.Texture, e.X, e.Y)
		if err != nil {
			return err
		}
		l.List(obj.KeyStatics).Append(door)
		r.exit = door
	}
	return nil
}

func (r *Run) addWave(s *obj.Sprite, x float64) {
	w := r.spec.Water
	s.HomeX = x
	s.Wave = obj.NewOscillator(0, w.Offset, w.Step)
	r.water.Append(s)
}

// Update moves the water, then checks whether it caught the player or the
// player made it past the exit.
func (r *Run) Update(l *obj.Level, dt float64) error {
	if r.spec.Water != nil {
		radius := l.Conf().TileRadius
		for _, s := range r.water.Sprites() {
			s.CenterX = s.HomeX + s.Wave.Next()*radius
			s.CenterY += r.spec.Water.Rise
		}
	}

	player := l.Player()
	if r.water.Len() > 0 && player.Top() < r.water.At(0).Top() {
		l.Logger().Info("caught by the water", "x", player.CenterX)
		return l.GameOver()
	}

	if r.exit != nil && player.CenterX > r.exit.CenterX {
		return l.Win()
	}
	return nil
}

func (r *Run) OnDraw(l *obj.Level, s obj.Surface) {
	if l.State() != obj.StateWon {
		return
	}
	b := r.spec.Banner
	var clr color.Color = colornames.Orangered
	if b.Color != nil {
		clr = b.Color.Color
	}
	x, y := l.Camera().Center()
	s.DrawText(b.Text, x, y, clr, b.Size)
}

func (r *Run) Win(l *obj.Level) error {
	if err := l.PlaySound(r.spec.WinSound); err != nil {
		return err
	}
	l.SetScore(r.spec.Reward)
	return nil
}
