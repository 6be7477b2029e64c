package obj

import (
	"fmt"
	"path"

	"github.com/charmbracelet/log"
	"github.com/milk9111/modordie/common"
	"golang.org/x/image/colornames"
)

// State is the phase a level is in.
type State int

const (
	StatePlaying State = iota
	StateGameOver
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Behavior is what makes one level different from another. The Level calls
// into it at fixed points of its own lifecycle.
type Behavior interface {
	// Keys lists the extra sprite collections the variant needs on top of
	// BaseKeys. They are drawn after the base collections, in this order.
	Keys() []Key
	// DrawMap populates the registry during Setup.
	DrawMap(l *Level) error
	// Update runs after the base update, only while the level is playing.
	Update(l *Level, dt float64) error
	// OnDraw runs after the base draw.
	OnDraw(l *Level, s Surface)
	// Win runs once the level has switched to StateWon.
	Win(l *Level) error
}

// PlayerSprite names the player's textures and sounds, relative to the
// configured resource roots and without extension.
type PlayerSprite struct {
	Stand          string
	Walk           []string
	ChangeDistance float64
	JumpSound      string
	GameOverSound  string
}

type Options struct {
	Title   string
	Speed   float64
	Gravity float64
	Player  PlayerSprite
	Logger  *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Player.Stand == "" {
		o.Player.Stand = "character0"
	}
	if o.Player.ChangeDistance <= 0 {
		o.Player.ChangeDistance = 64
	}
	if o.Player.JumpSound == "" {
		o.Player.JumpSound = "jump1"
	}
	if o.Player.GameOverSound == "" {
		o.Player.GameOverSound = "gameover2"
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Level runs one playable map: it owns the sprites, the player, the physics
// world and the camera, and moves between playing, game over and won.
type Level struct {
	conf     common.Conf
	opts     Options
	assets   Assets
	surface  Surface
	behavior Behavior
	logger   *log.Logger

	registry  *Registry
	player    *Sprite
	physics   *CollisionWorld
	camera    *Camera
	jumpSound Sound

	jumpSpeed float64
	score     int
	state     State

	// bumped by every Setup so Update can tell the level was reset mid-tick
	generation int
}

// NewLevel wires a level to its collaborators. Call Setup before the first
// Update.
func NewLevel(conf common.Conf, assets Assets, surface Surface, behavior Behavior, opts Options) *Level {
	opts = opts.withDefaults()
	return &Level{
		conf:      conf,
		opts:      opts,
		assets:    assets,
		surface:   surface,
		behavior:  behavior,
		logger:    opts.Logger,
		camera:    NewCamera(conf),
		jumpSpeed: opts.Speed * 2,
	}
}

// Setup (re)builds the level from scratch. Every collection is replaced by
// a new empty list before the map is drawn again, so nothing from a
// previous run survives.
func (l *Level) Setup() error {
	keys := append(append([]Key(nil), BaseKeys...), l.behavior.Keys()...)
	l.registry = NewRegistry(keys...)

	stand, err := l.SpriteTexture(l.opts.Player.Stand)
	if err != nil {
		return err
	}
	player := NewSprite(stand, l.conf.PlayerStartX, l.conf.PlayerStartY)
	if len(l.opts.Player.Walk) > 0 {
		frames := make([]Texture, 0, len(l.opts.Player.Walk))
		for _, name := range l.opts.Player.Walk {
			tex, err := l.SpriteTexture(name)
			if err != nil {
				return err
			}
			frames = append(frames, tex)
		}
		player.Walk = NewWalkAnimation(stand, frames, l.opts.Player.ChangeDistance)
	}
	l.player = player
	l.registry.List(KeyPlayer).Append(player)

	l.jumpSound, err = l.LoadSound(l.opts.Player.JumpSound)
	if err != nil {
		return err
	}

	if err := l.behavior.DrawMap(l); err != nil {
		return fmt.Errorf("obj: draw map: %w", err)
	}

	l.physics = NewCollisionWorld(player, l.registry.List(KeyBlock), l.opts.Gravity)

	l.score = 0
	l.state = StatePlaying
	l.generation++

	l.camera.Reset()
	l.commitViewport()

	l.logger.Debug("level setup", "title", l.opts.Title, "sprites", l.registry.Len(), "walls", len(l.physics.Walls()))
	return nil
}

// Update advances the level by one frame. It does nothing once the level
// is won.
func (l *Level) Update(dt float64) error {
	if l.state == StateWon {
		return nil
	}
	gen := l.generation

	l.physics.Update()

	players := l.registry.List(KeyPlayer)
	players.Update()
	players.UpdateAnimation()

	if l.player.Left() <= 0 {
		l.player.ChangeX = 0
		l.player.CenterX = l.conf.TileRadius
	}

	if l.player.Bottom() < 0 {
		l.logger.Info("fell into a pit", "x", l.player.CenterX)
		if err := l.GameOver(); err != nil {
			return err
		}
	}

	if l.camera.Scroll(l.player.Rect()) {
		l.commitViewport()
	}

	if l.generation != gen {
		return nil
	}
	return l.behavior.Update(l, dt)
}

// GameOver plays the failure sound and restarts the level.
func (l *Level) GameOver() error {
	l.state = StateGameOver
	l.logger.Info("game over", "title", l.opts.Title, "score", l.score)
	if err := l.PlaySound(l.opts.Player.GameOverSound); err != nil {
		return err
	}
	return l.Setup()
}

// Win freezes the level: every collection is emptied and further updates
// are ignored.
func (l *Level) Win() error {
	if l.state == StateWon {
		return nil
	}
	l.state = StateWon
	l.registry.Clear()
	if err := l.behavior.Win(l); err != nil {
		return err
	}
	l.logger.Info("level won", "title", l.opts.Title, "score", l.score)
	return nil
}

func (l *Level) Draw() {
	l.surface.Clear()
	l.registry.Draw(l.surface)

	l.surface.DrawText(fmt.Sprintf("Score: %d", l.score),
		10+l.camera.ViewLeft(), 10+l.camera.ViewBottom(), colornames.White, 18)

	l.behavior.OnDraw(l, l.surface)
}

// KeyPress handles a key-down event. Jumps are only honoured while the
// player stands on something.
func (l *Level) KeyPress(a Action) {
	if l.state != StatePlaying || l.player == nil {
		return
	}
	switch a {
	case ActionUp:
		if l.CanJump() {
			l.player.ChangeY = l.jumpSpeed
			l.assets.Play(l.jumpSound)
		}
	case ActionLeft:
		l.player.ChangeX = -l.opts.Speed
	case ActionRight:
		l.player.ChangeX = l.opts.Speed
	}
}

func (l *Level) KeyRelease(a Action) {
	if l.state != StatePlaying || l.player == nil {
		return
	}
	switch a {
	case ActionLeft, ActionRight:
		l.player.ChangeX = 0
	}
}

func (l *Level) commitViewport() {
	l.surface.SetViewport(l.camera.Bounds())
}

// DrawGround lays the default ground strip: a left cap at x=0, nine middle
// tiles and a right cap, one tile radius above the origin.
func (l *Level) DrawGround() error {
	return l.LayGround(KeyBlock, 0, l.conf.TileRadius, 9)
}

// LayGround appends a cap-mid-cap strip of grass tiles to collection k,
// starting with the left cap centered at x.
func (l *Level) LayGround(k Key, x, y float64, mids int) error {
	step := l.conf.TileSize()
	list := l.registry.List(k)

	left, err := l.TileSprite("grassLeft", x, y)
	if err != nil {
		return err
	}
	list.Append(left)

	for i := 1; i <= mids; i++ {
		mid, err := l.TileSprite("grassMid", x+float64(i)*step, y)
		if err != nil {
			return err
		}
		list.Append(mid)
	}

	right, err := l.TileSprite("grassRight", x+float64(mids+1)*step, y)
	if err != nil {
		return err
	}
	list.Append(right)
	return nil
}

// TileSprite creates a sprite from the tile resources.
func (l *Level) TileSprite(name string, x, y float64) (*Sprite, error) {
	tex, err := l.texture(l.conf.TileResources, name)
	if err != nil {
		return nil, err
	}
	return NewSprite(tex, x, y), nil
}

// SpriteTexture loads a texture from the character sprite resources.
func (l *Level) SpriteTexture(name string) (Texture, error) {
	return l.texture(l.conf.SpriteResources, name)
}

func (l *Level) texture(root, name string) (Texture, error) {
	p := path.Join(root, name+".png")
	tex, err := l.assets.Texture(p)
	if err != nil {
		return nil, fmt.Errorf("obj: load texture %s: %w", p, err)
	}
	return tex, nil
}

// LoadSound loads a sound from the audio resources.
func (l *Level) LoadSound(name string) (Sound, error) {
	p := path.Join(l.conf.AudioResources, name+".wav")
	s, err := l.assets.Sound(p)
	if err != nil {
		return nil, fmt.Errorf("obj: load sound %s: %w", p, err)
	}
	return s, nil
}

func (l *Level) PlaySound(name string) error {
	s, err := l.LoadSound(name)
	if err != nil {
		return err
	}
	l.assets.Play(s)
	return nil
}

func (l *Level) Title() string            { return l.opts.Title }
func (l *Level) Conf() common.Conf        { return l.conf }
func (l *Level) State() State             { return l.state }
func (l *Level) Score() int               { return l.score }
func (l *Level) SetScore(score int)       { l.score = score }
func (l *Level) Player() *Sprite          { return l.player }
func (l *Level) Camera() *Camera          { return l.camera }
func (l *Level) Registry() *Registry      { return l.registry }
func (l *Level) List(k Key) *SpriteList   { return l.registry.List(k) }
func (l *Level) Physics() *CollisionWorld { return l.physics }
func (l *Level) JumpSpeed() float64       { return l.jumpSpeed }
func (l *Level) Logger() *log.Logger      { return l.logger }
func (l *Level) CanJump() bool            { return l.physics != nil && l.physics.CanJump() }
