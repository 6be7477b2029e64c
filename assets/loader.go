package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/modordie/obj"
	"github.com/milk9111/modordie/render"
)

const sampleRate = 44100

// Loader resolves textures and sounds from an asset filesystem. Decoded
// textures and sound players are cached by path.
type Loader struct {
	fsys     fs.FS
	textures *render.TextureCache
	logger   *log.Logger

	mu     sync.Mutex
	sounds map[string]*audio.Player
	muted  bool
}

// NewLoader creates a loader reading from fsys. A nil fsys uses the embedded
// assets.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if fsys == nil {
		fsys = FS()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		fsys:     fsys,
		textures: render.NewTextureCache(),
		logger:   logger,
		sounds:   make(map[string]*audio.Player),
	}
}

// SetMuted silences Play without affecting lookups.
func (l *Loader) SetMuted(muted bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.muted = muted
}

func (l *Loader) Texture(path string) (obj.Texture, error) {
	clean := cleanAssetPath(path)
	if tex, ok := l.textures.Get(clean); ok {
		return tex, nil
	}

	img, err := l.decodeImage(clean)
	if err != nil {
		return nil, err
	}
	tex := render.NewTexture(ebiten.NewImageFromImage(img))
	l.textures.Put(clean, tex)
	l.logger.Debug("loaded texture", "path", clean)
	return tex, nil
}

func (l *Loader) decodeImage(clean string) (image.Image, error) {
	b, err := fs.ReadFile(l.fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	return img, nil
}

func (l *Loader) Sound(path string) (obj.Sound, error) {
	clean := cleanAssetPath(path)

	l.mu.Lock()
	defer l.mu.Unlock()
	if p, ok := l.sounds[clean]; ok {
		return p, nil
	}

	b, err := fs.ReadFile(l.fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	if !strings.HasSuffix(strings.ToLower(clean), ".wav") {
		return nil, fmt.Errorf("assets: unsupported audio format %s", clean)
	}

	ctx := audioContext()
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %s: %w", clean, err)
	}
	p, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: audio player %s: %w", clean, err)
	}
	l.sounds[clean] = p
	l.logger.Debug("loaded sound", "path", clean)
	return p, nil
}

// Play restarts the sound from the beginning.
func (l *Loader) Play(s obj.Sound) {
	p, ok := s.(*audio.Player)
	if !ok || p == nil {
		return
	}
	l.mu.Lock()
	muted := l.muted
	l.mu.Unlock()
	if muted {
		return
	}
	if err := p.Rewind(); err != nil {
		l.logger.Warn("rewind sound", "err", err)
		return
	}
	p.Play()
}

// audioContext returns the process-wide audio context, creating it on first
// use. Ebiten allows only one.
func audioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(sampleRate)
}
