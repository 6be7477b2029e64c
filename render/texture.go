package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture wraps an ebiten image so the game logic only sees its size.
type Texture struct {
	Image *ebiten.Image
}

func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{Image: img}
}

func (t *Texture) Size() (int, int) {
	if t == nil || t.Image == nil {
		return 0, 0
	}
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// TextureCache keeps decoded textures by resource path so each file is
// uploaded to the GPU once, however many tiles use it.
type TextureCache struct {
	mu       sync.RWMutex
	textures map[string]*Texture
}

func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]*Texture)}
}

// Put stores a texture by key.
func (c *TextureCache) Put(key string, tex *Texture) {
	if key == "" || tex == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.textures[key] = tex
}

// Get returns a cached texture by key.
func (c *TextureCache) Get(key string) (*Texture, bool) {
	if key == "" {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	tex, ok := c.textures[key]
	return tex, ok
}

func (c *TextureCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.textures)
}
