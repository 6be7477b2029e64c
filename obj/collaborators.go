package obj

import "image/color"

// Texture is a loaded image. Only its size matters to the game logic.
type Texture interface {
	Size() (int, int)
}

// Sound is an opaque handle returned by Assets.Sound.
type Sound any

// Assets resolves textures and sounds by resource path. Lookups fail when
// the named asset is missing.
type Assets interface {
	Texture(path string) (Texture, error)
	Sound(path string) (Sound, error)
	Play(s Sound)
}

// Surface is where a level draws itself. Coordinates passed to DrawText and
// the sprites handed to DrawSprites are in world space; the surface maps
// them through the last viewport set.
type Surface interface {
	Clear()
	DrawSprites(list *SpriteList)
	DrawText(text string, x, y float64, clr color.Color, size float64)
	SetViewport(left, right, bottom, top float64)
}
