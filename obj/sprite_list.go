package obj

// SpriteList is an ordered collection of sprites that is updated and drawn
// as one batch.
type SpriteList struct {
	sprites []*Sprite
}

func NewSpriteList() *SpriteList {
	return &SpriteList{}
}

func (l *SpriteList) Append(s ...*Sprite) {
	l.sprites = append(l.sprites, s...)
}

func (l *SpriteList) Len() int {
	return len(l.sprites)
}

// At returns the i-th sprite in insertion order.
func (l *SpriteList) At(i int) *Sprite {
	return l.sprites[i]
}

// Sprites exposes the backing slice for iteration. Callers must not append.
func (l *SpriteList) Sprites() []*Sprite {
	return l.sprites
}

// Replace swaps the whole content of the list.
func (l *SpriteList) Replace(sprites []*Sprite) {
	l.sprites = append(l.sprites[:0:0], sprites...)
}

func (l *SpriteList) Clear() {
	l.sprites = nil
}

func (l *SpriteList) Update() {
	for _, s := range l.sprites {
		s.Update()
	}
}

func (l *SpriteList) UpdateAnimation() {
	for _, s := range l.sprites {
		s.UpdateAnimation()
	}
}
