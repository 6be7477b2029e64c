package obj

import "fmt"

// Key names a sprite collection inside a Registry.
type Key string

const (
	KeyStatics Key = "statics"
	KeyBlock   Key = "block"
	KeyEnemy   Key = "enemy"
	KeyPlayer  Key = "player"
)

// BaseKeys are the collections every level has. Variants append their own.
var BaseKeys = []Key{KeyStatics, KeyBlock, KeyEnemy, KeyPlayer}

// Registry maps a fixed, ordered set of keys to sprite lists. Every key
// always holds a non-nil list; the key set cannot change after creation.
type Registry struct {
	keys  []Key
	lists map[Key]*SpriteList
}

// NewRegistry builds a registry holding an empty list for each key.
// Duplicate keys are folded.
func NewRegistry(keys ...Key) *Registry {
	r := &Registry{lists: make(map[Key]*SpriteList, len(keys))}
	for _, k := range keys {
		if _, ok := r.lists[k]; ok {
			continue
		}
		r.keys = append(r.keys, k)
		r.lists[k] = NewSpriteList()
	}
	return r
}

// List returns the collection for k. Asking for a key the registry was not
// built with is a programming error and panics.
func (r *Registry) List(k Key) *SpriteList {
	l, ok := r.lists[k]
	if !ok {
		panic(fmt.Sprintf("obj: registry has no collection %q", k))
	}
	return l
}

func (r *Registry) Has(k Key) bool {
	_, ok := r.lists[k]
	return ok
}

// Keys returns the keys in draw order.
func (r *Registry) Keys() []Key {
	return append([]Key(nil), r.keys...)
}

// Clear empties every collection in place.
func (r *Registry) Clear() {
	for _, k := range r.keys {
		r.lists[k].Clear()
	}
}

// Len is the total number of sprites across all collections.
func (r *Registry) Len() int {
	n := 0
	for _, l := range r.lists {
		n += l.Len()
	}
	return n
}

// Draw hands every collection to the surface in key order.
func (r *Registry) Draw(s Surface) {
	for _, k := range r.keys {
		s.DrawSprites(r.lists[k])
	}
}
