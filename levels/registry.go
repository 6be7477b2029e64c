// Package levels holds the playable maps. Each variant registers itself
// under a name in init and is built from a yaml spec of the same name.
package levels

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/milk9111/modordie/common"
	"github.com/milk9111/modordie/obj"
)

var ErrUnknownLevel = errors.New("levels: unknown level")

// Factory builds the behavior of a level from its spec.
type Factory func(spec *Spec) obj.Behavior

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a level variant. Panics if name is already taken.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("levels: level %q already registered", name))
	}
	factories[name] = f
}

// Names returns the registered level names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// Env is what a level needs from the host.
type Env struct {
	Conf    common.Conf
	Assets  obj.Assets
	Surface obj.Surface
	Player  obj.PlayerSprite
	Logger  *log.Logger
}

// New loads the spec for name and builds the level. Setup is left to the
// caller.
func New(name string, env Env) (*obj.Level, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, name)
	}

	spec, err := LoadSpec(name)
	if err != nil {
		return nil, err
	}

	return obj.NewLevel(env.Conf, env.Assets, env.Surface, f(spec), obj.Options{
		Title:   spec.Title,
		Speed:   spec.Speed,
		Gravity: spec.Gravity,
		Player:  env.Player,
		Logger:  env.Logger,
	}), nil
}

func layPlatforms(l *obj.Level, platforms []PlatformSpec) error {
	for _, p := range platforms {
		if err := l.LayGround(obj.KeyBlock, p.X, p.Y, p.Mids); err != nil {
			return err
		}
	}
	return nil
}
