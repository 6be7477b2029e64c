package common

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfYAML []byte

// Conf holds the per-run environment constants. It is read once at startup
// (and again on hot reload) and never mutated by the game.
type Conf struct {
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	TileRadius   float64 `yaml:"tile_radius"`

	SpriteResources string `yaml:"sprite_resources"`
	AudioResources  string `yaml:"audio_resources"`
	TileResources   string `yaml:"tile_resources"`

	// Minimum distance in pixels between the player and each screen edge
	// before the view scrolls.
	LeftViewportMargin   float64 `yaml:"left_viewport_margin"`
	RightViewportMargin  float64 `yaml:"right_viewport_margin"`
	BottomViewportMargin float64 `yaml:"bottom_viewport_margin"`
	TopViewportMargin    float64 `yaml:"top_viewport_margin"`

	PlayerStartX float64 `yaml:"player_start_x"`
	PlayerStartY float64 `yaml:"player_start_y"`
}

// DefaultConf returns the hardcoded configuration.
func DefaultConf() Conf {
	return Conf{
		ScreenWidth:          1280,
		ScreenHeight:         960,
		TileRadius:           64,
		SpriteResources:      "sprites",
		AudioResources:       "audio",
		TileResources:        "tiles",
		LeftViewportMargin:   300,
		RightViewportMargin:  300,
		BottomViewportMargin: 150,
		TopViewportMargin:    100,
		PlayerStartX:         200,
		PlayerStartY:         200,
	}
}

// TileSize is the side length of a square tile.
func (c Conf) TileSize() float64 {
	return 2 * c.TileRadius
}

// LoadConf loads the environment configuration.
// Search order: customPath -> ~/.modordie/config.yaml -> ./configs/config.yaml -> embedded default
//
// Values missing from a file keep their default.
func LoadConf(customPath string) (Conf, error) {
	cfg := DefaultConf()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("common: read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultConf(), fmt.Errorf("common: parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfPath(), filepath.Join("configs", "config.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultConf()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultConfYAML, &cfg); err != nil {
		return DefaultConf(), nil
	}
	return cfg, nil
}

func userConfPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".modordie", "config.yaml")
}
