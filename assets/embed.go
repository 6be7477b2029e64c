package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed sprites tiles audio
var assetsFS embed.FS

// FS returns the embedded sprites, tiles and audio.
func FS() fs.FS {
	return assetsFS
}

// cleanAssetPath turns an absolute, OS-specific or assets/-prefixed path
// into the slash-separated key used inside the asset filesystem.
func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "./")
	return strings.TrimPrefix(s, "assets/")
}
