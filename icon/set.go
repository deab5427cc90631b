package icon

import (
	"log"
	"path/filepath"
)

// Bundled asset names
const (
	IncreaseFile = "ic_increase_value.png"
	DecreaseFile = "ic_decrease_value.png"
)

// Fallback glyphs used when an asset is missing
const (
	IncreaseGlyph = '▶'
	DecreaseGlyph = '◀'
)

// Set holds the button icons shared by all panels
type Set struct {
	Increase *Icon
	Decrease *Icon
}

// LoadSet loads both button icons from dir
// Missing or broken assets are logged and replaced by glyphs
func LoadSet(dir string) *Set {
	inc, err := Load(filepath.Join(dir, IncreaseFile), IncreaseGlyph)
	if err != nil {
		log.Printf("icon: %v (using fallback)", err)
	}
	dec, err := Load(filepath.Join(dir, DecreaseFile), DecreaseGlyph)
	if err != nil {
		log.Printf("icon: %v (using fallback)", err)
	}
	return &Set{Increase: inc, Decrease: dec}
}

// Paths returns the asset paths in the set
func (s *Set) Paths() []string {
	return []string{s.Increase.Path, s.Decrease.Path}
}

// Reload refreshes whichever icon lives at path, reports whether one matched
func (s *Set) Reload(path string) bool {
	path = filepath.Clean(path)
	for _, ic := range []*Icon{s.Increase, s.Decrease} {
		if filepath.Clean(ic.Path) != path {
			continue
		}
		if err := ic.Reload(); err != nil {
			log.Printf("icon: reload: %v (using fallback)", err)
		}
		return true
	}
	return false
}
