package level

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pmalloy/plumber/common"
	"github.com/pmalloy/plumber/obj"
)

// BuildFunc instantiates the entity a level symbol stands for, at grid cell
// (x, y).
type BuildFunc func(w *obj.World, symbol rune, x, y int)

// Builder maps level symbols to entity constructors. Symbols with no
// registered builder go through the fallback, so an unknown character
// degrades to a generic solid instead of failing the load.
type Builder struct {
	tileSize int
	builders map[rune]BuildFunc
	fallback BuildFunc
}

func NewBuilder() *Builder {
	return &Builder{
		tileSize: common.TileSize,
		builders: map[rune]BuildFunc{},
		fallback: func(w *obj.World, _ rune, x, y int) {
			w.AddBlock(obj.NewSolid("unknown"), float64(x*common.TileSize), float64(y*common.TileSize))
		},
	}
}

// Register binds every rune in symbols to the same build function.
func (b *Builder) Register(symbols string, f BuildFunc) {
	for _, r := range symbols {
		b.builders[r] = f
	}
}

// Fallback replaces the unknown-symbol handler.
func (b *Builder) Fallback(f BuildFunc) {
	b.fallback = f
}

// LoadWorld reads a text-grid level file and builds a world from it. Rows run
// top to bottom, columns left to right; each cell is one tile. Blank cells
// are empty space.
func LoadWorld(path string, b *Builder, gravity float64, clock obj.Clock) (*obj.World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: open level: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	width := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	if width == 0 || len(lines) == 0 {
		return nil, fmt.Errorf("level: %s is empty", path)
	}

	w := obj.NewWorld(
		float64(width*b.tileSize),
		float64(len(lines)*b.tileSize),
		gravity,
		clock,
	)

	for y, line := range lines {
		// Index by rune so a stray multi-byte symbol can't shift columns.
		for x, r := range []rune(line) {
			if r == ' ' || r == '\t' || r == '\r' {
				continue
			}
			f, ok := b.builders[r]
			if !ok {
				f = b.fallback
			}
			f(w, r, x, y)
		}
	}
	return w, nil
}
