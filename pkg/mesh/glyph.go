package mesh

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownGlyph is returned for characters without a block-letter shape
var ErrUnknownGlyph = errors.New("unknown glyph")

// GlyphWidth and GlyphHeight bound every glyph: x in [-0.3,0.3], y in [-0.5,0.5]
const (
	GlyphWidth  = 0.6
	GlyphHeight = 1.0
)

// rect is a glyph bar in the xy plane
type rect struct {
	x0, y0, x1, y1 float32
}

var glyphs = map[rune][]rect{
	'A': {
		{-0.3, -0.5, -0.2, 0.5},
		{0.2, -0.5, 0.3, 0.5},
		{-0.2, -0.05, 0.2, 0.05},
		{-0.2, 0.4, 0.2, 0.5},
	},
	'D': {
		{-0.3, -0.5, -0.2, 0.5},
		{0.2, -0.45, 0.3, 0.45},
		{-0.2, -0.45, 0.2, -0.35},
		{-0.2, 0.35, 0.2, 0.45},
	},
	'E': {
		{-0.3, -0.5, -0.2, 0.5},
		{-0.2, 0.4, 0.3, 0.5},
		{-0.2, -0.05, 0.2, 0.05},
		{-0.2, -0.5, 0.3, -0.4},
	},
	'H': {
		{-0.3, -0.5, -0.2, 0.5},
		{0.2, -0.5, 0.3, 0.5},
		{-0.2, -0.05, 0.2, 0.05},
	},
	'I': {
		{-0.05, -0.4, 0.05, 0.4},
		{-0.2, 0.4, 0.2, 0.5},
		{-0.2, -0.5, 0.2, -0.4},
	},
	'L': {
		{-0.3, -0.5, -0.2, 0.5},
		{-0.2, -0.5, 0.3, -0.4},
	},
	'O': {
		{-0.3, -0.5, -0.2, 0.5},
		{0.2, -0.5, 0.3, 0.5},
		{-0.2, -0.5, 0.2, -0.4},
		{-0.2, 0.4, 0.2, 0.5},
	},
	'T': {
		{-0.3, 0.4, 0.3, 0.5},
		{-0.05, -0.5, 0.05, 0.4},
	},
	'U': {
		{-0.3, -0.5, -0.2, 0.5},
		{0.2, -0.5, 0.3, 0.5},
		{-0.2, -0.5, 0.2, -0.4},
	},
	'Y': {
		{-0.3, 0, -0.2, 0.5},
		{0.2, 0, 0.3, 0.5},
		{-0.2, -0.05, 0.2, 0.05},
		{-0.05, -0.5, 0.05, 0},
	},
}

// HasGlyph reports whether r can be built. Space is a valid, empty glyph.
func HasGlyph(r rune) bool {
	if r == ' ' {
		return true
	}
	_, ok := glyphs[unicode.ToUpper(r)]
	return ok
}

// Glyph returns the boxes of a block letter extruded from z=-depth to z=0.
// Letters are case-insensitive.
func Glyph(r rune, depth float32) ([]Box, error) {
	if r == ' ' {
		return nil, nil
	}
	rects, ok := glyphs[unicode.ToUpper(r)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGlyph, r)
	}

	boxes := make([]Box, len(rects))
	for i, q := range rects {
		boxes[i] = Box{
			Min: mgl32.Vec3{q.x0, q.y0, -depth},
			Max: mgl32.Vec3{q.x1, q.y1, 0},
		}
	}
	return boxes, nil
}

// BuildGlyph builds the vertex list of one extruded letter
func BuildGlyph(r rune, depth float32, color Colorer) ([]ColoredVertex, error) {
	boxes, err := Glyph(r, depth)
	if err != nil {
		return nil, err
	}
	return BuildBoxes(boxes, color), nil
}

// Glyphs lists the letters that have shapes, in sorted order
func Glyphs() []rune {
	out := make([]rune, 0, len(glyphs))
	for r := 'A'; r <= 'Z'; r++ {
		if _, ok := glyphs[r]; ok {
			out = append(out, r)
		}
	}
	return out
}
