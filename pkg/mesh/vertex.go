// Package mesh builds flat, non-indexed triangle lists from compact shape
// descriptions. Nothing here touches the GPU.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// ColoredVertex is a position with a per-vertex RGB color
type ColoredVertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// TexturedVertex is a position with a texture coordinate
type TexturedVertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// Attribute describes one vertex attribute inside an interleaved buffer.
// Size and Offset are counted in floats.
type Attribute struct {
	Location uint32
	Size     int32
	Offset   int32
}

// Layout describes an interleaved float buffer. Stride is counted in floats.
type Layout struct {
	Stride     int32
	Attributes []Attribute
}

// ColoredLayout is position at location 0 and color at location 1
var ColoredLayout = Layout{
	Stride: 6,
	Attributes: []Attribute{
		{Location: 0, Size: 3, Offset: 0},
		{Location: 1, Size: 3, Offset: 3},
	},
}

// TexturedLayout is position at location 0 and uv at location 1
var TexturedLayout = Layout{
	Stride: 5,
	Attributes: []Attribute{
		{Location: 0, Size: 3, Offset: 0},
		{Location: 1, Size: 2, Offset: 3},
	},
}

// VertexCount returns how many vertices fit in a buffer of n floats
func (l Layout) VertexCount(n int) int {
	if l.Stride <= 0 {
		return 0
	}
	return n / int(l.Stride)
}

// InterleaveColored flattens vertices in ColoredLayout order
func InterleaveColored(vs []ColoredVertex) []float32 {
	out := make([]float32, 0, len(vs)*int(ColoredLayout.Stride))
	for _, v := range vs {
		out = append(out, v.Position[:]...)
		out = append(out, v.Color[:]...)
	}
	return out
}

// InterleaveTextured flattens vertices in TexturedLayout order
func InterleaveTextured(vs []TexturedVertex) []float32 {
	out := make([]float32, 0, len(vs)*int(TexturedLayout.Stride))
	for _, v := range vs {
		out = append(out, v.Position[:]...)
		out = append(out, v.UV[:]...)
	}
	return out
}
