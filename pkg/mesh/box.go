package mesh

import "github.com/go-gl/mathgl/mgl32"

// BoxVertexCount is the number of vertices BuildBox emits
const BoxVertexCount = 36

// Box is an axis-aligned box given by two opposite corners
type Box struct {
	Min, Max mgl32.Vec3
}

// Translate returns the box moved by d
func (b Box) Translate(d mgl32.Vec3) Box {
	return Box{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// BuildBox returns 36 vertices: faces +Z, -Z, -X, +X, +Y, -Y, each as two
// triangles sharing the face diagonal, counter-clockwise seen from outside.
//
// min < max is not checked. Reversed bounds on an axis flip the winding of
// the faces that depend on it.
func BuildBox(min, max mgl32.Vec3, color Colorer) []ColoredVertex {
	return AppendBox(make([]ColoredVertex, 0, BoxVertexCount), min, max, color)
}

// AppendBox appends the BuildBox vertices to dst
func AppendBox(dst []ColoredVertex, min, max mgl32.Vec3, color Colorer) []ColoredVertex {
	push := func(x, y, z float32) {
		p := mgl32.Vec3{x, y, z}
		dst = append(dst, ColoredVertex{Position: p, Color: color(p, min, max)})
	}
	lo, hi := min, max

	// +Z
	push(lo[0], lo[1], hi[2])
	push(hi[0], lo[1], hi[2])
	push(hi[0], hi[1], hi[2])
	push(lo[0], lo[1], hi[2])
	push(hi[0], hi[1], hi[2])
	push(lo[0], hi[1], hi[2])

	// -Z
	push(hi[0], lo[1], lo[2])
	push(lo[0], lo[1], lo[2])
	push(lo[0], hi[1], lo[2])
	push(hi[0], lo[1], lo[2])
	push(lo[0], hi[1], lo[2])
	push(hi[0], hi[1], lo[2])

	// -X
	push(lo[0], lo[1], lo[2])
	push(lo[0], lo[1], hi[2])
	push(lo[0], hi[1], hi[2])
	push(lo[0], lo[1], lo[2])
	push(lo[0], hi[1], hi[2])
	push(lo[0], hi[1], lo[2])

	// +X
	push(hi[0], lo[1], hi[2])
	push(hi[0], lo[1], lo[2])
	push(hi[0], hi[1], lo[2])
	push(hi[0], lo[1], hi[2])
	push(hi[0], hi[1], lo[2])
	push(hi[0], hi[1], hi[2])

	// +Y
	push(lo[0], hi[1], hi[2])
	push(hi[0], hi[1], hi[2])
	push(hi[0], hi[1], lo[2])
	push(lo[0], hi[1], hi[2])
	push(hi[0], hi[1], lo[2])
	push(lo[0], hi[1], lo[2])

	// -Y
	push(lo[0], lo[1], lo[2])
	push(hi[0], lo[1], lo[2])
	push(hi[0], lo[1], hi[2])
	push(lo[0], lo[1], lo[2])
	push(hi[0], lo[1], hi[2])
	push(lo[0], lo[1], hi[2])

	return dst
}

// BuildBoxes concatenates the boxes into one vertex list
func BuildBoxes(boxes []Box, color Colorer) []ColoredVertex {
	out := make([]ColoredVertex, 0, len(boxes)*BoxVertexCount)
	for _, b := range boxes {
		out = AppendBox(out, b.Min, b.Max, color)
	}
	return out
}
