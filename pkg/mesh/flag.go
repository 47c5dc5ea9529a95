package mesh

import "github.com/go-gl/mathgl/mgl32"

// StripSpacing selects how a flag's width and u range are divided
type StripSpacing int

const (
	// SpanFull splits the flag into Density-1 strips that cover the full
	// width and the full [0,1] u range.
	SpanFull StripSpacing = iota
	// SpanDensity cuts width/Density wide strips but still emits only
	// Density-1 of them, leaving the last slice of the width and of the
	// u range uncovered.
	SpanDensity
)

func (s StripSpacing) String() string {
	switch s {
	case SpanFull:
		return "full"
	case SpanDensity:
		return "density"
	}
	return "unknown"
}

// ParseStripSpacing maps a config name to a StripSpacing
func ParseStripSpacing(name string) (StripSpacing, bool) {
	switch name {
	case "", "full":
		return SpanFull, true
	case "density":
		return SpanDensity, true
	}
	return SpanFull, false
}

// FlagStrip describes a flat rectangular flag by three of its corners.
// Density controls how many vertical strips it is cut into.
type FlagStrip struct {
	UpperLeft  mgl32.Vec3
	UpperRight mgl32.Vec3
	BottomLeft mgl32.Vec3
	Density    int
	Spacing    StripSpacing
}

// StripCount is the number of strips BuildFlagStrip emits
func (f FlagStrip) StripCount() int {
	if f.Density < 2 {
		return 0
	}
	return f.Density - 1
}

// BuildFlagStrip cuts the flag into vertical strips, six vertices each.
// Every strip is two triangles (top-left, top-right, bottom-left) and
// (bottom-left, top-right, bottom-right), with v=1 along the top edge and
// v=0 along the bottom. u grows with the strip index, so it can double as
// the distance from the pole. Density below 2 yields no vertices.
func BuildFlagStrip(f FlagStrip) []TexturedVertex {
	n := f.StripCount()
	if n == 0 {
		return nil
	}

	divisions := float32(n)
	if f.Spacing == SpanDensity {
		divisions = float32(f.Density)
	}

	step := f.UpperRight.Sub(f.UpperLeft).Mul(1 / divisions)
	out := make([]TexturedVertex, 0, 6*n)

	for i := 1; i <= n; i++ {
		u0 := float32(i-1) / divisions
		u1 := float32(i) / divisions

		tl := f.UpperLeft.Add(step.Mul(float32(i - 1)))
		tr := f.UpperLeft.Add(step.Mul(float32(i)))
		bl := f.BottomLeft.Add(step.Mul(float32(i - 1)))
		br := f.BottomLeft.Add(step.Mul(float32(i)))

		out = append(out,
			TexturedVertex{Position: tl, UV: mgl32.Vec2{u0, 1}},
			TexturedVertex{Position: tr, UV: mgl32.Vec2{u1, 1}},
			TexturedVertex{Position: bl, UV: mgl32.Vec2{u0, 0}},
			TexturedVertex{Position: bl, UV: mgl32.Vec2{u0, 0}},
			TexturedVertex{Position: tr, UV: mgl32.Vec2{u1, 1}},
			TexturedVertex{Position: br, UV: mgl32.Vec2{u1, 0}},
		)
	}

	return out
}
