package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"gldemos/internal/util"
)

// Colorer picks a color for a box corner p. min and max are the corners of
// the box being built.
type Colorer func(p, min, max mgl32.Vec3) mgl32.Vec3

// Default gradient colors of the extruded letters
var (
	GradientFront = mgl32.Vec3{1, 1, 1}
	GradientBack  = mgl32.Vec3{0.2, 0.2, 0.6}
)

// Solid colors every vertex the same
func Solid(c mgl32.Vec3) Colorer {
	return func(_, _, _ mgl32.Vec3) mgl32.Vec3 {
		return c
	}
}

// DepthGradient shades along z: vertices at min.z get front, vertices at
// max.z get back.
func DepthGradient(front, back mgl32.Vec3) Colorer {
	return func(p, min, max mgl32.Vec3) mgl32.Vec3 {
		return GradientAt(p.Z(), min.Z(), max.Z(), front, back)
	}
}

// GradientAt blends front into back by t = (z-zMin)/(zMax-zMin) clamped to
// [0,1]. Both ends are exact. A zero-depth range returns front.
func GradientAt(z, zMin, zMax float32, front, back mgl32.Vec3) mgl32.Vec3 {
	t := util.InverseLerp(zMin, zMax, z)
	return mgl32.Vec3{
		util.Mix(front[0], back[0], t),
		util.Mix(front[1], back[1], t),
		util.Mix(front[2], back[2], t),
	}
}
