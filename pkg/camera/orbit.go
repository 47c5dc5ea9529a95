package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Path is a scripted camera trajectory. t is seconds since the path started.
type Path interface {
	PositionAt(t float32) mgl32.Vec3
}

// RisingOrbit climbs from StartHeight to EndHeight at RiseRate units per
// second while parked at StartAngle, then circles the Y axis at
// AngularSpeed radians per second.
type RisingOrbit struct {
	Radius       float32
	StartHeight  float32
	EndHeight    float32
	RiseRate     float32
	StartAngle   float32
	AngularSpeed float32
}

// DefaultRisingOrbit is the flag demo approach: up from far below, then a
// slow circle ten units out.
func DefaultRisingOrbit() RisingOrbit {
	return RisingOrbit{
		Radius:       10,
		StartHeight:  -50,
		EndHeight:    1,
		RiseRate:     0.3,
		AngularSpeed: 0.05,
	}
}

// RiseDuration is how long the climb takes in seconds
func (o RisingOrbit) RiseDuration() float32 {
	if o.RiseRate <= 0 || o.EndHeight <= o.StartHeight {
		return 0
	}
	return (o.EndHeight - o.StartHeight) / o.RiseRate
}

func (o RisingOrbit) PositionAt(t float32) mgl32.Vec3 {
	if t < 0 {
		t = 0
	}

	rise := o.RiseDuration()
	height := o.EndHeight
	angle := o.StartAngle
	if t < rise {
		height = o.StartHeight + o.RiseRate*t
	} else {
		angle += o.AngularSpeed * (t - rise)
	}

	return mgl32.Vec3{
		math32.Sin(angle) * o.Radius,
		height,
		math32.Cos(angle) * o.Radius,
	}
}

// Axis is one component of a Lissajous path: Amplitude*f(Frequency*t+Phase)
type Axis struct {
	Amplitude float32
	Frequency float32
	Phase     float32
}

// Lissajous moves each coordinate on its own sinusoid. X uses cosine,
// Y and Z use sine.
type Lissajous struct {
	X, Y, Z Axis
}

// DefaultLissajous is the auto-move path of the cubes demo
func DefaultLissajous() Lissajous {
	return Lissajous{
		X: Axis{Amplitude: 6, Frequency: 1.5, Phase: 30},
		Y: Axis{Amplitude: 12, Frequency: 0.5, Phase: 90},
		Z: Axis{Amplitude: 9, Frequency: 2, Phase: 60},
	}
}

func (l Lissajous) PositionAt(t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Cos(l.X.Frequency*t+l.X.Phase) * l.X.Amplitude,
		math32.Sin(l.Y.Frequency*t+l.Y.Phase) * l.Y.Amplitude,
		math32.Sin(l.Z.Frequency*t+l.Z.Phase) * l.Z.Amplitude,
	}
}
