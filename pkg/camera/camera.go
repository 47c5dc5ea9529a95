// Package camera implements a free-look camera driven by yaw/pitch angles
// plus scripted camera paths for demos that move the eye on their own.
package camera

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"gldemos/internal/util"
)

// Direction is a keyboard movement direction
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Settings holds per-camera tuning. Values are fixed once the camera is built.
type Settings struct {
	MovementSpeed    float32 // world units per second
	MouseSensitivity float32 // degrees per pointer unit
	Zoom             float32 // initial field of view in degrees
	MinZoom          float32
	MaxZoom          float32
	MaxPitch         float32 // absolute pitch limit in degrees, below 90
	InvertY          bool    // screen-down looks up instead of down
}

// DefaultSettings returns the settings used by the free-look demos
func DefaultSettings() Settings {
	return Settings{
		MovementSpeed:    2.5,
		MouseSensitivity: 0.1,
		Zoom:             45,
		MinZoom:          1,
		MaxZoom:          45,
		MaxPitch:         89,
	}
}

// Camera is an FPS-style camera. Front, Right and Up are derived from yaw
// and pitch and are recomputed after every angle change.
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	yaw      float32
	pitch    float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3

	settings Settings
	zoom     float32

	lastX, lastY float64
	firstSample  bool
}

// New creates a camera at position looking along the direction given by yaw
// and pitch (degrees). Yaw -90 looks down -Z. worldUp must not be parallel
// to the resulting front vector.
func New(position, worldUp mgl32.Vec3, yaw, pitch float32, s Settings) *Camera {
	c := &Camera{settings: s}
	c.zoom = util.Clamp(s.Zoom, s.MinZoom, s.MaxZoom)
	c.Initialize(position, worldUp, yaw, pitch)
	return c
}

// NewDefault creates a camera at position looking down -Z with +Y up
func NewDefault(position mgl32.Vec3) *Camera {
	return New(position, mgl32.Vec3{0, 1, 0}, -90, 0, DefaultSettings())
}

// Initialize resets pose and re-arms first pointer sample handling.
// Zoom is left untouched.
func (c *Camera) Initialize(position, worldUp mgl32.Vec3, yaw, pitch float32) {
	c.position = position
	c.worldUp = worldUp.Normalize()
	c.yaw = yaw
	c.pitch = c.clampPitch(pitch)
	c.firstSample = true
	c.updateVectors()
}

func (c *Camera) clampPitch(p float32) float32 {
	return util.Clamp(p, -c.settings.MaxPitch, c.settings.MaxPitch)
}

// updateVectors derives front, right and up from the current angles
func (c *Camera) updateVectors() {
	yaw := util.Radians(c.yaw)
	pitch := util.Radians(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// ProcessMouseDelta turns pointer motion into yaw and pitch. dy is in screen
// space (grows downward), so moving the pointer down looks down.
func (c *Camera) ProcessMouseDelta(dx, dy float32) {
	dx *= c.settings.MouseSensitivity
	dy *= c.settings.MouseSensitivity
	if c.settings.InvertY {
		dy = -dy
	}

	c.yaw += dx
	c.pitch = c.clampPitch(c.pitch - dy)
	c.updateVectors()
}

// ProcessPointer takes an absolute pointer position. The first sample after
// Initialize or ResetPointer only records the base position.
func (c *Camera) ProcessPointer(x, y float64) {
	if c.firstSample {
		c.lastX, c.lastY = x, y
		c.firstSample = false
		return
	}

	dx := float32(x - c.lastX)
	dy := float32(y - c.lastY)
	c.lastX, c.lastY = x, y
	c.ProcessMouseDelta(dx, dy)
}

// ResetPointer makes the next ProcessPointer call a first sample again,
// e.g. after the cursor was recaptured.
func (c *Camera) ResetPointer() {
	c.firstSample = true
}

// ProcessKeyboard moves the camera MovementSpeed*dt units along front or
// right. A negative dt is a caller bug.
func (c *Camera) ProcessKeyboard(dir Direction, dt float32) {
	if dt < 0 {
		panic(fmt.Sprintf("camera: negative delta time %v", dt))
	}

	velocity := c.settings.MovementSpeed * dt
	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	default:
		panic(fmt.Sprintf("camera: unknown direction %v", dir))
	}
}

// ProcessScroll narrows the field of view for positive offsets
func (c *Camera) ProcessScroll(offset float32) {
	c.zoom = util.Clamp(c.zoom-offset, c.settings.MinZoom, c.settings.MaxZoom)
}

// ViewMatrix looks from the camera position along front
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// TargetViewMatrix looks from the camera position at a fixed point,
// ignoring yaw and pitch
func (c *Camera) TargetViewMatrix(target mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(c.position, target, c.worldUp)
}

// Projection builds a perspective matrix using the current zoom as fovy
func (c *Camera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(util.Radians(c.zoom), aspect, near, far)
}

// SetPosition moves the camera without touching its orientation
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) WorldUp() mgl32.Vec3  { return c.worldUp }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Zoom() float32        { return c.zoom }
func (c *Camera) Settings() Settings   { return c.settings }
