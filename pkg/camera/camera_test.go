package camera

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func assertVecInDelta(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}

func TestNewDefaultLooksDownNegativeZ(t *testing.T) {
	c := NewDefault(mgl32.Vec3{0, 0, 3})

	assertVecInDelta(t, mgl32.Vec3{0, 0, -1}, c.Front(), eps)
	assertVecInDelta(t, mgl32.Vec3{1, 0, 0}, c.Right(), eps)
	assertVecInDelta(t, mgl32.Vec3{0, 1, 0}, c.Up(), eps)
	assert.Equal(t, float32(45), c.Zoom())
	assert.Equal(t, float32(-90), c.Yaw())
	assert.Equal(t, float32(0), c.Pitch())
}

func TestInitializeClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, -90, 120, DefaultSettings())
	assert.Equal(t, float32(89), c.Pitch())

	c.Initialize(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, -90, -400)
	assert.Equal(t, float32(-89), c.Pitch())
}

func TestPitchStaysClamped(t *testing.T) {
	c := NewDefault(mgl32.Vec3{})
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		dx := float32(rng.NormFloat64() * 400)
		dy := float32(rng.NormFloat64() * 400)
		c.ProcessMouseDelta(dx, dy)
		require.LessOrEqual(t, c.Pitch(), float32(89))
		require.GreaterOrEqual(t, c.Pitch(), float32(-89))
	}

	// Huge upward swing saturates exactly at the limit
	c.ProcessMouseDelta(0, -1e6)
	assert.Equal(t, float32(89), c.Pitch())
	c.ProcessMouseDelta(0, 1e6)
	assert.Equal(t, float32(-89), c.Pitch())
}

func TestBasisIsOrthonormal(t *testing.T) {
	c := NewDefault(mgl32.Vec3{})

	for yaw := float32(-360); yaw <= 360; yaw += 17 {
		for pitch := float32(-89); pitch <= 89; pitch += 8.9 {
			c.Initialize(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, yaw, pitch)

			f, r, u := c.Front(), c.Right(), c.Up()
			assert.InDelta(t, 1, f.Len(), eps)
			assert.InDelta(t, 1, r.Len(), eps)
			assert.InDelta(t, 1, u.Len(), eps)
			assert.InDelta(t, 0, f.Dot(r), eps)
			assert.InDelta(t, 0, f.Dot(u), eps)
			assert.InDelta(t, 0, r.Dot(u), eps)
		}
	}
}

func TestMouseDownLooksDown(t *testing.T) {
	c := NewDefault(mgl32.Vec3{})
	c.ProcessMouseDelta(0, 50)
	assert.InDelta(t, -5, c.Pitch(), eps)
	assert.Less(t, c.Front().Y(), float32(0))

	c.ProcessMouseDelta(100, 0)
	assert.InDelta(t, -80, c.Yaw(), eps)
}

func TestInvertY(t *testing.T) {
	s := DefaultSettings()
	s.InvertY = true
	c := New(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, -90, 0, s)

	c.ProcessMouseDelta(0, 50)
	assert.InDelta(t, 5, c.Pitch(), eps)
}

func TestFirstPointerSampleIsIgnored(t *testing.T) {
	c := NewDefault(mgl32.Vec3{})

	c.ProcessPointer(400, 300)
	assert.Equal(t, float32(-90), c.Yaw())
	assert.Equal(t, float32(0), c.Pitch())

	c.ProcessPointer(410, 290)
	assert.InDelta(t, -89, c.Yaw(), eps)
	assert.InDelta(t, 1, c.Pitch(), eps)

	// Re-arming swallows the jump to a far away position
	c.ResetPointer()
	c.ProcessPointer(0, 0)
	assert.InDelta(t, -89, c.Yaw(), eps)
	assert.InDelta(t, 1, c.Pitch(), eps)

	c.Initialize(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, -90, 0)
	c.ProcessPointer(1000, 1000)
	assert.Equal(t, float32(-90), c.Yaw())
	assert.Equal(t, float32(0), c.Pitch())
}

func TestKeyboardIsFrameRateIndependent(t *testing.T) {
	steps := [][]float32{
		{1},
		{0.5, 0.5},
		{0.1, 0.2, 0.3, 0.4},
		{0.016, 0.016, 0.016, 0.952},
	}

	for _, dir := range []Direction{Forward, Backward, Left, Right} {
		var want mgl32.Vec3
		for i, dts := range steps {
			c := New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}, -30, 20, DefaultSettings())
			for _, dt := range dts {
				c.ProcessKeyboard(dir, dt)
			}
			if i == 0 {
				want = c.Position()
				continue
			}
			assertVecInDelta(t, want, c.Position(), eps)
		}
	}
}

func TestKeyboardDirections(t *testing.T) {
	c := NewDefault(mgl32.Vec3{})

	c.ProcessKeyboard(Forward, 2)
	assertVecInDelta(t, mgl32.Vec3{0, 0, -5}, c.Position(), eps)

	c.ProcessKeyboard(Right, 1)
	assertVecInDelta(t, mgl32.Vec3{2.5, 0, -5}, c.Position(), eps)

	c.ProcessKeyboard(Left, 1)
	c.ProcessKeyboard(Backward, 2)
	assertVecInDelta(t, mgl32.Vec3{}, c.Position(), eps)

	c.ProcessKeyboard(Forward, 0)
	assertVecInDelta(t, mgl32.Vec3{}, c.Position(), eps)
}

func TestKeyboardNegativeDeltaPanics(t *testing.T) {
	c := NewDefault(mgl32.Vec3{})
	assert.Panics(t, func() { c.ProcessKeyboard(Forward, -0.1) })
}

func TestZoomStaysClamped(t *testing.T) {
	c := NewDefault(mgl32.Vec3{})

	for i := 0; i < 100; i++ {
		c.ProcessScroll(3)
		require.GreaterOrEqual(t, c.Zoom(), float32(1))
	}
	assert.Equal(t, float32(1), c.Zoom())

	for i := 0; i < 100; i++ {
		c.ProcessScroll(-7)
		require.LessOrEqual(t, c.Zoom(), float32(45))
	}
	assert.Equal(t, float32(45), c.Zoom())

	c.ProcessScroll(4.5)
	assert.InDelta(t, 40.5, c.Zoom(), eps)
}

func TestViewMatrixMapsFrontToNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}, 10, 30, DefaultSettings())

	view := c.ViewMatrix()
	eye := view.Mul4x1(c.Position().Vec4(1)).Vec3()
	assertVecInDelta(t, mgl32.Vec3{}, eye, eps)

	ahead := view.Mul4x1(c.Position().Add(c.Front()).Vec4(1)).Vec3()
	assertVecInDelta(t, mgl32.Vec3{0, 0, -1}, ahead, eps)

	// Pure: calling twice gives the same matrix
	assert.Equal(t, view, c.ViewMatrix())
}

func TestTargetViewMatrix(t *testing.T) {
	c := NewDefault(mgl32.Vec3{0, 1, 10})
	target := mgl32.Vec3{-0.7, 0, 0}

	view := c.TargetViewMatrix(target)
	got := view.Mul4x1(target.Vec4(1)).Vec3()

	assert.InDelta(t, 0, got.X(), eps)
	assert.InDelta(t, 0, got.Y(), eps)
	assert.InDelta(t, -target.Sub(c.Position()).Len(), got.Z(), eps)
}

func TestProjectionUsesZoom(t *testing.T) {
	c := NewDefault(mgl32.Vec3{})
	assertMatInDelta(t, mgl32.Perspective(mgl32.DegToRad(45), 1.5, 0.1, 100), c.Projection(1.5, 0.1, 100))

	c.ProcessScroll(15)
	assertMatInDelta(t, mgl32.Perspective(mgl32.DegToRad(30), 1.5, 0.1, 100), c.Projection(1.5, 0.1, 100))
}

func assertMatInDelta(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}
