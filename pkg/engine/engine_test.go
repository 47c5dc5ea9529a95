package engine

import (
	"testing"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"gldemos/pkg/input"
)

func TestFrameWait(t *testing.T) {
	assert.Equal(t, time.Duration(0), frameWait(time.Millisecond, 0))
	assert.Equal(t, time.Duration(0), frameWait(time.Millisecond, -5))
	assert.Equal(t, 15*time.Millisecond, frameWait(5*time.Millisecond, 50))
	assert.Equal(t, time.Duration(0), frameWait(25*time.Millisecond, 50))
	assert.Equal(t, time.Duration(0), frameWait(20*time.Millisecond, 50))
}

func TestSwapInterval(t *testing.T) {
	assert.Equal(t, 1, swapInterval(true))
	assert.Equal(t, 0, swapInterval(false))
}

func TestTranslateKeyEvent(t *testing.T) {
	e, ok := translateKeyEvent(glfw.KeyW, glfw.Press)
	assert.True(t, ok)
	assert.Equal(t, input.Press(input.KeyW), e)

	e, ok = translateKeyEvent(glfw.KeyEscape, glfw.Release)
	assert.True(t, ok)
	assert.Equal(t, input.Release(input.KeyEscape), e)

	_, ok = translateKeyEvent(glfw.KeyW, glfw.Repeat)
	assert.False(t, ok)

	_, ok = translateKeyEvent(glfw.KeyF12, glfw.Press)
	assert.False(t, ok)
}

func TestTranslateKeyCoversDemoKeys(t *testing.T) {
	seen := map[input.Key]bool{}
	for k := range keyMap {
		seen[translateKey(k)] = true
	}
	for _, k := range []input.Key{
		input.KeyW, input.KeyA, input.KeyS, input.KeyD,
		input.KeyQ, input.KeyE, input.KeySpace, input.KeyEscape, input.KeyTab,
	} {
		assert.True(t, seen[k], k.String())
	}
	assert.Equal(t, input.KeyUnknown, translateKey(glfw.KeyZ))
}

func TestQuitRequested(t *testing.T) {
	assert.False(t, quitRequested(nil))
	assert.False(t, quitRequested([]input.Event{input.Release(input.KeyEscape), input.Press(input.KeyW)}))
	assert.True(t, quitRequested([]input.Event{input.Pointer(1, 2), input.Press(input.KeyEscape)}))
}
