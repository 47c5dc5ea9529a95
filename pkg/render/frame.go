package render

import "gldemos/pkg/input"

// Frame is what the loop hands a demo every tick
type Frame struct {
	Time   float32 // seconds since the demo started
	Delta  float32 // seconds since the previous frame
	Width  int     // framebuffer width in pixels
	Height int     // framebuffer height in pixels
	Events []input.Event
}

// Aspect returns width/height, or 1 for an empty framebuffer
func (f Frame) Aspect() float32 {
	if f.Width <= 0 || f.Height <= 0 {
		return 1
	}
	return float32(f.Width) / float32(f.Height)
}
