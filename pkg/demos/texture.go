package demos

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"
	"golang.org/x/image/vector"
)

const (
	// rows per stripe in the low resolution sketch that gets upscaled
	sketchRowsPerStripe = 8
	emblemSpokes        = 24
	circleSegments      = 64
)

func rgba(c [3]float32) color.RGBA {
	return color.RGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: 255,
	}
}

// PaintFlag renders a horizontal-stripe flag with a spoked ring in the
// middle. width is the texture width; height keeps a 3:2 aspect. Row 0 is
// the top of the flag.
func PaintFlag(stripes [][3]float32, emblem [3]float32, width int) *image.RGBA {
	height := width * 2 / 3

	// Paint a tiny sketch and let the linear upscale soften the seams
	sketchW := width / 8
	if sketchW < 1 {
		sketchW = 1
	}
	sketch := image.NewRGBA(image.Rect(0, 0, sketchW, len(stripes)*sketchRowsPerStripe))
	for i, c := range stripes {
		band := image.Rect(0, i*sketchRowsPerStripe, sketchW, (i+1)*sketchRowsPerStripe)
		draw.Draw(sketch, band, image.NewUniform(rgba(c)), image.Point{}, draw.Src)
	}
	img := transform.Resize(sketch, width, height, transform.Linear)

	drawEmblem(img, emblem, float32(height)/float32(len(stripes))/2*0.9)
	return img
}

// drawEmblem rasterizes a ring with spokes centered in img
func drawEmblem(img *image.RGBA, c [3]float32, outer float32) {
	b := img.Bounds()
	cx, cy := float32(b.Dx())/2, float32(b.Dy())/2
	inner := outer * 0.85
	hub := outer * 0.12
	spokeHalf := outer * 0.03

	z := vector.NewRasterizer(b.Dx(), b.Dy())

	circle(z, cx, cy, outer, false)
	circle(z, cx, cy, inner, true)
	circle(z, cx, cy, hub, false)

	for i := 0; i < emblemSpokes; i++ {
		a := 2 * math32.Pi * float32(i) / emblemSpokes
		dx, dy := math32.Cos(a), math32.Sin(a)
		nx, ny := -dy*spokeHalf, dx*spokeHalf
		ex, ey := cx+dx*inner, cy+dy*inner

		// Same winding as the outer circle so overlaps with the hub add up
		z.MoveTo(cx-nx, cy-ny)
		z.LineTo(ex-nx, ey-ny)
		z.LineTo(ex+nx, ey+ny)
		z.LineTo(cx+nx, cy+ny)
		z.ClosePath()
	}

	z.Draw(img, b, image.NewUniform(rgba(c)), image.Point{})
}

// circle adds a closed polygon approximating a circle. reverse flips the
// winding, which cuts a hole when nested inside another circle.
func circle(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	dir := float32(1)
	if reverse {
		dir = -1
	}
	z.MoveTo(cx+r, cy)
	for i := 1; i < circleSegments; i++ {
		a := dir * 2 * math32.Pi * float32(i) / circleSegments
		z.LineTo(cx+r*math32.Cos(a), cy+r*math32.Sin(a))
	}
	z.ClosePath()
}
