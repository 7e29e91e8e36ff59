// Package icon paints the Derby Disorder app icon: a golden trophy on a
// dark-blue disc with racing stripes and a cyan rim.
package icon

import (
	"image"
	"image/color"
	"math"
)

const DefaultSize = 512

// Geometry is laid out on a 512px canvas; other sizes sample it scaled.
const (
	designSize   = 512.0
	designCenter = 256.0
	discRadius   = 240.0

	trophyLeft   = designCenter - 80
	trophyRight  = designCenter + 80
	trophyTop    = 100.0
	trophyBottom = 280.0

	stripeTop    = 380.0
	stripeBottom = 420.0
	stripeWidth  = 30.0
)

var (
	transparent = color.NRGBA{}
	stripeCyan  = color.NRGBA{0, 255, 255, 200}
	stripePink  = color.NRGBA{255, 0, 255, 200}
)

// At returns the colour of pixel (x, y) on a size×size canvas.
func At(x, y, size int) color.NRGBA {
	scale := designSize / float64(size)
	u, v := float64(x)*scale, float64(y)*scale

	dx, dy := u-designCenter, v-designCenter
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist >= discRadius {
		return transparent
	}

	t := float64(y) / float64(size)
	bg := color.NRGBA{
		R: uint8(10 + t*20),
		G: uint8(10 + t*30),
		B: uint8(46 + t*20),
		A: 255,
	}

	var c color.NRGBA
	switch {
	case isTrophy(u, v):
		c = color.NRGBA{255, uint8(215 - int((v-trophyTop)*0.3)), 0, 255}
	case stripeTop < v && v < stripeBottom:
		switch int(math.Floor((u+v)/stripeWidth)) % 3 {
		case 0:
			c = stripeCyan
		case 1:
			c = stripePink
		default:
			c = bg
		}
	default:
		c = bg
	}

	if dist > discRadius-5 && dist < discRadius+5 {
		glow := 1 - math.Abs(dist-discRadius)/5
		c.R = uint8(float64(c.R) * (1 - glow))
		c.G = uint8(float64(c.G)*(1-glow) + 255*glow)
		c.B = uint8(float64(c.B)*(1-glow) + 255*glow)
	}
	return c
}

func isTrophy(u, v float64) bool {
	if trophyLeft < u && u < trophyRight && trophyTop < v && v < trophyBottom {
		cupWidth := 80 - math.Abs(v-150)*0.4
		if math.Abs(u-designCenter) < cupWidth {
			return true
		}
	}
	// stem, then foot
	if designCenter-50 < u && u < designCenter+50 && 280 < v && v < 320 {
		return true
	}
	return designCenter-70 < u && u < designCenter+70 && 310 < v && v < 340
}

// Paint returns the icon as a flat RGBA buffer of size*size*4 bytes,
// row-major, top row first.
func Paint(size int) []byte {
	if size <= 0 {
		return nil
	}
	pixels := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := At(x, y, size)
			i := (y*size + x) * 4
			pixels[i] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			pixels[i+3] = c.A
		}
	}
	return pixels
}

// Image wraps Paint's buffer as an NRGBA image without copying.
func Image(size int) *image.NRGBA {
	if size <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	return &image.NRGBA{
		Pix:    Paint(size),
		Stride: size * 4,
		Rect:   image.Rect(0, 0, size, size),
	}
}
