package main

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/plus3/tethered/world"
)

func toColorful(c world.RGB) colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}

func fromColorful(c colorful.Color) world.RGB {
	r, g, b := c.Clamped().RGB255()
	return world.RGB{r, g, b}
}

func channel(v float64) uint8 {
	return uint8(min(max(math.Round(v*255), 0), 255))
}

// darken lowers the HSL lightness by percent of one half.
func darken(c world.RGB, percent float64) world.RGB {
	h, s, l := toColorful(c).Hsl()
	l = max(l-percent/100*0.5, 0)
	return fromColorful(colorful.Hsl(h, s, l))
}

// mix adds two colors channel-wise, saturating at 255.
func mix(a, b world.RGB) world.RGB {
	var out world.RGB
	for i := range out {
		out[i] = uint8(min(int(a[i])+int(b[i]), 255))
	}
	return out
}

func rgba(c world.RGB, alpha float64) color.RGBA {
	a := channel(alpha)
	// color.RGBA is alpha-premultiplied
	return color.RGBA{
		R: uint8(uint16(c[0]) * uint16(a) / 255),
		G: uint8(uint16(c[1]) * uint16(a) / 255),
		B: uint8(uint16(c[2]) * uint16(a) / 255),
		A: a,
	}
}

// pointerColor is the mix of every following player's color; with nobody
// following the pointer is drawn black at half opacity.
func pointerColor(scene *world.Scene) color.RGBA {
	switch {
	case scene.A.FollowPointer && scene.B.FollowPointer:
		return rgba(mix(scene.A.Color, scene.B.Color), 1)
	case scene.A.FollowPointer:
		return rgba(scene.A.Color, 1)
	case scene.B.FollowPointer:
		return rgba(scene.B.Color, 1)
	default:
		return rgba(world.RGB{}, 0.5)
	}
}
