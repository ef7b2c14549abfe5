package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Shadow is a soft drop shadow cast by an opaque rectangle.
type Shadow struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadow is the shadow drawn under the surface in the window.
func DefaultShadow() Shadow {
	return Shadow{Radius: 8, Offset: image.Pt(4, 4), Opacity: 0.35}
}

// Mask returns the shadow alpha for a rectangle of the given size. The mask
// extends Radius pixels past every edge, so its origin is (-Radius, -Radius).
func (s Shadow) Mask(size image.Point) *image.Alpha {
	r := max(s.Radius, 0)
	opacity := min(max(s.Opacity, 0), 1)
	mask := image.NewAlpha(image.Rect(-r, -r, size.X+r, size.Y+r))
	if opacity == 0 || size.X <= 0 || size.Y <= 0 {
		return mask
	}
	fx := boxProfile(size.X, r)
	fy := boxProfile(size.Y, r)
	for j, vy := range fy {
		row := j * mask.Stride
		for i, vx := range fx {
			mask.Pix[row+i] = uint8(opacity*vx*vy*255 + 0.5)
		}
	}
	return mask
}

// boxProfile is a step of length n box-blurred with radius r, sampled over
// n+2r positions starting r before the step.
func boxProfile(n, r int) []float64 {
	out := make([]float64, n+2*r)
	window := float64(2*r + 1)
	for i := range out {
		pos := i - r
		lo := max(pos-r, 0)
		hi := min(pos+r, n-1)
		if hi >= lo {
			out[i] = float64(hi-lo+1) / window
		}
	}
	return out
}

// Draw composites mask, as returned by Mask, under a rectangle at rect.Min.
func (s Shadow) Draw(dst draw.Image, rect image.Rectangle, mask *image.Alpha) {
	if mask == nil || s.Opacity <= 0 {
		return
	}
	target := mask.Bounds().Add(rect.Min).Add(s.Offset)
	draw.DrawMask(dst, target, image.NewUniform(color.Black), image.Point{}, mask, mask.Bounds().Min, draw.Over)
}

// ShadowCache keeps the mask for the last rectangle size.
type ShadowCache struct {
	Shadow Shadow
	size   image.Point
	mask   *image.Alpha
}

// Draw draws the shadow for rect, rebuilding the mask when its size changed.
func (c *ShadowCache) Draw(dst draw.Image, rect image.Rectangle) {
	if c.mask == nil || rect.Size() != c.size {
		c.size = rect.Size()
		c.mask = c.Shadow.Mask(c.size)
	}
	c.Shadow.Draw(dst, rect, c.mask)
}
