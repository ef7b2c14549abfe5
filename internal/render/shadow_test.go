package render

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskBounds(t *testing.T) {
	m := Shadow{Radius: 4, Opacity: 1}.Mask(image.Pt(20, 10))
	if want := image.Rect(-4, -4, 24, 14); m.Bounds() != want {
		t.Fatalf("unexpected bounds %v, want %v", m.Bounds(), want)
	}
}

func TestMaskFadesAtEdges(t *testing.T) {
	s := Shadow{Radius: 3, Opacity: 0.5}
	m := s.Mask(image.Pt(20, 20))
	centre := m.AlphaAt(10, 10).A
	if centre != 128 {
		t.Fatalf("expected full opacity in the middle, got %d", centre)
	}
	edge := m.AlphaAt(0, 10).A
	outside := m.AlphaAt(-3, 10).A
	corner := m.AlphaAt(-3, -3).A
	if !(centre > edge && edge > outside && outside >= corner) {
		t.Fatalf("expected a falloff, got centre=%d edge=%d outside=%d corner=%d", centre, edge, outside, corner)
	}
}

func TestHardShadowWithoutRadius(t *testing.T) {
	m := Shadow{Opacity: 1}.Mask(image.Pt(3, 3))
	for i, a := range m.Pix {
		if a != 255 {
			t.Fatalf("pixel %d = %d, want 255", i, a)
		}
	}
}

func TestDrawOffsetsShadow(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for i := range dst.Pix {
		dst.Pix[i] = 255
	}
	s := Shadow{Radius: 0, Offset: image.Pt(5, 5), Opacity: 1}
	c := &ShadowCache{Shadow: s}
	c.Draw(dst, image.Rect(10, 10, 20, 20))

	if got := dst.RGBAAt(24, 24); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("expected shadow at the offset corner, got %v", got)
	}
	if got := dst.RGBAAt(12, 12); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("expected untouched pixel before the offset, got %v", got)
	}

	c.Shadow.Opacity = 0
	c.Draw(dst, image.Rect(0, 0, 5, 5))
	if got := dst.RGBAAt(7, 7); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("zero opacity should draw nothing, got %v", got)
	}
}
