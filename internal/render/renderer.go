//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// CloudPainter composites cloud layers into a single RGBA image and draws it.
type CloudPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewCloudPainter allocates a painter for a grid of size w*h.
func NewCloudPainter(w, h int) *CloudPainter {
	cp := &CloudPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	cp.img = ebiten.NewImage(w, h)
	return cp
}

// Blit uploads the composited layers and draws them scaled onto dst.
func (cp *CloudPainter) Blit(dst *ebiten.Image, layers []Layer, scale int) {
	for _, layer := range layers {
		if len(layer.Cells) != cp.w*cp.h {
			return
		}
	}
	ComposeRGBA(cp.buf, layers)
	cp.img.WritePixels(cp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(cp.img, op)
}

// Size returns the dimensions of the underlying image.
func (cp *CloudPainter) Size() (int, int) { return cp.w, cp.h }
