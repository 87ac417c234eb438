package render

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/colorgrad"
)

// Layer pairs one cloud's density field with the color ramp it is drawn
// through.
type Layer struct {
	Cells []float32
	Ramp  []color.RGBA
}

// DensityRamp builds a 256-entry ramp from black to the compound's cloud
// color. Ramp alpha tracks the density intensity so faint cloud edges fade
// out instead of cutting off.
func DensityRamp(c color.RGBA) []color.RGBA {
	ramp := make([]color.RGBA, 256)
	grad, err := colorgrad.NewGradient().
		HtmlColors("#000000", fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)).
		Build()
	if err != nil {
		// Unreachable with hex inputs, but fall back to a linear ramp
		// rather than a panic in a draw path.
		for i := range ramp {
			t := uint32(i)
			ramp[i] = color.RGBA{
				R: uint8(uint32(c.R) * t / 255),
				G: uint8(uint32(c.G) * t / 255),
				B: uint8(uint32(c.B) * t / 255),
				A: uint8(i),
			}
		}
		return ramp
	}
	for i := range ramp {
		col := grad.At(float64(i) / 255)
		r, g, b, _ := col.RGBA()
		ramp[i] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(i)}
	}
	return ramp
}

// FillDensityRGBA source-over blends one cloud layer into buf. Densities are
// clamped to 0..255 before indexing the ramp; zero cells leave buf alone.
func FillDensityRGBA(buf []byte, cells []float32, ramp []color.RGBA) {
	for i, v := range cells {
		intensity := int(v)
		if intensity <= 0 {
			continue
		}
		if intensity > 255 {
			intensity = 255
		}
		col := ramp[intensity]
		a := uint32(col.A)
		inv := 255 - a
		base := i * 4
		buf[base+0] = uint8((uint32(col.R)*a + uint32(buf[base+0])*inv) / 255)
		buf[base+1] = uint8((uint32(col.G)*a + uint32(buf[base+1])*inv) / 255)
		buf[base+2] = uint8((uint32(col.B)*a + uint32(buf[base+2])*inv) / 255)
		buf[base+3] = 255
	}
}

// ComposeRGBA clears buf to opaque black and blends every layer in order.
func ComposeRGBA(buf []byte, layers []Layer) {
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = 0
		buf[i+1] = 0
		buf[i+2] = 0
		buf[i+3] = 255
	}
	for _, layer := range layers {
		FillDensityRGBA(buf, layer.Cells, layer.Ramp)
	}
}
