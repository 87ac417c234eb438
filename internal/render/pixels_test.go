package render

import (
	"image/color"
	"testing"
)

func TestDensityRampShape(t *testing.T) {
	ramp := DensityRamp(color.RGBA{R: 96, G: 160, B: 240, A: 255})
	if len(ramp) != 256 {
		t.Fatalf("ramp has %d entries, want 256", len(ramp))
	}
	if ramp[0].A != 0 || ramp[255].A != 255 {
		t.Fatalf("ramp alpha endpoints = %d, %d", ramp[0].A, ramp[255].A)
	}
	if ramp[0].R != 0 || ramp[0].G != 0 || ramp[0].B != 0 {
		t.Fatalf("ramp should start at black, got %v", ramp[0])
	}
	// The top end carries the compound color, give or take rounding.
	top := ramp[255]
	if int(top.R) < 90 || int(top.G) < 154 || int(top.B) < 234 {
		t.Fatalf("ramp top %v too far from compound color", top)
	}
	for i := 1; i < 256; i++ {
		if ramp[i].A != uint8(i) {
			t.Fatalf("ramp[%d].A = %d, want %d", i, ramp[i].A, i)
		}
	}
}

func TestFillDensityRGBA(t *testing.T) {
	ramp := DensityRamp(color.RGBA{R: 255, G: 0, B: 0, A: 255})
	cells := []float32{0, 300, 128, -5}
	buf := make([]byte, len(cells)*4)

	FillDensityRGBA(buf, cells, ramp)

	// Zero and negative cells leave their pixels untouched.
	for _, i := range []int{0, 3} {
		base := i * 4
		if buf[base] != 0 || buf[base+1] != 0 || buf[base+2] != 0 || buf[base+3] != 0 {
			t.Fatalf("cell %d should be untouched: %v", i, buf[base:base+4])
		}
	}
	// Density above 255 clamps to the ramp top: full alpha over a zeroed
	// buffer yields the ramp color itself.
	if buf[4] != ramp[255].R || buf[7] != 255 {
		t.Fatalf("clamped cell = %v, want R=%d A=255", buf[4:8], ramp[255].R)
	}
	// Mid density blends at its own alpha.
	if buf[8] == 0 || buf[8] >= buf[4] {
		t.Fatalf("mid-density red %d should sit between 0 and %d", buf[8], buf[4])
	}
	if buf[11] != 255 {
		t.Fatal("touched pixels must end opaque")
	}
}

func TestComposeRGBAClearsAndBlends(t *testing.T) {
	buf := make([]byte, 2*4)
	for i := range buf {
		buf[i] = 99 // stale garbage from the previous frame
	}

	ComposeRGBA(buf, nil)
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != 0 || buf[i+1] != 0 || buf[i+2] != 0 || buf[i+3] != 255 {
			t.Fatalf("pixel %d not cleared to opaque black: %v", i/4, buf[i:i+4])
		}
	}

	red := DensityRamp(color.RGBA{R: 255, A: 255})
	green := DensityRamp(color.RGBA{G: 255, A: 255})
	ComposeRGBA(buf, []Layer{
		{Cells: []float32{255, 0}, Ramp: red},
		{Cells: []float32{0, 255}, Ramp: green},
	})
	if buf[0] == 0 || buf[1] != 0 {
		t.Fatalf("first pixel should be red: %v", buf[0:4])
	}
	if buf[4] != 0 || buf[5] == 0 {
		t.Fatalf("second pixel should be green: %v", buf[4:8])
	}
}
