//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"cloudsim/internal/core"
	"cloudsim/internal/sims/clouds"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the observer marker, the rebase bounds and a small status
// readout on top of the cloud view.
type Overlay struct {
	world *clouds.World
	scale int

	showParams bool
	pixel      *ebiten.Image
}

// NewOverlay constructs an overlay for the provided world.
func NewOverlay(world *clouds.World, scale int) *Overlay {
	o := &Overlay{world: world, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.showParams = !o.showParams
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	win := o.world.Window()
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	// Rebase bounds: the central third of the window around its center cell.
	cx := float64(win.W) / 2 * float64(scale)
	cy := float64(win.H) / 2 * float64(scale)
	halfW := float64(win.W/3) / 2 * float64(scale)
	halfH := float64(win.H/3) / 2 * float64(scale)
	bounds := color.RGBA{R: 90, G: 130, B: 170, A: 140}
	o.drawRect(screen, cx-halfW, cy-halfH, halfW*2, halfH*2, bounds)

	// Observer marker in window-relative cell coordinates.
	px, py := o.world.Observer()
	gx := (px-win.OffsetX)/win.CellSize + float64(win.W)/2
	gy := (py-win.OffsetY)/win.CellSize + float64(win.H)/2
	o.drawPoint(screen, gx*float64(scale), gy*float64(scale), float64(scale)*1.5,
		color.RGBA{R: 255, G: 255, B: 255, A: 220})

	face := basicfont.Face7x13
	line := 14
	y := line
	status := []string{
		fmt.Sprintf("tick %d", o.world.Ticks()),
		fmt.Sprintf("observer (%.1f, %.1f)", px, py),
		fmt.Sprintf("window (%.1f, %.1f)", win.OffsetX, win.OffsetY),
	}
	for _, s := range status {
		text.Draw(screen, s, face, 4, y, color.White)
		y += line
	}

	if !o.showParams {
		return
	}
	snapshot := o.world.Parameters()
	for _, group := range snapshot.Groups {
		text.Draw(screen, group.Name, face, 4, y, color.RGBA{R: 180, G: 210, B: 255, A: 255})
		y += line
		for _, p := range group.Params {
			text.Draw(screen, "  "+paramLine(p), face, 4, y, color.White)
			y += line
		}
	}
}

func paramLine(p core.Parameter) string {
	return fmt.Sprintf("%s = %s", p.Label, p.Value)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size/2, y-size/2)
	op.ColorScale.Scale(float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	o.drawBar(screen, x, y, w, 1, col)
	o.drawBar(screen, x, y+h-1, w, 1, col)
	o.drawBar(screen, x, y, 1, h, col)
	o.drawBar(screen, x+w-1, y, 1, h, col)
}

func (o *Overlay) drawBar(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255)
	screen.DrawImage(o.pixel, op)
}
