// Command cloudrec runs the cloud simulation headless and records the
// density evolution to an MJPEG (AVI) video, moving the observer along a
// straight-line path so the window rebasing is visible.
package main

import (
	"bytes"
	"flag"
	"image"
	"image/jpeg"
	"log"
	"math/rand"

	"cloudsim/internal/compound"
	"cloudsim/internal/render"
	"cloudsim/internal/sims/clouds"

	"github.com/icza/mjpeg"
)

func main() {
	out := flag.String("out", "clouds.avi", "output video file")
	ticks := flag.Int("ticks", 600, "number of ticks to record")
	fps := flag.Int("fps", 30, "video frame rate")
	scale := flag.Int("scale", 4, "pixel scale multiplier")
	seed := flag.Int64("seed", 1337, "velocity field seed")
	width := flag.Int("w", 120, "grid width in cells")
	height := flag.Int("h", 120, "grid height in cells")
	cellSize := flag.Float64("cell-size", 2, "world units per cell")
	compoundsFlag := flag.String("compounds", "oxygen,co2,glucose,ammonia", "comma-separated compound types to simulate")
	speedX := flag.Float64("speed-x", 0.5, "observer x velocity in world units per tick")
	speedY := flag.Float64("speed-y", 0, "observer y velocity in world units per tick")
	puffEvery := flag.Int("puff-every", 40, "ticks between compound puffs")
	quality := flag.Int("quality", 90, "JPEG quality")
	flag.Parse()

	infos, err := compound.ResolveList(*compoundsFlag)
	if err != nil {
		log.Fatalf("resolving compounds: %v", err)
	}

	cfg := clouds.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.CellSize = *cellSize
	cfg.Seed = *seed

	world := clouds.NewWithConfig(cfg)
	layers := make([]render.Layer, 0, len(infos))
	for _, info := range infos {
		cloud := world.CreateGrid(info.ID)
		layers = append(layers, render.Layer{
			Cells: cloud.Density(),
			Ramp:  render.DensityRamp(info.Color),
		})
	}

	if *scale < 1 {
		*scale = 1
	}
	outW := *width * *scale
	outH := *height * *scale

	writer, err := mjpeg.New(*out, int32(outW), int32(outH), int32(*fps))
	if err != nil {
		log.Fatalf("creating %s: %v", *out, err)
	}
	defer func() {
		if err := writer.Close(); err != nil {
			log.Fatalf("closing %s: %v", *out, err)
		}
	}()

	rng := rand.New(rand.NewSource(*seed))
	buf := make([]byte, 4*(*width)*(*height))
	frame := image.NewRGBA(image.Rect(0, 0, outW, outH))
	var jpegBuf bytes.Buffer
	opts := &jpeg.Options{Quality: *quality}

	var px, py float64
	for tick := 0; tick < *ticks; tick++ {
		if *puffEvery > 0 && tick%*puffEvery == 0 {
			spawnPuffs(world, rng)
		}
		if err := world.Tick(px, py); err != nil {
			log.Fatalf("tick %d: %v", tick, err)
		}
		px += *speedX
		py += *speedY

		render.ComposeRGBA(buf, layers)
		scaleRGBA(frame.Pix, buf, *width, *height, *scale)

		jpegBuf.Reset()
		if err := jpeg.Encode(&jpegBuf, frame, opts); err != nil {
			log.Fatalf("encoding frame %d: %v", tick, err)
		}
		if err := writer.AddFrame(jpegBuf.Bytes()); err != nil {
			log.Fatalf("writing frame %d: %v", tick, err)
		}
	}

	log.Printf("wrote %d frames to %s", *ticks, *out)
}

func spawnPuffs(world *clouds.World, rng *rand.Rand) {
	win := world.Window()
	spreadX := float64(win.W) * win.CellSize / 3
	spreadY := float64(win.H) * win.CellSize / 3
	for _, id := range world.CompoundIDs() {
		cloud, ok := world.Cloud(id)
		if !ok {
			continue
		}
		wx := win.OffsetX + (rng.Float64()*2-1)*spreadX
		wy := win.OffsetY + (rng.Float64()*2-1)*spreadY
		cloud.AddCloud(120+rng.Float32()*120, wx, wy)
	}
}

// scaleRGBA replicates each source pixel into a scale*scale block.
func scaleRGBA(dst, src []byte, w, h, scale int) {
	outW := w * scale
	for y := 0; y < h; y++ {
		rowStart := y * scale * outW * 4
		for x := 0; x < w; x++ {
			si := (y*w + x) * 4
			for dx := 0; dx < scale; dx++ {
				di := rowStart + (x*scale+dx)*4
				copy(dst[di:di+4], src[si:si+4])
			}
		}
		row := dst[rowStart : rowStart+outW*4]
		for dy := 1; dy < scale; dy++ {
			copy(dst[rowStart+dy*outW*4:rowStart+(dy+1)*outW*4], row)
		}
	}
}
