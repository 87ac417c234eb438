//go:build ebiten

package app

import (
	"math/rand"
	"time"

	"cloudsim/internal/compound"
	"cloudsim/internal/render"
	"cloudsim/internal/sims/clouds"
	"cloudsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// puffEvery controls how often the built-in spawner deposits fresh compound
// puffs; the viewer stands in for the game's spawn system here.
const puffEvery = 40

// Game adapts the cloud world to the ebiten.Game interface and plays the
// role of the observer-position provider.
type Game struct {
	world   *clouds.World
	painter *render.CloudPainter
	overlay *ui.Overlay
	layers  []render.Layer

	scale    int
	speed    float64
	paused   bool
	tickOnce bool
	seed     int64

	obsX, obsY float64
	rng        *rand.Rand
}

// New constructs a Game for the provided world.
func New(world *clouds.World, cfg *Config) *Game {
	size := world.Size()
	g := &Game{
		world:   world,
		painter: render.NewCloudPainter(size.W, size.H),
		overlay: ui.NewOverlay(world, cfg.Scale),
		scale:   cfg.Scale,
		speed:   cfg.Speed,
		seed:    cfg.Seed,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}
	g.rebuildLayers()
	return g
}

// Reset reinitializes the world state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.rng = rand.New(rand.NewSource(seed))
	g.obsX = 0
	g.obsY = 0
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if g.paused && !g.tickOnce {
		return nil
	}
	g.tickOnce = false

	g.moveObserver()
	g.spawnPuffs()
	if err := g.world.Tick(g.obsX, g.obsY); err != nil {
		return err
	}
	return nil
}

func (g *Game) moveObserver() {
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.obsX -= g.speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.obsX += g.speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.obsY -= g.speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.obsY += g.speed
	}
}

func (g *Game) spawnPuffs() {
	if g.world.Ticks()%puffEvery != 0 {
		return
	}
	win := g.world.Window()
	spreadX := float64(win.W) * win.CellSize / 3
	spreadY := float64(win.H) * win.CellSize / 3
	for _, id := range g.world.CompoundIDs() {
		cloud, ok := g.world.Cloud(id)
		if !ok {
			continue
		}
		px := win.OffsetX + (g.rng.Float64()*2-1)*spreadX
		py := win.OffsetY + (g.rng.Float64()*2-1)*spreadY
		cloud.AddCloud(120+g.rng.Float32()*120, px, py)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.refreshLayers()
	g.painter.Blit(screen, g.layers, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}

func (g *Game) rebuildLayers() {
	g.layers = g.layers[:0]
	for _, id := range g.world.CompoundIDs() {
		cloud, ok := g.world.Cloud(id)
		if !ok {
			continue
		}
		info, ok := compound.Get(id)
		if !ok {
			continue
		}
		g.layers = append(g.layers, render.Layer{
			Cells: cloud.Density(),
			Ramp:  render.DensityRamp(info.Color),
		})
	}
}

// refreshLayers picks up clouds created or destroyed since the last frame.
func (g *Game) refreshLayers() {
	if len(g.layers) != len(g.world.CompoundIDs()) {
		g.rebuildLayers()
	}
}
