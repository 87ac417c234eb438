// Package server streams cloud density frames to websocket clients and
// accepts observer positions back from them.
package server

import (
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"cloudsim/internal/compound"
	"cloudsim/internal/core"
	"cloudsim/internal/sims/clouds"

	"github.com/gorilla/websocket"
)

// puffEvery controls how often the server deposits fresh compound puffs so
// connected viewers have something to watch without a game attached.
const puffEvery = 40

// Server owns a cloud world and fans out one frame per simulation tick.
type Server struct {
	world *clouds.World
	tps   int

	// mu guards the world; the tick loop and client observer updates both
	// mutate it.
	mu  sync.Mutex
	rng *rand.Rand

	upgrader  websocket.Upgrader
	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex
}

// New constructs a server around an already-configured world.
func New(world *clouds.World, tps int, seed int64) *Server {
	return &Server{
		world: world,
		tps:   tps,
		rng:   rand.New(rand.NewSource(seed)),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Run starts the tick loop and serves the websocket endpoint until the
// listener fails.
func (s *Server) Run(addr string) error {
	go s.loop()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	log.Printf("cloud server listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) loop() {
	fs := core.NewFixedStep(s.tps)
	for {
		if !fs.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}

		s.mu.Lock()
		s.spawnPuffs()
		s.world.Step()
		frame := buildFrame(s.world)
		s.mu.Unlock()

		s.broadcast(frame)
	}
}

// spawnPuffs stands in for the game's compound spawn system.
func (s *Server) spawnPuffs() {
	if s.world.Ticks()%puffEvery != 0 {
		return
	}
	win := s.world.Window()
	spreadX := float64(win.W) * win.CellSize / 3
	spreadY := float64(win.H) * win.CellSize / 3
	for _, id := range s.world.CompoundIDs() {
		cloud, ok := s.world.Cloud(id)
		if !ok {
			continue
		}
		px := win.OffsetX + (s.rng.Float64()*2-1)*spreadX
		py := win.OffsetY + (s.rng.Float64()*2-1)*spreadY
		cloud.AddCloud(120+s.rng.Float32()*120, px, py)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	s.clientsMu.Lock()
	s.clients[conn] = connMu
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()

	log.Printf("client connected: %s", conn.RemoteAddr())

	// Send the current state immediately so clients don't wait a tick.
	s.mu.Lock()
	frame := buildFrame(s.world)
	s.mu.Unlock()
	connMu.Lock()
	err = conn.WriteJSON(frame)
	connMu.Unlock()
	if err != nil {
		return
	}

	for {
		var msg observerMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("client %s read: %v", conn.RemoteAddr(), err)
			return
		}
		if math.IsNaN(msg.X) || math.IsInf(msg.X, 0) || math.IsNaN(msg.Y) || math.IsInf(msg.Y, 0) {
			log.Printf("client %s sent non-finite observer position, ignoring", conn.RemoteAddr())
			continue
		}
		s.mu.Lock()
		err := s.world.SetObserver(msg.X, msg.Y)
		s.mu.Unlock()
		if err != nil {
			log.Printf("observer update rejected: %v", err)
		}
	}
}

func (s *Server) broadcast(frame Frame) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	for conn, connMu := range s.clients {
		connMu.Lock()
		err := conn.WriteJSON(frame)
		connMu.Unlock()
		if err != nil {
			log.Printf("client %s write: %v", conn.RemoteAddr(), err)
		}
	}
}

type observerMessage struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Frame is one tick of simulation state as sent to clients.
type Frame struct {
	Type      string          `json:"type"`
	Tick      uint64          `json:"tick"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	CellSize  float64         `json:"cellSize"`
	OffsetX   float64         `json:"offsetX"`
	OffsetY   float64         `json:"offsetY"`
	Compounds []CompoundFrame `json:"compounds"`
}

// CompoundFrame carries one compound's density field.
type CompoundFrame struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Density []float32 `json:"density"`
}

// buildFrame snapshots the world. Densities are copied because the solver
// rewrites the underlying buffers on the next tick while the frame may still
// be queued for slow clients.
func buildFrame(w *clouds.World) Frame {
	win := w.Window()
	frame := Frame{
		Type:     "frame",
		Tick:     w.Ticks(),
		Width:    win.W,
		Height:   win.H,
		CellSize: win.CellSize,
		OffsetX:  win.OffsetX,
		OffsetY:  win.OffsetY,
	}
	for _, id := range w.CompoundIDs() {
		cloud, ok := w.Cloud(id)
		if !ok {
			continue
		}
		name := ""
		if info, ok := compound.Get(id); ok {
			name = info.Name
		}
		density := make([]float32, len(cloud.Density()))
		copy(density, cloud.Density())
		frame.Compounds = append(frame.Compounds, CompoundFrame{
			ID:      int(id),
			Name:    name,
			Density: density,
		})
	}
	return frame
}
