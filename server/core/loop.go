package core

import (
	"log"
	"sync"
	"time"
)

// GameLoop calls tick at a fixed rate on a single goroutine until stopped.
type GameLoop struct {
	tick     func()
	tickRate int

	mu      sync.Mutex
	running bool
	paused  bool
	ticks   int

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewGameLoop(tickRate int, tick func()) *GameLoop {
	return &GameLoop{
		tick:     tick,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (g *GameLoop) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()
	defer close(g.done)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[server] game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.mu.Lock()
			g.running = false
			g.mu.Unlock()
			log.Println("[server] game loop stopped")
			return
		case <-ticker.C:
			if g.Paused() {
				continue
			}
			g.tick()
			g.mu.Lock()
			g.ticks++
			g.mu.Unlock()
		}
	}
}

// Stop ends Run. Calling it more than once is safe.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Done is closed once Run has returned.
func (g *GameLoop) Done() <-chan struct{} { return g.done }

// Pause skips ticks until Resume.
func (g *GameLoop) Pause() {
	g.mu.Lock()
	g.paused = true
	g.mu.Unlock()
}

func (g *GameLoop) Resume() {
	g.mu.Lock()
	g.paused = false
	g.mu.Unlock()
}

func (g *GameLoop) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

func (g *GameLoop) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// Ticks counts the ticks run so far.
func (g *GameLoop) Ticks() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ticks
}
