// Package core hosts one match on a fixed-tick loop and syncs its fighter
// and match entities to websocket spectators.
package core

import (
	"log"
	"sync"

	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"

	"github.com/automoto/kiclash/combat"
	"github.com/automoto/kiclash/match"
	"github.com/automoto/kiclash/shared/messages"
	"github.com/automoto/kiclash/shared/netcomponents"
)

// Options configures a Server.
type Options struct {
	Name     string
	TickRate int
	Match    match.Options
	// Sync enables necs world sync and the router callbacks. Components
	// must already be registered with protocol.RegisterComponents.
	Sync bool
}

// Server runs a match and tracks who is watching it.
type Server struct {
	name      string
	ctl       *match.Controller
	loop      *GameLoop
	transport *transports.WsServerTransport
	sync      bool

	mu         sync.RWMutex
	spectators map[string]string // client id -> name

	finished     chan struct{}
	finishedOnce sync.Once
}

// NewServer builds the match and, when syncing, marks its entities for
// network sync.
func NewServer(opts Options) (*Server, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = opts.Match.Config.Timing.TickRate
	}
	ctl, err := match.New(opts.Match)
	if err != nil {
		return nil, err
	}

	s := &Server{
		name:       opts.Name,
		ctl:        ctl,
		sync:       opts.Sync,
		spectators: make(map[string]string),
		finished:   make(chan struct{}),
	}
	s.loop = NewGameLoop(opts.TickRate, s.tick)

	if s.sync {
		if err := s.setupSync(); err != nil {
			return nil, err
		}
		s.setupRouterCallbacks()
	}
	return s, nil
}

func (s *Server) setupSync() error {
	world := s.ctl.World()
	srvsync.UseEsync(world)

	for _, side := range []combat.Side{combat.SideP1, combat.SideP2} {
		entity := s.ctl.FighterEntity(side)
		if err := srvsync.NetworkSync(world, &entity,
			srvsync.WithInterp(netcomponents.NetPosition),
			netcomponents.NetFighter,
		); err != nil {
			return err
		}
	}
	entity := s.ctl.MatchEntity()
	return srvsync.NetworkSync(world, &entity, netcomponents.NetMatch)
}

// Start runs the game loop and serves websocket spectators on port. It
// blocks while the transport is up.
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	log.Printf("[server] %q listening on port %d", s.name, port)
	return s.transport.Start()
}

// Stop ends the loop and releases the bots.
func (s *Server) Stop() {
	s.loop.Stop()
	if s.loop.Running() {
		<-s.loop.Done()
	}
	s.ctl.Close()
}

// Loop exposes the game loop for pause and resume.
func (s *Server) Loop() *GameLoop { return s.loop }

// Controller exposes the match, for reads after the loop has stopped.
func (s *Server) Controller() *match.Controller { return s.ctl }

// Finished is closed on the tick the match finishes.
func (s *Server) Finished() <-chan struct{} { return s.finished }

func (s *Server) tick() {
	s.ctl.Update()

	entry := s.ctl.World().Entry(s.ctl.MatchEntity())
	netcomponents.NetMatch.Get(entry).Spectators = s.SpectatorCount()

	if s.sync {
		if err := srvsync.DoSync(); err != nil {
			log.Printf("[server] sync error: %v", err)
		}
	}

	if s.ctl.Finished() {
		s.finishedOnce.Do(func() { close(s.finished) })
	}
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.addSpectator(client.Id(), "")
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[server] spectator %s disconnected with error: %v", client.Id(), err)
		}
		s.removeSpectator(client.Id())
	})

	router.On(func(client *router.NetworkClient, hello messages.SpectatorHello) {
		s.addSpectator(client.Id(), hello.Name)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

// addSpectator records a connection; a later hello fills in the name.
func (s *Server) addSpectator(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.spectators[id]; ok && name == "" {
		name = prev
	}
	if name == "" {
		name = "anonymous"
	}
	if _, ok := s.spectators[id]; !ok {
		log.Printf("[server] spectator %s connected", id)
	}
	s.spectators[id] = name
}

func (s *Server) removeSpectator(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name, ok := s.spectators[id]; ok {
		delete(s.spectators, id)
		log.Printf("[server] spectator %s (%s) left", id, name)
	}
}

// SpectatorCount returns the number of connected spectators
func (s *Server) SpectatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spectators)
}

// Spectators returns the names of everyone watching.
func (s *Server) Spectators() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.spectators))
	for _, name := range s.spectators {
		out = append(out, name)
	}
	return out
}
