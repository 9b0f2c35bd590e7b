package bot

import (
	"context"
	"log"
	"time"

	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
)

// RemoteOptions tunes a RemotePolicy.
type RemoteOptions struct {
	Difficulty    config.Difficulty
	PollTicks     int
	Timeout       time.Duration
	ApproachSpeed float64
	RetreatSpeed  float64
}

type pollResult struct {
	decision Decision
	err      error
}

// RemotePolicy polls a DecisionClient in the background and replays the
// cached action between polls. Ticks with no usable decision go to the
// embedded RuleBased controller.
type RemotePolicy struct {
	client   DecisionClient
	fallback *RuleBased
	opts     RemoteOptions

	ctx    context.Context
	cancel context.CancelFunc

	results  chan pollResult
	inFlight bool
	polled   bool
	lastPoll int64

	cached   Decision
	hasCache bool

	Polls     int
	Failures  int
	Fallbacks int
}

// NewRemotePolicy wires a client to its fallback. Zero options take the
// defaults from config.
func NewRemotePolicy(client DecisionClient, fallback *RuleBased, opts RemoteOptions) *RemotePolicy {
	def := config.Default()
	if opts.PollTicks <= 0 {
		opts.PollTicks = def.Bots[opts.Difficulty].PollTicks
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Remote.Timeout()
	}
	if opts.ApproachSpeed <= 0 {
		opts.ApproachSpeed = def.Remote.ApproachSpeed
	}
	if opts.RetreatSpeed <= 0 {
		opts.RetreatSpeed = def.Remote.RetreatSpeed
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &RemotePolicy{
		client:   client,
		fallback: fallback,
		opts:     opts,
		ctx:      ctx,
		cancel:   cancel,
		results:  make(chan pollResult, 1),
	}
}

// LastDecision returns the cached decision, if any.
func (rp *RemotePolicy) LastDecision() (Decision, bool) {
	return rp.cached, rp.hasCache
}

// InFlight reports whether a request is outstanding.
func (rp *RemotePolicy) InFlight() bool { return rp.inFlight }

// Close abandons any outstanding request.
func (rp *RemotePolicy) Close() {
	rp.cancel()
}

// Decide never blocks on the network.
func (rp *RemotePolicy) Decide(self, opp *fighter.Fighter) {
	if self.Locked() {
		return
	}
	now := self.Clock()

	failed := rp.drain()

	// A failed tick does not start another request.
	if !failed && !rp.inFlight && (!rp.polled || now-rp.lastPoll >= int64(rp.opts.PollTicks)) {
		rp.poll(NewSnapshot(self, opp, rp.opts.Difficulty), now)
	}

	if failed || !rp.hasCache {
		rp.Fallbacks++
		rp.fallback.Decide(self, opp)
		return
	}
	rp.apply(self, opp, rp.cached.Action)
}

// drain collects a finished request without waiting and reports whether it
// failed.
func (rp *RemotePolicy) drain() bool {
	select {
	case res := <-rp.results:
		rp.inFlight = false
		if res.err != nil {
			rp.Failures++
			log.Printf("[remote] decision failed, using rule-based: %v", res.err)
			return true
		}
		rp.cached = res.decision
		rp.hasCache = true
		return false
	default:
		return false
	}
}

func (rp *RemotePolicy) poll(snap Snapshot, now int64) {
	rp.inFlight = true
	rp.polled = true
	rp.lastPoll = now
	rp.Polls++

	go func() {
		ctx, cancel := context.WithTimeout(rp.ctx, rp.opts.Timeout)
		defer cancel()
		d, err := rp.client.Decide(ctx, snap)
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
		}
		rp.results <- pollResult{decision: d, err: err}
	}()
}

func (rp *RemotePolicy) apply(self, opp *fighter.Fighter, action Action) {
	if action != ActionBlock {
		self.Unblock()
	}
	switch action {
	case ActionApproach:
		_, dy, ydir := gaps(self, opp)
		var vy float64
		if dy > rp.fallback.ai.VerticalSlack {
			vy = ydir * rp.opts.ApproachSpeed
		}
		_ = self.Move(towards(self, opp)*rp.opts.ApproachSpeed, vy)
	case ActionRetreat:
		_ = self.Move(-towards(self, opp)*rp.opts.RetreatSpeed, 0)
	case ActionLight:
		_ = self.Strike(fighter.StrikeLight)
	case ActionHeavy:
		_ = self.Strike(fighter.StrikeHeavy)
	case ActionBlock:
		_ = self.Block()
	case ActionProjectile:
		_ = self.ThrowProjectile()
	case ActionBeam:
		_ = self.ChannelBeam()
	case ActionUltimate:
		_ = self.UseUltimate()
	default:
		_ = self.Move(0, 0)
	}
}
