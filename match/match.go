// Package match runs a best-of-N bout between two fighters: introduction,
// round countdown, the fighting loop, KO freeze and the final result.
package match

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/kiclash/archetypes"
	"github.com/automoto/kiclash/bot"
	"github.com/automoto/kiclash/combat"
	"github.com/automoto/kiclash/components"
	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
	"github.com/yohamta/donburi"
)

var (
	ErrNoDriver     = errors.New("match: participant needs exactly one of input or bot")
	ErrNoArchetype  = errors.New("match: participant has no idle frames")
	ErrMatchStarted = errors.New("match: already past the introduction")
)

// Participant is one side of the match.
type Participant struct {
	Name      string
	Archetype config.Archetype
	Input     IntentSource   // human side
	Bot       bot.Controller // computer side
}

// ResultSink receives the final result exactly once.
type ResultSink interface {
	RecordMatch(Result) error
}

// Options configures a match.
type Options struct {
	Config       config.Config
	Participants [2]Participant
	Sink         ResultSink
	SkipIntro    bool
}

// Controller owns the match world and drives it one tick per Update.
type Controller struct {
	cfg      config.Config
	world    donburi.World
	resolver *combat.Resolver
	sink     ResultSink

	match    *donburi.Entry
	fighters [2]*donburi.Entry
	inputs   [2]IntentSource

	events   []combat.Event
	paused   bool
	reported bool
	result   Result
}

// New validates the participants and spawns the match world.
func New(opts Options) (*Controller, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:      cfg,
		world:    donburi.NewWorld(),
		resolver: combat.NewResolver(cfg),
		sink:     opts.Sink,
	}

	for i, p := range opts.Participants {
		if (p.Input == nil) == (p.Bot == nil) {
			return nil, fmt.Errorf("%w: side %s", ErrNoDriver, combat.Side(i))
		}
		if !p.Archetype.Has(config.AssetIdle) {
			return nil, fmt.Errorf("%w: side %s", ErrNoArchetype, combat.Side(i))
		}
		name := p.Name
		if name == "" {
			name = p.Archetype.Name
		}
		side := combat.Side(i)
		spawn := cfg.Arena.Spawns[side]
		f := fighter.New(name, p.Archetype, cfg)
		f.Reset(spawn.X, spawn.Y, spawn.FacingRight)

		entry := archetypes.Fighter.Spawn(c.world)
		components.Fighter.SetValue(entry, components.FighterData{Side: side, Fighter: f})
		components.Combatant.SetValue(entry, components.CombatantData{
			Name:        name,
			ArchetypeID: p.Archetype.ID,
			Controller:  p.Bot,
		})
		c.fighters[side] = entry
		c.inputs[side] = p.Input
	}

	c.match = archetypes.Match.Spawn(c.world)
	components.Match.SetValue(c.match, components.MatchData{
		State:       config.MatchStateIntroduction,
		Round:       1,
		Timer:       cfg.Match.IntroTicks,
		RoundWinner: components.NoWinner,
		Winner:      components.NoWinner,
	})
	if opts.SkipIntro {
		c.startCountdown(c.data())
	}
	c.syncNet()
	return c, nil
}

func (c *Controller) data() *components.MatchData {
	return components.Match.Get(c.match)
}

// World exposes the match entities for renderers and network sync.
func (c *Controller) World() donburi.World { return c.world }

// MatchEntity returns the singleton match entity.
func (c *Controller) MatchEntity() donburi.Entity { return c.match.Entity() }

// FighterEntity returns the entity of one side.
func (c *Controller) FighterEntity(side combat.Side) donburi.Entity {
	return c.fighters[side].Entity()
}

// Fighter returns one side's fighter.
func (c *Controller) Fighter(side combat.Side) *fighter.Fighter {
	return components.Fighter.Get(c.fighters[side]).Fighter
}

// Combatant returns who drives a side.
func (c *Controller) Combatant(side combat.Side) components.CombatantData {
	return *components.Combatant.Get(c.fighters[side])
}

// Stats returns one side's current round and match tallies.
func (c *Controller) Stats(side combat.Side) components.StatsData {
	return *components.Stats.Get(c.fighters[side])
}

// State returns the match phase.
func (c *Controller) State() config.MatchStateID { return c.data().State }

// Snapshot returns a copy of the match data.
func (c *Controller) Snapshot() components.MatchData { return *c.data() }

// Events returns the hits applied on the last Fighting tick.
func (c *Controller) Events() []combat.Event { return c.events }

// Finished reports whether the match has ended.
func (c *Controller) Finished() bool { return c.State() == config.MatchStateFinished }

// Result returns the final result once Finished.
func (c *Controller) Result() (Result, bool) { return c.result, c.reported }

// Pause suspends ticking without touching any state.
func (c *Controller) Pause() { c.paused = true }

// Resume continues from exactly where Pause left off.
func (c *Controller) Resume() { c.paused = false }

func (c *Controller) Paused() bool { return c.paused }

// Close stops every bot controller.
func (c *Controller) Close() {
	for _, e := range c.fighters {
		if ctl := components.Combatant.Get(e).Controller; ctl != nil {
			ctl.Close()
		}
	}
}

// Skip jumps from the introduction straight to the first countdown.
func (c *Controller) Skip() error {
	md := c.data()
	if md.State != config.MatchStateIntroduction {
		return ErrMatchStarted
	}
	c.startCountdown(md)
	c.syncNet()
	return nil
}

// Update advances the match by one tick.
func (c *Controller) Update() {
	if c.paused {
		return
	}
	md := c.data()
	if md.State == config.MatchStateFinished {
		return
	}
	md.Ticks++
	c.events = nil

	switch md.State {
	case config.MatchStateIntroduction:
		md.Timer--
		if md.Timer <= 0 {
			c.startCountdown(md)
		}

	case config.MatchStateCountdown:
		md.Timer--
		if md.Timer <= 0 {
			md.State = config.MatchStateFighting
			md.FightTimer = c.cfg.Match.FightTicks
			log.Printf("[match] round %d: fight", md.Round)
		}

	case config.MatchStateFighting:
		c.fight(md)

	case config.MatchStateRoundOver:
		c.Fighter(combat.SideP1).Update()
		c.Fighter(combat.SideP2).Update()
		md.Timer--
		if md.Timer <= 0 {
			md.State = config.MatchStateRoundEnd
		}

	case config.MatchStateRoundEnd:
		c.endRound(md)
	}
	c.syncNet()
}

func (c *Controller) startCountdown(md *components.MatchData) {
	md.State = config.MatchStateCountdown
	md.Timer = c.cfg.Match.CountdownTicks()
}

// fight runs one Fighting tick: facing, intents, bot decisions, fighter
// updates, hit resolution, then termination checks.
func (c *Controller) fight(md *components.MatchData) {
	p1, p2 := c.Fighter(combat.SideP1), c.Fighter(combat.SideP2)
	x1, _ := p1.Position()
	x2, _ := p2.Position()
	p1.SetFacing(x1 < x2)
	p2.SetFacing(x1 >= x2)

	fighters := [2]*fighter.Fighter{p1, p2}
	for side, f := range fighters {
		if src := c.inputs[side]; src != nil {
			applyIntent(f, src.Poll(), c.cfg.Fighter.MoveSpeed)
		}
	}
	for side, f := range fighters {
		ctl := components.Combatant.Get(c.fighters[side]).Controller
		if ctl != nil && !f.Locked() {
			ctl.Decide(f, fighters[1-side])
		}
	}

	p1.Update()
	p2.Update()

	delta := c.resolver.Resolve(p1, p2)
	for side := combat.SideP1; side <= combat.SideP2; side++ {
		st := components.Stats.Get(c.fighters[side])
		st.Round.Add(delta.Stats[side])
		st.Total.Add(delta.Stats[side])
	}
	c.events = delta.Events

	md.FightTicks++
	md.FightTimer--

	switch {
	case p1.Down() || p2.Down():
		winner := components.NoWinner
		switch {
		case p1.Down() && !p2.Down():
			winner = combat.SideP2
		case p2.Down() && !p1.Down():
			winner = combat.SideP1
		}
		c.roundOver(md, winner, false)
	case md.FightTimer <= 0:
		c.roundOver(md, healthLeader(p1, p2), true)
	}
}

// healthLeader returns the side with strictly more health.
func healthLeader(p1, p2 *fighter.Fighter) combat.Side {
	switch {
	case p1.Health() > p2.Health():
		return combat.SideP1
	case p2.Health() > p1.Health():
		return combat.SideP2
	}
	return components.NoWinner
}

func (c *Controller) roundOver(md *components.MatchData, winner combat.Side, timeUp bool) {
	md.RoundWinner = winner
	md.TimeUp = timeUp
	if winner != components.NoWinner {
		md.Wins[winner]++
	}
	md.State = config.MatchStateRoundOver
	md.Timer = c.cfg.Match.KOFreezeTicks

	how := "K.O."
	if timeUp {
		how = "time"
	}
	if winner == components.NoWinner {
		log.Printf("[match] round %d drawn (%s), replaying", md.Round, how)
		return
	}
	log.Printf("[match] round %d to %s by %s (%d-%d)", md.Round, winner, how, md.Wins[0], md.Wins[1])
}

// endRound either finishes the match or resets both fighters for the next
// countdown. A drawn round awards nothing and is replayed.
func (c *Controller) endRound(md *components.MatchData) {
	for side := combat.SideP1; side <= combat.SideP2; side++ {
		if md.Wins[side] >= c.cfg.Match.RoundsToWin {
			md.Winner = side
			md.State = config.MatchStateFinished
			c.finish(md)
			return
		}
	}
	c.resetFighters()
	md.Round++
	md.RoundWinner = components.NoWinner
	md.TimeUp = false
	c.startCountdown(md)
}

// resetFighters restores vitals and spawn positions and clears hazards and
// the round tally. Calling it twice is the same as calling it once.
func (c *Controller) resetFighters() {
	for side, e := range c.fighters {
		spawn := c.cfg.Arena.Spawns[side]
		components.Fighter.Get(e).Fighter.Reset(spawn.X, spawn.Y, spawn.FacingRight)
		components.Stats.Get(e).Round = combat.Stats{}
	}
}

func (c *Controller) finish(md *components.MatchData) {
	c.result = c.buildResult(md)
	c.reported = true
	log.Printf("[match] %s wins %d-%d in %.0fs", c.result.Names[md.Winner], md.Wins[0], md.Wins[1], c.result.Seconds)

	if c.sink == nil {
		return
	}
	if err := c.sink.RecordMatch(c.result); err != nil {
		log.Printf("[match] failed to record result: %v", err)
	}
}

func (c *Controller) buildResult(md *components.MatchData) Result {
	r := Result{
		Winner:    md.Winner,
		RoundsWon: md.Wins,
		Rounds:    md.Round,
		Ticks:     md.FightTicks,
		Seconds:   c.cfg.Seconds(md.FightTicks),
	}
	for side, e := range c.fighters {
		cb := components.Combatant.Get(e)
		r.Names[side] = cb.Name
		r.Archetypes[side] = cb.ArchetypeID
		r.Human[side] = cb.Human()
		r.Stats[side] = components.Stats.Get(e).Total
	}
	return r
}
