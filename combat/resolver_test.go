package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
)

type ResolverTestSuite struct {
	suite.Suite
	cfg      config.Config
	resolver *Resolver
	p1       *fighter.Fighter
	p2       *fighter.Fighter
}

func (s *ResolverTestSuite) SetupTest() {
	s.cfg = config.Default()
	s.resolver = NewResolver(s.cfg)

	goku, _ := s.cfg.Archetype("goku")
	vegeta, _ := s.cfg.Archetype("vegeta")
	s.p1 = fighter.New("P1", goku, s.cfg)
	s.p2 = fighter.New("P2", vegeta, s.cfg)
	s.p1.Reset(100, 370, true)
	s.p2.Reset(220, 370, false)
}

// step runs one tick in the same order the match does.
func (s *ResolverTestSuite) step(total *[2]Stats) Delta {
	s.p1.Update()
	s.p2.Update()
	d := s.resolver.Resolve(s.p1, s.p2)
	if total != nil {
		total[SideP1].Add(d.Stats[SideP1])
		total[SideP2].Add(d.Stats[SideP2])
	}
	return d
}

func (s *ResolverTestSuite) TestLightStrikeHitsOnce() {
	s.Require().NoError(s.p1.Strike(fighter.StrikeLight))

	d := s.resolver.Resolve(s.p1, s.p2)
	s.Equal(95.0, s.p2.Health())
	s.Equal(1, d.Stats[SideP1].Strikes)
	s.Equal(5.0, d.Stats[SideP1].DamageDealt)
	s.Equal(5.0, d.Stats[SideP2].DamageTaken)
	s.Require().Len(d.Events, 1)
	s.Equal(SourceMelee, d.Events[0].Source)

	d = s.resolver.Resolve(s.p1, s.p2)
	s.Empty(d.Events, "activation already consumed")

	var total [2]Stats
	for i := 0; i < 10; i++ {
		s.step(&total)
	}
	s.Zero(total[SideP1].Strikes)
	s.Equal(95.0, s.p2.Health())
	s.Equal(1, s.p2.ComboHits())
}

func (s *ResolverTestSuite) TestHeavyStrikeHitsOncePerActivation() {
	s.Require().NoError(s.p1.Strike(fighter.StrikeHeavy))

	var total [2]Stats
	total[SideP1].Add(s.resolver.Resolve(s.p1, s.p2).Stats[SideP1])
	for s.p1.State() == config.StateStriking {
		s.step(&total)
	}
	s.Equal(1, total[SideP1].Strikes)
	s.Equal(92.0, s.p2.Health())
}

func (s *ResolverTestSuite) TestBlockReducesDamage() {
	s.Require().NoError(s.p2.Block())
	s.Require().NoError(s.p1.Strike(fighter.StrikeLight))

	d := s.resolver.Resolve(s.p1, s.p2)
	s.InDelta(1.5, d.Stats[SideP1].DamageDealt, 1e-9)
	s.InDelta(98.5, s.p2.Health(), 1e-9)
}

func (s *ResolverTestSuite) TestComboStuns() {
	for i := 0; i < 4; i++ {
		s.Require().NoError(s.p1.Strike(fighter.StrikeLight))
		s.resolver.Resolve(s.p1, s.p2)
		for s.p1.State() == config.StateStriking {
			s.step(nil)
		}
	}
	s.Equal(config.StateStunned, s.p2.State())
	s.Equal(80.0, s.p2.Health())
}

func (s *ResolverTestSuite) TestSimultaneousStrikes() {
	s.Require().NoError(s.p1.Strike(fighter.StrikeLight))
	s.Require().NoError(s.p2.Strike(fighter.StrikeLight))

	d := s.resolver.Resolve(s.p1, s.p2)
	s.Equal(95.0, s.p1.Health())
	s.Equal(95.0, s.p2.Health())
	s.Equal(1, d.Stats[SideP1].Strikes)
	s.Equal(1, d.Stats[SideP2].Strikes)
}

func (s *ResolverTestSuite) TestKOStrikeDoesNotCancelCounter() {
	s.p2.ReceiveDamage(97)
	s.Require().NoError(s.p1.Strike(fighter.StrikeLight))
	s.Require().NoError(s.p2.Strike(fighter.StrikeLight))

	s.resolver.Resolve(s.p1, s.p2)
	s.True(s.p2.Down())
	s.Equal(95.0, s.p1.Health(), "both strikes land in the same tick")
}

func (s *ResolverTestSuite) TestOutOfRangeMisses() {
	s.p2.Reset(600, 370, false)
	s.Require().NoError(s.p1.Strike(fighter.StrikeLight))

	d := s.resolver.Resolve(s.p1, s.p2)
	s.Empty(d.Events)
	s.Equal(100.0, s.p2.Health())
}

func (s *ResolverTestSuite) TestProjectileHitsAndDies() {
	s.p2.Reset(500, 370, false)
	s.Require().NoError(s.p1.ThrowProjectile())

	var total [2]Stats
	for i := 0; i < 60; i++ {
		s.step(&total)
	}
	s.Equal(1, total[SideP1].Strikes)
	s.Equal(12.0, total[SideP1].DamageDealt)
	s.Equal(88.0, s.p2.Health())
	s.Empty(s.p1.Projectiles(), "killed on impact")
}

func (s *ResolverTestSuite) TestBeamTicksAndCountsOnce() {
	s.p2.Reset(500, 370, false)
	s.Require().NoError(s.p1.ChannelBeam())

	var total [2]Stats
	beamTicks := 0
	for s.p1.State() == config.StateChanneling {
		d := s.step(&total)
		for _, e := range d.Events {
			s.Equal(SourceBeam, e.Source)
			s.InDelta(1.5, e.Damage, 1e-9)
			beamTicks++
		}
	}
	s.Greater(beamTicks, 1, "damage every overlapping tick")
	s.Zero(total[SideP1].Strikes, "beams do not count as strikes")
	s.InDelta(1.5, total[SideP1].DamageDealt, 1e-9, "damage booked once per beam")
	s.InDelta(1.5, total[SideP2].DamageTaken, 1e-9)
	s.InDelta(100-1.5*float64(beamTicks), s.p2.Health(), 1e-9)
}

func (s *ResolverTestSuite) TestDownedFighterIsNotHit() {
	s.p2.ReceiveDamage(100)
	s.Require().NoError(s.p1.Strike(fighter.StrikeLight))

	d := s.resolver.Resolve(s.p1, s.p2)
	s.Empty(d.Events)
}

func (s *ResolverTestSuite) TestResetForgetsActivations() {
	s.Require().NoError(s.p1.Strike(fighter.StrikeLight))
	s.resolver.Resolve(s.p1, s.p2)
	s.resolver.Reset()

	d := s.resolver.Resolve(s.p1, s.p2)
	s.Len(d.Events, 1)
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func TestSide(t *testing.T) {
	assert.Equal(t, SideP2, SideP1.Opponent())
	assert.Equal(t, SideP1, SideP2.Opponent())
	assert.Equal(t, "p2", SideP2.String())
}

func TestStats_Add(t *testing.T) {
	var s Stats
	s.Add(Stats{Strikes: 2, DamageDealt: 10, DamageTaken: 3})
	s.Add(Stats{Strikes: 1, DamageDealt: 5})
	require.Equal(t, 3, s.Strikes)
	assert.Equal(t, 15.0, s.DamageDealt)
	assert.Equal(t, 3.0, s.DamageTaken)
}
