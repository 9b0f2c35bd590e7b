package bot_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/automoto/kiclash/bot"
	botmock "github.com/automoto/kiclash/bot/mock"
	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fighter"
)

func setup(t *testing.T) (config.Config, *fighter.Fighter, *fighter.Fighter) {
	t.Helper()
	cfg := config.Default()
	goku, _ := cfg.Archetype("goku")
	gohan, _ := cfg.Archetype("gohan")
	self := fighter.New("CPU", goku, cfg)
	opp := fighter.New("P1", gohan, cfg)
	self.Reset(300, 370, true)
	opp.Reset(600, 370, false)
	return cfg, self, opp
}

func newPolicy(t *testing.T, cfg config.Config, client bot.DecisionClient, opts bot.RemoteOptions) *bot.RemotePolicy {
	t.Helper()
	fallback := bot.NewRuleBased(cfg, cfg.Bots[config.DifficultyNormal], rand.New(rand.NewSource(1)))
	rp := bot.NewRemotePolicy(client, fallback, opts)
	t.Cleanup(rp.Close)
	return rp
}

const (
	waitFor = time.Second
	tickFor = 5 * time.Millisecond
)

func TestRemotePolicy_UsesCachedDecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := botmock.NewMockDecisionClient(ctrl)
	cfg, self, opp := setup(t)

	client.EXPECT().
		Decide(gomock.Any(), gomock.Any()).
		Return(bot.Decision{Action: bot.ActionRetreat, Reason: "spacing"}, nil).
		Times(1)

	rp := newPolicy(t, cfg, client, bot.RemoteOptions{Difficulty: config.DifficultyNormal})

	rp.Decide(self, opp)
	assert.Equal(t, 1, rp.Fallbacks, "no cached decision yet")

	require.Eventually(t, func() bool {
		rp.Decide(self, opp)
		_, ok := rp.LastDecision()
		return ok
	}, waitFor, tickFor)

	d, _ := rp.LastDecision()
	assert.Equal(t, "spacing", d.Reason)

	before, _ := self.Position()
	rp.Decide(self, opp)
	after, _ := self.Position()
	assert.Equal(t, before-cfg.Remote.RetreatSpeed, after)
	assert.Equal(t, 1, rp.Polls, "no re-poll inside the interval")
}

func TestRemotePolicy_PollsOnInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := botmock.NewMockDecisionClient(ctrl)
	cfg, self, opp := setup(t)

	client.EXPECT().
		Decide(gomock.Any(), gomock.Any()).
		Return(bot.Decision{Action: bot.ActionWait}, nil).
		Times(2)

	rp := newPolicy(t, cfg, client, bot.RemoteOptions{Difficulty: config.DifficultyNormal, PollTicks: 10})

	require.Eventually(t, func() bool {
		rp.Decide(self, opp)
		return !rp.InFlight() && rp.Polls == 1
	}, waitFor, tickFor)

	for i := 0; i < 9; i++ {
		self.Update()
	}
	rp.Decide(self, opp)
	assert.Equal(t, 1, rp.Polls)

	self.Update()
	rp.Decide(self, opp)
	assert.Equal(t, 2, rp.Polls)

	require.Eventually(t, func() bool {
		rp.Decide(self, opp)
		return !rp.InFlight()
	}, waitFor, tickFor)
}

func TestRemotePolicy_FailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := botmock.NewMockDecisionClient(ctrl)
	cfg, self, opp := setup(t)

	client.EXPECT().
		Decide(gomock.Any(), gomock.Any()).
		Return(bot.Decision{}, errors.New("connection refused")).
		Times(1)

	rp := newPolicy(t, cfg, client, bot.RemoteOptions{Difficulty: config.DifficultyNormal})

	require.Eventually(t, func() bool {
		rp.Decide(self, opp)
		return rp.Failures == 1
	}, waitFor, tickFor)

	_, ok := rp.LastDecision()
	assert.False(t, ok)
	assert.GreaterOrEqual(t, rp.Fallbacks, 2)
}

func TestRemotePolicy_FailureKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := botmock.NewMockDecisionClient(ctrl)
	cfg, self, opp := setup(t)

	gomock.InOrder(
		client.EXPECT().Decide(gomock.Any(), gomock.Any()).Return(bot.Decision{Action: bot.ActionBlock}, nil),
		client.EXPECT().Decide(gomock.Any(), gomock.Any()).Return(bot.Decision{}, bot.ErrDecisionStatus),
	)

	rp := newPolicy(t, cfg, client, bot.RemoteOptions{Difficulty: config.DifficultyNormal, PollTicks: 1})

	require.Eventually(t, func() bool {
		rp.Decide(self, opp)
		_, ok := rp.LastDecision()
		return ok
	}, waitFor, tickFor)
	assert.True(t, self.Blocking())

	self.Update()
	require.Eventually(t, func() bool {
		rp.Decide(self, opp)
		return rp.Failures == 1
	}, waitFor, tickFor)

	d, ok := rp.LastDecision()
	require.True(t, ok)
	assert.Equal(t, bot.ActionBlock, d.Action)
}

func TestRemotePolicy_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := botmock.NewMockDecisionClient(ctrl)
	cfg, self, opp := setup(t)

	client.EXPECT().
		Decide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ bot.Snapshot) (bot.Decision, error) {
			<-ctx.Done()
			return bot.Decision{}, ctx.Err()
		}).
		Times(1)

	rp := newPolicy(t, cfg, client, bot.RemoteOptions{
		Difficulty: config.DifficultyNormal,
		Timeout:    20 * time.Millisecond,
	})

	start := time.Now()
	rp.Decide(self, opp)
	assert.Less(t, time.Since(start), 20*time.Millisecond, "never waits on the request")

	require.Eventually(t, func() bool {
		rp.Decide(self, opp)
		return rp.Failures == 1
	}, waitFor, tickFor)
}

func TestRemotePolicy_LateAnswerIsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := botmock.NewMockDecisionClient(ctrl)
	cfg, self, opp := setup(t)
	self.Reset(100, 370, true)
	opp.Reset(700, 370, false)

	client.EXPECT().
		Decide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, bot.Snapshot) (bot.Decision, error) {
			time.Sleep(60 * time.Millisecond)
			return bot.Decision{Action: bot.ActionBlock}, nil
		}).
		Times(1)

	rp := newPolicy(t, cfg, client, bot.RemoteOptions{
		Difficulty: config.DifficultyNormal,
		Timeout:    10 * time.Millisecond,
	})

	require.Eventually(t, func() bool {
		rp.Decide(self, opp)
		return rp.Failures == 1
	}, waitFor, tickFor)

	_, ok := rp.LastDecision()
	assert.False(t, ok, "answer past the deadline is not cached")
	assert.False(t, self.Blocking())
}

func TestRemotePolicy_NoRetryOnFailedTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := botmock.NewMockDecisionClient(ctrl)
	cfg, self, opp := setup(t)
	self.Reset(100, 370, true)
	opp.Reset(700, 370, false)

	gomock.InOrder(
		client.EXPECT().Decide(gomock.Any(), gomock.Any()).Return(bot.Decision{}, errors.New("connection refused")),
		client.EXPECT().Decide(gomock.Any(), gomock.Any()).Return(bot.Decision{Action: bot.ActionWait}, nil),
	)

	rp := newPolicy(t, cfg, client, bot.RemoteOptions{Difficulty: config.DifficultyNormal, PollTicks: 1})

	rp.Decide(self, opp)
	self.Update()

	require.Eventually(t, func() bool {
		rp.Decide(self, opp)
		return rp.Failures == 1
	}, waitFor, tickFor)
	assert.Equal(t, 1, rp.Polls, "interval elapsed but the failed tick does not poll")
	assert.False(t, rp.InFlight())

	rp.Decide(self, opp)
	assert.Equal(t, 2, rp.Polls)

	require.Eventually(t, func() bool {
		rp.Decide(self, opp)
		return !rp.InFlight()
	}, waitFor, tickFor)
}

func TestRemotePolicy_CloseCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := botmock.NewMockDecisionClient(ctrl)
	cfg, self, opp := setup(t)

	done := make(chan error, 1)
	client.EXPECT().
		Decide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ bot.Snapshot) (bot.Decision, error) {
			<-ctx.Done()
			done <- ctx.Err()
			return bot.Decision{}, ctx.Err()
		})

	rp := newPolicy(t, cfg, client, bot.RemoteOptions{Difficulty: config.DifficultyNormal})
	rp.Decide(self, opp)
	rp.Close()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(waitFor):
		t.Fatal("request was not cancelled")
	}
}

func TestRemotePolicy_LockedDoesNotPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := botmock.NewMockDecisionClient(ctrl)
	cfg, self, opp := setup(t)

	rp := newPolicy(t, cfg, client, bot.RemoteOptions{Difficulty: config.DifficultyNormal})
	require.NoError(t, self.Strike(fighter.StrikeLight))
	rp.Decide(self, opp)

	assert.Zero(t, rp.Polls)
	assert.Zero(t, rp.Fallbacks)
}

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.Remote.Endpoint = ""
	cfg.Remote.APIKey = ""
	require.ErrorIs(t, bot.RemoteAvailable(cfg), bot.ErrNoEndpoint)

	c := bot.New(cfg, config.DifficultyHard, rand.New(rand.NewSource(1)))
	rb, ok := c.(*bot.RuleBased)
	require.True(t, ok)
	assert.Equal(t, config.DifficultyHard, rb.Profile().Difficulty)

	cfg.Remote.Endpoint = "http://127.0.0.1:1/v1/decide"
	cfg.Remote.APIKey = "secret"
	c = bot.New(cfg, config.DifficultyEasy, rand.New(rand.NewSource(1)))
	defer c.Close()
	_, ok = c.(*bot.RemotePolicy)
	assert.True(t, ok)
}
