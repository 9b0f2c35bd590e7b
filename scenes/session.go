package scenes

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/kiclash/bot"
	"github.com/automoto/kiclash/components"
	cfg "github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/match"
	"github.com/automoto/kiclash/records"
	"github.com/automoto/kiclash/shared/leveldata"
	"github.com/automoto/kiclash/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is what survives scene changes: tuning, the arenas on disk, the
// leaderboard and the current setup.
type Session struct {
	Config   cfg.Config
	Arenas   map[string]*leveldata.Arena
	Recorder *records.Recorder
	Setup    components.SetupData
	Name     string

	tower *match.Tower
	rng   *rand.Rand
}

// NewSession prepares a setup over the configured roster.
func NewSession(c cfg.Config, arenas map[string]*leveldata.Arena, names []string, rec *records.Recorder) *Session {
	s := &Session{
		Config:   c,
		Arenas:   arenas,
		Recorder: rec,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	systems.InitSetup(&s.Setup, c.Roster, names)
	return s
}

// FightConfig is the tuning with the selected arena applied.
func (s *Session) FightConfig() cfg.Config {
	c := s.Config
	if a, ok := s.Arenas[systems.ArenaName(&s.Setup)]; ok {
		a.Apply(&c)
	}
	return c
}

// Mode maps the selected game mode to its leaderboard.
func (s *Session) Mode() records.Mode {
	if s.Setup.Mode == components.GameModeTower {
		return records.ModeTower
	}
	return records.ModeVersus
}

// Begin resets the tower for a new climb when one was picked.
func (s *Session) Begin() error {
	s.tower = nil
	if s.Setup.Mode != components.GameModeTower {
		return nil
	}
	t, err := match.NewTower(s.Config, s.Setup.Roster[s.Setup.Player].ID, s.Name)
	if err != nil {
		return err
	}
	s.tower = t
	return nil
}

// Tower returns the running climb, if any.
func (s *Session) Tower() *match.Tower { return s.tower }

// NextMatch builds the options for the next fight with the human on P1.
func (s *Session) NextMatch(input match.IntentSource) (match.Options, error) {
	c := s.FightConfig()
	opponent := match.Participant{Bot: bot.New(c, s.Setup.Difficulty, rand.New(rand.NewSource(s.rng.Int63())))}

	if s.tower != nil {
		return s.tower.NextMatch(c, input, opponent)
	}
	opponent.Archetype = s.Setup.Roster[s.Setup.Opponent]
	return match.Options{
		Config: c,
		Participants: [2]match.Participant{
			{Name: s.Name, Archetype: s.Setup.Roster[s.Setup.Player], Input: input},
			opponent,
		},
		Sink: s.Recorder,
	}, nil
}

// FinishTower stores the climb once it is over.
func (s *Session) FinishTower() {
	if s.tower == nil || !s.tower.Done() {
		return
	}
	if err := s.Recorder.RecordTower(s.tower.Result()); err != nil {
		log.Printf("[records] could not save tower climb: %v", err)
	}
}

// Leaderboard fetches the top rows of a mode, logging failures.
func (s *Session) Leaderboard(mode records.Mode) []records.Record {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	rows, err := s.Recorder.Top(ctx, mode, s.Config.Records.TopN)
	if err != nil {
		log.Printf("[records] could not read %s leaderboard: %v", mode, err)
		return nil
	}
	return rows
}
