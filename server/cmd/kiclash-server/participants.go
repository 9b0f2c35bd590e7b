package main

import (
	"fmt"
	"math/rand"

	"github.com/automoto/kiclash/bot"
	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/match"
)

// botSide names one computer-controlled side on the command line.
type botSide struct {
	Archetype  string
	Difficulty string
	Name       string
}

// participant resolves a spec into a bot-driven match participant. The bot
// is remote-backed when the decision service is configured.
func participant(cfg config.Config, spec botSide, rng *rand.Rand) (match.Participant, error) {
	arch, ok := cfg.Archetype(spec.Archetype)
	if !ok {
		return match.Participant{}, fmt.Errorf("unknown archetype %q", spec.Archetype)
	}
	d, err := config.ParseDifficulty(spec.Difficulty)
	if err != nil {
		return match.Participant{}, err
	}
	return match.Participant{
		Name:      spec.Name,
		Archetype: arch,
		Bot:       bot.New(cfg, d, rng),
	}, nil
}

// botMatch builds the options for a bot-vs-bot match.
func botMatch(cfg config.Config, p1, p2 botSide, seed int64) (match.Options, error) {
	rng := rand.New(rand.NewSource(seed))
	a, err := participant(cfg, p1, rng)
	if err != nil {
		return match.Options{}, err
	}
	b, err := participant(cfg, p2, rand.New(rand.NewSource(rng.Int63())))
	if err != nil {
		a.Bot.Close()
		return match.Options{}, err
	}
	return match.Options{Config: cfg, Participants: [2]match.Participant{a, b}}, nil
}
