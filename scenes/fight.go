package scenes

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/match"
	"github.com/automoto/kiclash/systems"
)

// FightScene runs one match: keyboard on P1, a bot on P2.
type FightScene struct {
	sceneChanger SceneChanger
	session      *Session
	keyboard     *systems.Keyboard
	ctl          *match.Controller
	once         sync.Once

	debug    bool
	lingered int // ticks shown after the match finished
}

// NewFightScene creates the scene; the match is built on the first Update.
func NewFightScene(sc SceneChanger, session *Session) *FightScene {
	return &FightScene{sceneChanger: sc, session: session}
}

func (fs *FightScene) configure() {
	fs.keyboard = systems.NewKeyboard()
	opts, err := fs.session.NextMatch(fs.keyboard)
	if err == nil {
		fs.ctl, err = match.New(opts)
	}
	if err != nil {
		log.Printf("[match] could not start: %v", err)
	}
}

func (fs *FightScene) Update() {
	fs.once.Do(fs.configure)
	if fs.ctl == nil {
		fs.sceneChanger.ChangeScene(NewSelectScene(fs.sceneChanger, fs.session))
		return
	}

	fs.keyboard.Update()
	if fs.keyboard.Get(systems.ActionDebug).JustPressed {
		fs.debug = !fs.debug
	}
	if systems.UpdatePause(fs.keyboard, fs.ctl) {
		fs.ctl.Close()
		fs.sceneChanger.ChangeScene(NewSelectScene(fs.sceneChanger, fs.session))
		return
	}
	if fs.keyboard.Get(systems.ActionSkip).JustPressed && fs.ctl.State() == cfg.MatchStateIntroduction {
		_ = fs.ctl.Skip()
	}

	fs.ctl.Update()

	if !fs.ctl.Finished() {
		return
	}
	fs.lingered++
	skip := fs.keyboard.Get(systems.ActionSkip).JustPressed
	if fs.lingered < fs.session.Config.Match.KOFreezeTicks && !skip {
		return
	}
	fs.ctl.Close()
	result, _ := fs.ctl.Result()
	fs.session.FinishTower()
	fs.sceneChanger.ChangeScene(NewResultsScene(fs.sceneChanger, fs.session, result))
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	if fs.ctl == nil {
		screen.Fill(fs.session.Config.Display.Background)
		return
	}
	systems.DrawArena(screen, fs.ctl, fs.session.Config.Display, fs.debug)
	systems.DrawMatchHUD(screen, fs.ctl, fs.session.FightConfig())
	systems.DrawPause(screen, fs.ctl)
}
