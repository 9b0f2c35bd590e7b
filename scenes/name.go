package scenes

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2

	cfg "github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fonts"
	"github.com/automoto/kiclash/records"
)

// NameScene asks for the initials the leaderboard will show.
type NameScene struct {
	sceneChanger SceneChanger
	session      *Session
	name         []rune
	chars        []rune
}

func NewNameScene(sc SceneChanger, session *Session) *NameScene {
	ns := &NameScene{sceneChanger: sc, session: session}
	if session.Name != records.PlaceholderName {
		ns.name = []rune(session.Name)
	}
	return ns
}

func (ns *NameScene) Update() {
	ns.chars = ebiten.AppendInputChars(ns.chars[:0])
	ns.name = EditName(ns.name, ns.chars, inpututil.IsKeyJustPressed(ebiten.KeyBackspace))

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		ns.sceneChanger.ChangeScene(NewSelectScene(ns.sceneChanger, ns.session))
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		ns.session.Name = records.NormalizeName(string(ns.name))
		if err := ns.session.Begin(); err != nil {
			log.Printf("[match] could not start: %v", err)
			ns.sceneChanger.ChangeScene(NewSelectScene(ns.sceneChanger, ns.session))
			return
		}
		ns.sceneChanger.ChangeScene(NewFightScene(ns.sceneChanger, ns.session))
	}
}

func (ns *NameScene) Draw(screen *ebiten.Image) {
	screen.Fill(ns.session.Config.Display.Background)
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	title := fonts.Bold.Get()
	text.Draw(screen, "ENTER YOUR INITIALS", title, width/2-130, height/2-60, cfg.BrightOrange)

	shown := string(ns.name) + strings.Repeat("_", records.NameLength-len(ns.name))
	text.Draw(screen, shown, fonts.Title.Get(), width/2-40, height/2+10, cfg.White)
	text.Draw(screen, "Enter: fight   Esc: back", fonts.Small.Get(), width/2-90, height-24, cfg.White)
}

// EditName applies typed characters and a backspace to a name of at most
// NameLength upper-case letters or digits.
func EditName(name, typed []rune, backspace bool) []rune {
	if backspace && len(name) > 0 {
		name = name[:len(name)-1]
	}
	for _, r := range typed {
		if len(name) >= records.NameLength {
			break
		}
		r = []rune(strings.ToUpper(string(r)))[0]
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			name = append(name, r)
		}
	}
	return name
}
