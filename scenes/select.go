package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/kiclash/ui"
)

// SelectScene is the character and mode picker shown at start-up and
// after every fight.
type SelectScene struct {
	sceneChanger SceneChanger
	session      *Session
	selectUI     *ui.SelectUI
	once         sync.Once

	shouldStart   bool
	shouldRecords bool
}

// NewSelectScene creates a new select scene
func NewSelectScene(sc SceneChanger, session *Session) *SelectScene {
	return &SelectScene{sceneChanger: sc, session: session}
}

func (ss *SelectScene) Update() {
	ss.once.Do(ss.configure)
	ss.selectUI.Update()

	switch {
	case ss.shouldStart:
		ss.sceneChanger.ChangeScene(NewNameScene(ss.sceneChanger, ss.session))
	case ss.shouldRecords:
		ss.sceneChanger.ChangeScene(NewRecordsScene(ss.sceneChanger, ss.session))
	}
}

func (ss *SelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ss.selectUI == nil {
		return
	}
	ss.selectUI.UI.Draw(screen)
}

func (ss *SelectScene) configure() {
	ss.selectUI = ui.NewSelectUI(
		&ss.session.Setup,
		func() { ss.shouldStart = true },
		func() { ss.shouldRecords = true },
	)
}
