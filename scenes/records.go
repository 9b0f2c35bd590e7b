package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2

	cfg "github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fonts"
	"github.com/automoto/kiclash/records"
)

// RecordsScene lists both leaderboards side by side.
type RecordsScene struct {
	sceneChanger SceneChanger
	session      *Session
	versus       []records.Record
	tower        []records.Record
}

func NewRecordsScene(sc SceneChanger, session *Session) *RecordsScene {
	return &RecordsScene{
		sceneChanger: sc,
		session:      session,
		versus:       session.Leaderboard(records.ModeVersus),
		tower:        session.Leaderboard(records.ModeTower),
	}
}

func (rs *RecordsScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		rs.sceneChanger.ChangeScene(NewSelectScene(rs.sceneChanger, rs.session))
	}
}

func (rs *RecordsScene) Draw(screen *ebiten.Image) {
	screen.Fill(rs.session.Config.Display.Background)
	text.Draw(screen, "RECORDS", fonts.Title.Get(), 40, 60, cfg.BrightOrange)

	y := 110
	for _, board := range []struct {
		mode records.Mode
		rows []records.Record
	}{
		{records.ModeVersus, rs.versus},
		{records.ModeTower, rs.tower},
	} {
		if len(board.rows) == 0 {
			text.Draw(screen, "no "+string(board.mode)+" records yet", fonts.Regular.Get(), 40, y, cfg.White)
			y += 40
			continue
		}
		drawBoard(screen, board.mode, board.rows, 40, y)
		y += 20*(len(board.rows)+1) + 20
	}
	text.Draw(screen, "Esc: back", fonts.Small.Get(), 40, screen.Bounds().Dy()-20, cfg.White)
}
