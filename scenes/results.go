package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2

	cfg "github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/fonts"
	"github.com/automoto/kiclash/match"
	"github.com/automoto/kiclash/records"
)

// ResultsScene shows how the fight went, the saved score and the
// leaderboard, or the next rival while a tower climb is still going.
type ResultsScene struct {
	sceneChanger SceneChanger
	session      *Session
	lines        []string
	board        []records.Record
	next         bool // another tower fight follows
}

func NewResultsScene(sc SceneChanger, session *Session, r match.Result) *ResultsScene {
	rs := &ResultsScene{sceneChanger: sc, session: session}
	rs.lines = r.Summary()

	if t := session.Tower(); t != nil && !t.Done() {
		rs.next = true
		i, n := t.Progress()
		rival, _ := t.Current()
		rs.lines = append(rs.lines, "", fmt.Sprintf("Fight %d of %d: %s awaits", i+1, n, rival.Name))
		return rs
	}
	if t := session.Tower(); t != nil {
		rs.lines = append(rs.lines, "", t.Result().Summary())
	}
	if rec, ok := session.Recorder.Last(); ok && rec.Mode == session.Mode() {
		rs.lines = append(rs.lines, fmt.Sprintf("%s scored %d", rec.Name, rec.Score))
	}
	rs.board = session.Leaderboard(session.Mode())
	return rs
}

func (rs *ResultsScene) Update() {
	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	if rs.next {
		rs.sceneChanger.ChangeScene(NewFightScene(rs.sceneChanger, rs.session))
		return
	}
	rs.sceneChanger.ChangeScene(NewSelectScene(rs.sceneChanger, rs.session))
}

func (rs *ResultsScene) Draw(screen *ebiten.Image) {
	screen.Fill(rs.session.Config.Display.Background)
	width := screen.Bounds().Dx()

	text.Draw(screen, "RESULTS", fonts.Title.Get(), 40, 60, cfg.BrightOrange)
	y := 100
	for _, line := range rs.lines {
		text.Draw(screen, line, fonts.Regular.Get(), 40, y, cfg.White)
		y += 22
	}
	if len(rs.board) > 0 {
		y += 16
		drawBoard(screen, rs.session.Mode(), rs.board, 40, y)
	}

	hint := "Enter: back to select"
	if rs.next {
		hint = "Enter: next fight"
	}
	text.Draw(screen, hint, fonts.Small.Get(), width-200, screen.Bounds().Dy()-20, cfg.White)
}

var boardColor = color.RGBA{R: 255, G: 255, B: 100, A: 255}

func drawBoard(screen *ebiten.Image, mode records.Mode, rows []records.Record, x, y int) {
	text.Draw(screen, fmt.Sprintf("TOP %s", mode), fonts.Bold.Get(), x, y, cfg.BrightOrange)
	for i, r := range rows {
		y += 20
		text.Draw(screen, r.Line(i+1), fonts.Regular.Get(), x, y, boardColor)
	}
}
