package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/kiclash/components"
	"github.com/automoto/kiclash/systems"
)

var (
	textIdle     = color.RGBA{255, 255, 255, 255}
	textHover    = color.RGBA{255, 255, 200, 255}
	textPressed  = color.RGBA{200, 200, 200, 255}
	textDisabled = color.RGBA{100, 100, 100, 255}
	valueColor   = color.RGBA{255, 255, 100, 255}
	loreColor    = color.RGBA{180, 180, 180, 255}
	errorColor   = color.RGBA{255, 100, 100, 255}
)

// SelectUI is the character, opponent, difficulty and mode picker.
type SelectUI struct {
	UI    *ebitenui.UI
	Setup *components.SetupData

	OnStart   func()
	OnRecords func()

	playerLabel     *widget.Label
	loreLabel       *widget.Label
	opponentLabel   *widget.Label
	difficultyLabel *widget.Label
	modeLabel       *widget.Label
	arenaLabel      *widget.Label
	statusLabel     *widget.Label
	opponentButtons []*widget.Button
	startButton     *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewSelectUI builds the select screen over setup.
func NewSelectUI(setup *components.SetupData, onStart, onRecords func()) *SelectUI {
	sui := &SelectUI{
		Setup:     setup,
		OnStart:   onStart,
		OnRecords: onRecords,
	}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *SelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	sui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	sui.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	sui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (sui *SelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 25, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("KI CLASH", &sui.titleFace, &widget.LabelColor{Idle: color.RGBA{255, 180, 50, 255}}),
	))

	var row *widget.Container
	row, sui.playerLabel, _ = sui.pickerRow("Fighter",
		func() { systems.CyclePlayer(sui.Setup, -1) },
		func() { systems.CyclePlayer(sui.Setup, 1) })
	content.AddChild(row)

	sui.loreLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{Idle: loreColor}),
	)
	content.AddChild(sui.loreLabel)

	row, sui.opponentLabel, sui.opponentButtons = sui.pickerRow("Opponent",
		func() { systems.CycleOpponent(sui.Setup, -1) },
		func() { systems.CycleOpponent(sui.Setup, 1) })
	content.AddChild(row)

	row, sui.difficultyLabel = sui.settingRow("Difficulty", func() { systems.CycleBotDifficulty(sui.Setup) })
	content.AddChild(row)

	row, sui.modeLabel = sui.settingRow("Mode", func() { systems.CycleGameMode(sui.Setup) })
	content.AddChild(row)

	if len(sui.Setup.Arenas) > 0 {
		row, sui.arenaLabel = sui.settingRow("Arena", func() { systems.CycleArena(sui.Setup) })
		content.AddChild(row)
	}

	content.AddChild(sui.buildButtonsContainer())

	sui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{Idle: errorColor}),
	)
	content.AddChild(sui.statusLabel)

	rootContainer.AddChild(content)
	sui.UI = &ebitenui.UI{Container: rootContainer}
}

func (sui *SelectUI) row() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
}

func (sui *SelectUI) caption(s string) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &sui.normalFace, &widget.LabelColor{Idle: textIdle}),
	)
}

// pickerRow is "Caption  <  value  >".
func (sui *SelectUI) pickerRow(caption string, prev, next func()) (*widget.Container, *widget.Label, []*widget.Button) {
	row := sui.row()
	row.AddChild(sui.caption(caption + ":"))

	left := sui.button("<", 32, prev)
	row.AddChild(left)

	value := widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{Idle: valueColor, Disabled: textDisabled}),
	)
	row.AddChild(value)

	right := sui.button(">", 32, next)
	row.AddChild(right)
	return row, value, []*widget.Button{left, right}
}

// settingRow is "Caption: value [Change]".
func (sui *SelectUI) settingRow(caption string, change func()) (*widget.Container, *widget.Label) {
	row := sui.row()
	row.AddChild(sui.caption(caption + ":"))

	value := widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{Idle: valueColor}),
	)
	row.AddChild(value)
	row.AddChild(sui.button("Change", 80, change))
	return row, value
}

func (sui *SelectUI) button(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 26)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.smallFace, &widget.ButtonTextColor{
			Idle:     textIdle,
			Hover:    textHover,
			Pressed:  textPressed,
			Disabled: textDisabled,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
}

func (sui *SelectUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	recordsButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 32)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Records", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    textIdle,
			Hover:   textHover,
			Pressed: textPressed,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnRecords != nil {
				sui.OnRecords()
			}
		}),
	)
	container.AddChild(recordsButton)

	sui.startButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 32)),
		widget.ButtonOpts.Image(sui.startButtonImage()),
		widget.ButtonOpts.Text("FIGHT", &sui.normalFace, &widget.ButtonTextColor{
			Idle:     textIdle,
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: textDisabled,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if systems.CanStartMatch(sui.Setup) && sui.OnStart != nil {
				sui.OnStart()
			}
		}),
	)
	container.AddChild(sui.startButton)

	return container
}

func (sui *SelectUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (sui *SelectUI) startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{150, 70, 20, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{190, 100, 30, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{120, 50, 10, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{50, 40, 40, 255}),
	}
}

// UpdateUI copies the setup into the widgets.
func (sui *SelectUI) UpdateUI() {
	s := sui.Setup
	if len(s.Roster) > 0 {
		player := s.Roster[s.Player]
		sui.playerLabel.Label = player.Name
		sui.loreLabel.Label = player.Lore
		sui.opponentLabel.Label = s.Roster[s.Opponent].Name
	}

	tower := s.Mode == components.GameModeTower
	if tower {
		sui.opponentLabel.Label = "every rival in turn"
	}
	for _, b := range sui.opponentButtons {
		b.GetWidget().Disabled = tower
	}

	sui.difficultyLabel.Label = systems.GetBotDifficultyName(s.Difficulty)
	sui.modeLabel.Label = systems.GetGameModeName(s.Mode)
	if sui.arenaLabel != nil {
		sui.arenaLabel.Label = systems.ArenaName(s)
	}

	canStart := systems.CanStartMatch(s)
	sui.startButton.GetWidget().Disabled = !canStart
	sui.statusLabel.Label = systems.ValidationMessage(s)
}

// Update calls the UI's Update method
func (sui *SelectUI) Update() {
	sui.UI.Update()
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
