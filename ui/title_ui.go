package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/status"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI is the title screen.
type TitleUI struct {
	UI *ebitenui.UI

	OnPlay  func()
	OnReset func()
	OnQuit  func()

	progressLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI builds the title screen showing st's saved progress.
func NewTitleUI(st *status.Status, onPlay, onReset, onQuit func()) *TitleUI {
	tui := &TitleUI{
		OnPlay:  onPlay,
		OnReset: onReset,
		OnQuit:  onQuit,
	}

	tui.loadFonts()
	tui.buildUI()
	tui.SetProgress(st)

	return tui
}

func (tui *TitleUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: bold,
		Size:   40,
	}
	tui.normalFace = &text.GoTextFace{
		Source: regular,
		Size:   16,
	}
	tui.smallFace = &text.GoTextFace{
		Source: regular,
		Size:   12,
	}
}

func (tui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(int(cfg.Menu.MenuItemGap)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("TUXRUN", &tui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	tui.progressLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColorNormal,
		}),
	)
	contentContainer.AddChild(tui.progressLabel)

	contentContainer.AddChild(tui.button("Play", func() {
		if tui.OnPlay != nil {
			tui.OnPlay()
		}
	}))
	contentContainer.AddChild(tui.button("Reset Progress", func() {
		if tui.OnReset != nil {
			tui.OnReset()
		}
	}))
	contentContainer.AddChild(tui.button("Quit", func() {
		if tui.OnQuit != nil {
			tui.OnQuit()
		}
	}))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Enter: Play", &tui.smallFace, &widget.LabelColor{
			Idle: cfg.Gray,
		}),
	))

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, int(cfg.Menu.MenuItemHeight))),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.TextColorNormal,
			Hover:   cfg.Menu.TextColorSelected,
			Pressed: cfg.Orange,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (tui *TitleUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 60, 100, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 85, 135, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{25, 40, 70, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// SetProgress shows st's coins and bonus under the title.
func (tui *TitleUI) SetProgress(st *status.Status) {
	tui.progressLabel.Label = fmt.Sprintf("Coins: %d   Bonus: %s", st.Coins, st.Bonus)
}

// Update advances the widgets.
func (tui *TitleUI) Update() {
	tui.UI.Update()
}
