package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/automoto/scrollfx/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// NavUI is the fixed bar across the top of the window with one button per route.
type NavUI struct {
	UI *ebitenui.UI

	OnNavigate      func(id config.PageID)
	OnToggleReduced func()

	buttons     map[config.PageID]*widget.Button
	statusLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

func NewNavUI(onNavigate func(id config.PageID), onToggleReduced func()) *NavUI {
	ui := &NavUI{
		OnNavigate:      onNavigate,
		OnToggleReduced: onToggleReduced,
		buttons:         make(map[config.PageID]*widget.Button),
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *NavUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *NavUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 24, Right: 24}
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.Palette.Surface)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(config.C.Width, int(config.C.NavHeight)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	for _, route := range config.Pages.Routes {
		id := route.ID
		btn := ui.navButton(route.Label, func() {
			if ui.OnNavigate != nil {
				ui.OnNavigate(id)
			}
		})
		ui.buttons[id] = btn
		bar.AddChild(btn)
	}

	bar.AddChild(ui.navButton("Motion", func() {
		if ui.OnToggleReduced != nil {
			ui.OnToggleReduced()
		}
	}))

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: config.Palette.Muted,
		}),
	)
	bar.AddChild(ui.statusLabel)

	rootContainer.AddChild(bar)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *NavUI) navButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(config.Palette.Card),
			Hover:    image.NewNineSliceColor(color.RGBA{71, 85, 105, 255}),
			Pressed:  image.NewNineSliceColor(config.Palette.Surface),
			Disabled: image.NewNineSliceColor(config.Palette.Accent),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     config.Palette.Text,
			Hover:    config.White,
			Pressed:  config.Palette.Muted,
			Disabled: config.Slate,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetActive highlights the button of the page being shown.
func (ui *NavUI) SetActive(id config.PageID) {
	for pid, btn := range ui.buttons {
		btn.GetWidget().Disabled = pid == id
	}
}

func (ui *NavUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *NavUI) Update() {
	ui.UI.Update()
}

func (ui *NavUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
