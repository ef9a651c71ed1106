package main

import (
	"fmt"
	"image/color"
	"log"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/grapple/grapple"
)

var (
	uiWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	uiGrey  = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// PauseUI is the pause menu: resume, respawn, grapple tuning switches and a
// controller rebuild that is refused mid-episode.
type PauseUI struct {
	UI *ebitenui.UI

	mode    *widget.Button
	arc     *widget.Button
	rebuild *widget.Button
	note    *widget.Text
}

func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

// NewPauseUI builds a centred panel. Buttons use coloured nine-slices and the
// built-in basic font, so no theme assets are needed.
func NewPauseUI(g *Game) *PauseUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := &widget.ButtonImage{
		Idle:     imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}),
		Hover:    imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x55, A: 255}),
		Pressed:  imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}),
		Disabled: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 160}),
	}
	face := uiFace()
	btnTextColor := &widget.ButtonTextColor{Idle: uiWhite, Disabled: uiGrey}
	centre := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	p := &PauseUI{}
	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(label, face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centre),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
				p.Refresh(g)
			}),
		)
	}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", face, uiWhite),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	resume := button("Resume", func() { g.setPaused(false) })
	respawn := button("Respawn", func() {
		g.respawn()
		g.setPaused(false)
	})
	p.mode = button("", func() { g.report("movement mode", g.sess.ToggleMovementMode()) })
	p.arc = button("", func() { g.report("arcing", g.sess.ToggleArcing()) })
	p.rebuild = button("Rebuild grapple", func() { g.report("rebuild", g.sess.SetTool(g.sess.Tool())) })
	p.note = widget.NewText(
		widget.TextOpts.Text("", face, uiGrey),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resume)
	panel.AddChild(respawn)
	panel.AddChild(p.mode)
	panel.AddChild(p.arc)
	panel.AddChild(p.rebuild)
	panel.AddChild(p.note)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	p.UI = &ebitenui.UI{Container: root}
	p.Refresh(g)
	return p
}

// Refresh relabels the switches from the live controller.
func (p *PauseUI) Refresh(g *Game) {
	if p == nil || g.sess == nil {
		return
	}
	ctrl := g.sess.Controller()
	cfg := ctrl.Config()

	mode := "constant time"
	if cfg.MovementMode == grapple.ConstantSpeed {
		mode = "constant speed"
	}
	arc := "off"
	if cfg.EnableArcing {
		arc = "on"
	}
	p.mode.Text().Label = "Movement: " + mode
	p.arc.Text().Label = "Arcing: " + arc

	grappling := ctrl.IsGrappling()
	p.mode.GetWidget().Disabled = grappling
	p.arc.GetWidget().Disabled = grappling
	p.rebuild.GetWidget().Disabled = grappling
	p.note.Label = ""
	if grappling {
		p.note.Label = "release the grapple to retune"
	}
}

// HUD is the always-on status line.
type HUD struct {
	UI   *ebitenui.UI
	line *widget.Text
}

func NewHUD() *HUD {
	h := &HUD{}
	h.line = widget.NewText(widget.TextOpts.Text("", uiFace(), uiWhite))

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Left: 6}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	bar.AddChild(h.line)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(bar)
	h.UI = &ebitenui.UI{Container: root}
	return h
}

// Refresh prints the controller state, target expiry and elapsed time.
func (h *HUD) Refresh(g *Game) {
	if h == nil || g.sess == nil {
		return
	}
	ctrl := g.sess.Controller()
	t := ctrl.Target()
	h.line.Label = fmt.Sprintf("FPS: %.2f    state: %v    can grapple: %v    expiry: %.2f    elapsed: %.2f    [esc] pause",
		ebiten.ActualFPS(), ctrl.State(), g.sess.Status().CanGrapple, t.ExpiryTime, ctrl.ElapsedTime())
}

func (g *Game) report(what string, err error) {
	if err != nil {
		log.Printf("pause: %s: %v", what, err)
	}
}
