package ebiten

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tuberoad/pkg/engine/scroll"
	"tuberoad/pkg/game/driver"
	"tuberoad/pkg/game/locale"
	"tuberoad/pkg/game/renderer"
)

// Draw renders the course to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	snap := e.scene.Driver.Snapshot()
	if !snap.NeedsRedraw {
		return
	}

	screen.Fill(colorBackground)

	sink := geoSink{dst: screen}
	vw, vh := float64(e.windowWidth), float64(e.windowHeight)
	e.road.SetOffset(renderer.ScaleOffset(snap.Offset, vw))
	if err := e.road.Render(sink); err != nil {
		e.errs.Report(err)
	}
	sink.DrawImage(e.vehicle, e.vehicle.Bounds(), renderer.VehicleTransform(e.vehicle.Bounds(), vw, vh, snap.VehicleDY))

	if e.scene.HUDVisible() {
		e.drawHUD(screen, snap)
	}
}

// geoSink draws through ebiten.GeoM
type geoSink struct {
	dst *ebiten.Image
}

func (s geoSink) DrawImage(img *ebiten.Image, src image.Rectangle, t scroll.Transform) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(t)
	if src != img.Bounds() {
		img = img.SubImage(src).(*ebiten.Image)
	}
	s.dst.DrawImage(img, op)
}

// geoM converts t; both use the same element order
func geoM(t scroll.Transform) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t.A)
	g.SetElement(0, 1, t.B)
	g.SetElement(0, 2, t.TX)
	g.SetElement(1, 0, t.C)
	g.SetElement(1, 1, t.D)
	g.SetElement(1, 2, t.TY)
	return g
}

// drawHUD draws the status strip along the top edge
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, snap driver.Snapshot) {
	width := screen.Bounds().Dx()
	height := hudPadding*2 + hudLineHeight*2

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), colorPanel, false)

	status := fmt.Sprintf("%s: %.0f  %s: %.2f  %s: %.0f",
		locale.Get("HUD_OFFSET"), snap.Offset,
		locale.Get("HUD_ROW"), e.road.RowPosition(),
		locale.Get("HUD_SPEED"), snap.Speed)
	e.drawText(screen, status, hudPadding, hudPadding, colorText)

	if snap.Paused {
		paused := locale.Get("HUD_PAUSED")
		x := float64(width) - text.Advance(paused, e.hudFace) - hudPadding
		e.drawText(screen, paused, x, hudPadding, colorPaused)
	}

	e.drawText(screen, locale.Get("HUD_HELP"), hudPadding, hudPadding+hudLineHeight, colorSubtle)
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.hudFace, op)
}
