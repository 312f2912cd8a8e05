package settings

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"langswitcher/internal/config"
	"langswitcher/internal/i18n"
)

// Color palette - dark theme
var (
	colorBG      = color.NRGBA{R: 30, G: 30, B: 34, A: 255}
	colorPanel   = color.NRGBA{R: 45, G: 45, B: 50, A: 255}
	colorText    = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	colorTextDim = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	colorAccent  = color.NRGBA{R: 88, G: 166, B: 255, A: 255}
)

// letterLabel is the chord shown next to an activation letter.
func letterLabel(letter string) string {
	return "WIN+ALT+" + letter
}

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, colorBG, rect.Op())

	return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(w.drawTitle),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawPanel(gtx, w.drawActivationSection)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawPanel(gtx, w.drawCloseToTray)
			}),
		)
	})
}

func (w *Window) drawTitle(gtx layout.Context) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorText

	label := material.Label(th, unit.Sp(22), i18n.T("settings_title"))
	label.Font.Weight = font.Bold
	return label.Layout(gtx)
}

func (w *Window) drawSectionHeader(gtx layout.Context, text string) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorTextDim

	label := material.Label(th, unit.Sp(12), text)
	label.Font.Weight = font.Medium
	return label.Layout(gtx)
}

func (w *Window) drawActivationSection(gtx layout.Context) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorText
	th.Palette.ContrastBg = colorAccent

	items := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return w.drawSectionHeader(gtx, i18n.T("settings_activation"))
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
	}
	for _, l := range config.ActivationLetters() {
		letter := l
		items = append(items, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			rb := material.RadioButton(th, &w.activation, letter, letterLabel(letter))
			rb.IconColor = colorAccent
			return rb.Layout(gtx)
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, items...)
}

func (w *Window) drawCloseToTray(gtx layout.Context) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorText

	cb := material.CheckBox(th, &w.closeToTray, i18n.T("settings_close_to_tray"))
	cb.IconColor = colorAccent
	return cb.Layout(gtx)
}

func (w *Window) drawPanel(gtx layout.Context, content layout.Widget) layout.Dimensions {
	// First layout content to get its size
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(16)).Layout(gtx, content)
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(12))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, colorPanel, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}
