package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/tilegrid/editor"
	"github.com/milk9111/tilegrid/render"
)

// buildSidebarUI lays the sidebar buttons out on the same rectangles that
// editor.Layout hit-tests. The widgets only draw; clicks go through
// Session.Click so the grid and the sidebar share one input path.
func buildSidebarUI(s *editor.Session) (*ebitenui.UI, map[editor.Button]*widget.Button, error) {
	face, err := render.UIFace(20)
	if err != nil {
		return nil, nil, err
	}

	l := s.Layout
	_, screenH := l.ScreenSize()
	bw, bh := l.ButtonSize()
	first := l.ButtonRect(editor.Buttons[0])
	spacing := 0
	if len(editor.Buttons) > 1 {
		spacing = l.ButtonRect(editor.Buttons[1]).Min.Y - first.Max.Y
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(sidebarColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(spacing),
			widget.RowLayoutOpts.Padding(&widget.Insets{
				Top:   first.Min.Y,
				Left:  first.Min.X - l.SidebarX(),
				Right: l.SidebarWidth - bw - (first.Min.X - l.SidebarX()),
			}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(l.SidebarWidth, screenH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
	)

	buttons := make(map[editor.Button]*widget.Button, len(editor.Buttons))
	for _, b := range editor.Buttons {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(sidebarButtonImage()),
			widget.ButtonOpts.Text(s.ButtonLabel(b), &face, sidebarButtonTextColor()),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(bw, bh),
			),
		)
		buttons[b] = btn
		panel.AddChild(btn)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}, buttons, nil
}
