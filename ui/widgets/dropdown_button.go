package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"navtitle/internal/config"
)

// DropdownButton is the chevron shown next to the title
type DropdownButton struct {
	widget.BaseWidget

	Icon     fyne.Resource
	OnTapped func()
	IconSize float32
	Padding  float32
	hovered  bool
	pressed  bool
}

// NewDropdownButton creates a chevron button
func NewDropdownButton(onTapped func()) *DropdownButton {
	b := &DropdownButton{
		Icon:     theme.MenuDropDownIcon(),
		OnTapped: onTapped,
		IconSize: config.DropdownIconSize,
		Padding:  4,
	}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped handles tap events
func (b *DropdownButton) Tapped(_ *fyne.PointEvent) {
	if b.OnTapped == nil {
		return
	}
	b.OnTapped()
}

// MouseIn handles mouse enter
func (b *DropdownButton) MouseIn(_ *desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

// MouseOut handles mouse exit
func (b *DropdownButton) MouseOut() {
	b.hovered = false
	b.pressed = false
	b.Refresh()
}

// MouseMoved handles mouse movement
func (b *DropdownButton) MouseMoved(_ *desktop.MouseEvent) {}

// MouseDown handles mouse down
func (b *DropdownButton) MouseDown(_ *desktop.MouseEvent) {
	b.pressed = true
	b.Refresh()
}

// MouseUp handles mouse up
func (b *DropdownButton) MouseUp(_ *desktop.MouseEvent) {
	b.pressed = false
	b.Refresh()
}

// CreateRenderer implements fyne.Widget
func (b *DropdownButton) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.Transparent)
	bg.CornerRadius = 4

	icon := canvas.NewImageFromResource(b.Icon)
	icon.FillMode = canvas.ImageFillContain

	return &dropdownButtonRenderer{
		bg:     bg,
		icon:   icon,
		widget: b,
	}
}

type dropdownButtonRenderer struct {
	bg     *canvas.Rectangle
	icon   *canvas.Image
	widget *DropdownButton
}

func (r *dropdownButtonRenderer) Destroy() {}

func (r *dropdownButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	iconSize := r.widget.IconSize
	r.icon.Resize(fyne.NewSize(iconSize, iconSize))
	r.icon.Move(fyne.NewPos((size.Width-iconSize)/2, (size.Height-iconSize)/2))
}

func (r *dropdownButtonRenderer) MinSize() fyne.Size {
	size := r.widget.IconSize + r.widget.Padding*2
	return fyne.NewSize(size, size)
}

func (r *dropdownButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.icon}
}

func (r *dropdownButtonRenderer) Refresh() {
	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	switch {
	case r.widget.pressed:
		r.bg.FillColor = th.Color(theme.ColorNamePressed, variant)
	case r.widget.hovered:
		r.bg.FillColor = th.Color(theme.ColorNameHover, variant)
	default:
		r.bg.FillColor = color.Transparent
	}

	if r.widget.Icon != nil {
		r.icon.Resource = r.widget.Icon
	}

	r.bg.Refresh()
	r.icon.Refresh()
}
