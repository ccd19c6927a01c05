package widgets

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"navtitle/internal/config"
	"navtitle/internal/subtitle"
	"navtitle/models"
	apptheme "navtitle/ui/theme"
)

// TitleView is a navigation bar title with an optional dropdown chevron and a
// transient subtitle line below it. Subtitle messages are queued and faded in
// and out by a subtitle.Coordinator.
type TitleView struct {
	widget.BaseWidget

	coordinator *subtitle.Coordinator

	listenersMu sync.Mutex
	listeners   map[uint64]func()
	nextID      uint64

	// Only touched on the fyne goroutine
	title         string
	showDropdown  bool
	subtitleText  string
	subtitleKind  models.Kind
	subtitleAlpha float32
}

// NewTitleView creates a title view. opts configures its coordinator; the
// Scheduler and Feedback defaults suit a real window.
func NewTitleView(title string, opts subtitle.Options) *TitleView {
	v := &TitleView{
		title:        title,
		showDropdown: true,
		subtitleKind: models.KindStandard,
		listeners:    make(map[uint64]func()),
	}
	v.ExtendBaseWidget(v)

	onDisplay := opts.OnDisplay
	opts.OnDisplay = func(m *models.Message) {
		kind := m.Payload.Kind
		fyne.Do(func() {
			v.subtitleKind = kind
			v.Refresh()
		})
		if onDisplay != nil {
			onDisplay(m)
		}
	}
	v.coordinator = subtitle.NewCoordinator(&titleSurface{view: v}, opts)
	return v
}

// SetTitle updates the title text. Must be called on the fyne goroutine.
func (v *TitleView) SetTitle(title string) {
	v.title = title
	v.Refresh()
}

// Title returns the title text.
func (v *TitleView) Title() string {
	return v.title
}

// SetDropdownVisible shows or hides the dropdown chevron.
func (v *TitleView) SetDropdownVisible(visible bool) {
	v.showDropdown = visible
	v.Refresh()
}

// DropdownVisible reports whether the chevron is shown.
func (v *TitleView) DropdownVisible() bool {
	return v.showDropdown
}

// OnDropdownTapped registers fn to run on every dropdown tap. The returned
// function unregisters it.
func (v *TitleView) OnDropdownTapped(fn func()) (cancel func()) {
	v.listenersMu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.listenersMu.Unlock()

	return func() {
		v.listenersMu.Lock()
		delete(v.listeners, id)
		v.listenersMu.Unlock()
	}
}

// SetSubtitle queues p on the subtitle line; nil clears it. Safe to call from
// any goroutine.
func (v *TitleView) SetSubtitle(p *models.Payload, opts ...subtitle.SetOption) {
	v.coordinator.SetSubtitle(p, opts...)
}

// Coordinator returns the coordinator driving the subtitle line.
func (v *TitleView) Coordinator() *subtitle.Coordinator {
	return v.coordinator
}

// SubtitleText returns the text currently assigned to the subtitle line.
func (v *TitleView) SubtitleText() string {
	return v.subtitleText
}

// SubtitleAlpha returns the subtitle opacity in [0, 1].
func (v *TitleView) SubtitleAlpha() float32 {
	return v.subtitleAlpha
}

// Close stops the subtitle coordinator. The view keeps its last state.
func (v *TitleView) Close() {
	v.coordinator.Close()
}

func (v *TitleView) dropdownTapped() {
	v.listenersMu.Lock()
	fns := make([]func(), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.listenersMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (v *TitleView) setSubtitleAlpha(a float32) {
	v.subtitleAlpha = a
	v.Refresh()
}

// CreateRenderer implements fyne.Widget
func (v *TitleView) CreateRenderer() fyne.WidgetRenderer {
	title := canvas.NewText(v.title, theme.Color(theme.ColorNameForeground))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = config.TitleTextSize
	title.Alignment = fyne.TextAlignCenter

	sub := canvas.NewText(v.subtitleText, theme.Color(theme.ColorNamePlaceHolder))
	sub.TextSize = config.SubtitleTextSize
	sub.Alignment = fyne.TextAlignCenter

	r := &titleViewRenderer{
		title:    title,
		subtitle: sub,
		dropdown: NewDropdownButton(v.dropdownTapped),
		widget:   v,
	}
	r.Refresh()
	return r
}

type titleViewRenderer struct {
	title    *canvas.Text
	subtitle *canvas.Text
	dropdown *DropdownButton
	widget   *TitleView
}

func (r *titleViewRenderer) Destroy() {}

func (r *titleViewRenderer) Layout(size fyne.Size) {
	padding := config.TitleViewPadding
	titleSize := r.title.MinSize()

	rowWidth := titleSize.Width
	var ddSize fyne.Size
	if r.widget.showDropdown {
		ddSize = r.dropdown.MinSize()
		rowWidth += padding + ddSize.Width
	}

	y := padding
	x := (size.Width - rowWidth) / 2
	r.title.Resize(titleSize)
	r.title.Move(fyne.NewPos(x, y))

	if r.widget.showDropdown {
		r.dropdown.Resize(ddSize)
		r.dropdown.Move(fyne.NewPos(x+titleSize.Width+padding, y+(titleSize.Height-ddSize.Height)/2))
	}

	y += titleSize.Height + config.TitleSubtitleGap
	r.subtitle.Resize(fyne.NewSize(size.Width-padding*2, r.subtitleLineHeight()))
	r.subtitle.Move(fyne.NewPos(padding, y))
}

// subtitleLineHeight reserves the subtitle row even while it is empty so the
// title does not jump when messages come and go.
func (r *titleViewRenderer) subtitleLineHeight() float32 {
	return fyne.MeasureText("Ag", r.subtitle.TextSize, r.subtitle.TextStyle).Height
}

func (r *titleViewRenderer) MinSize() fyne.Size {
	padding := config.TitleViewPadding
	titleSize := r.title.MinSize()

	rowWidth := titleSize.Width
	if r.widget.showDropdown {
		rowWidth += padding + r.dropdown.MinSize().Width
	}
	width := fyne.Max(rowWidth, r.subtitle.MinSize().Width) + padding*2
	height := padding + titleSize.Height + config.TitleSubtitleGap + r.subtitleLineHeight() + padding

	return fyne.NewSize(fyne.Max(width, 120), height)
}

func (r *titleViewRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.title, r.subtitle}
	if r.widget.showDropdown {
		objs = append(objs, r.dropdown)
	}
	return objs
}

func (r *titleViewRenderer) Refresh() {
	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	r.title.Text = r.widget.title
	r.title.Color = th.Color(theme.ColorNameForeground, variant)
	r.title.Refresh()

	base := th.Color(apptheme.SubtitleColorName(r.widget.subtitleKind), variant)
	r.subtitle.Text = r.widget.subtitleText
	r.subtitle.Color = apptheme.ScaleAlpha(base, r.widget.subtitleAlpha)
	r.subtitle.Refresh()

	if r.widget.showDropdown {
		r.dropdown.Show()
	} else {
		r.dropdown.Hide()
	}
	r.dropdown.Refresh()
	r.Layout(r.widget.Size())
}

// titleSurface adapts a TitleView to subtitle.Surface. The coordinator calls
// it from arbitrary goroutines while holding its lock, so every change hops
// onto the fyne goroutine with the non-blocking fyne.Do.
type titleSurface struct {
	view *TitleView
}

func (s *titleSurface) SetSubtitleText(text string) {
	fyne.Do(func() {
		s.view.subtitleText = text
		s.view.Refresh()
	})
}

func (s *titleSurface) Animate(kind subtitle.TransitionKind, d time.Duration) subtitle.Animation {
	a := &fadeAnimation{view: s.view, kind: kind}
	fyne.Do(func() { a.start(d) })
	return a
}

// fadeAnimation fades the subtitle alpha. Its fields are only touched on the
// fyne goroutine; fyne.Do keeps start and Finish in call order.
type fadeAnimation struct {
	view     *TitleView
	kind     subtitle.TransitionKind
	anim     *fyne.Animation
	finished bool
}

func (a *fadeAnimation) endpoints() (from, to float32) {
	if a.kind == subtitle.TransitionAppear {
		return 0, 1
	}
	return 1, 0
}

func (a *fadeAnimation) start(d time.Duration) {
	if a.finished {
		return
	}
	from, to := a.endpoints()
	a.view.setSubtitleAlpha(from)

	a.anim = fyne.NewAnimation(d, func(f float32) {
		if a.finished {
			return
		}
		a.view.setSubtitleAlpha(from + (to-from)*f)
	})
	a.anim.Curve = fyne.AnimationEaseInOut
	a.anim.Start()
}

// Finish implements subtitle.Animation.
func (a *fadeAnimation) Finish() {
	fyne.Do(func() {
		if a.finished {
			return
		}
		a.finished = true
		if a.anim != nil {
			a.anim.Stop()
		}
		_, to := a.endpoints()
		a.view.setSubtitleAlpha(to)
	})
}
