package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"navtitle/internal/config"
	"navtitle/internal/demo"
	"navtitle/internal/logger"
	"navtitle/internal/subtitle"
	"navtitle/models"
	apptheme "navtitle/ui/theme"
	"navtitle/ui/widgets"
)

// views offered by the title dropdown
var views = []string{"Inbox", "Archive", "Drafts", "Sent"}

// DemoUI is a window with a title view and buttons that drive its subtitle
type DemoUI struct {
	window fyne.Window
	config *models.Config
	log    *logger.Logger

	title     *widgets.TitleView
	lastShown *widget.Label

	burstMu     sync.Mutex
	cancelBurst context.CancelFunc
}

// NewDemoUI creates the demo UI. metrics may be nil.
func NewDemoUI(w fyne.Window, cfg *models.Config, metrics *subtitle.Metrics) *DemoUI {
	ui := &DemoUI{
		window:    w,
		config:    cfg,
		log:       logger.Default().Named("ui"),
		lastShown: widget.NewLabel("Nothing shown yet"),
	}

	opts := subtitle.OptionsFromConfig(cfg)
	opts.Metrics = metrics
	opts.Feedback = widgets.NewNotificationFeedback(fyne.CurrentApp(), cfg.Title, cfg.NotifyOnFailure)
	opts.OnDisplay = func(m *models.Message) {
		text := fmt.Sprintf("%s %s", m.Payload.Kind.StatusIcon(), m.Text())
		fyne.Do(func() { ui.lastShown.SetText(text) })
	}

	ui.title = widgets.NewTitleView(cfg.Title, opts)
	ui.title.SetDropdownVisible(cfg.ShowDropdown)
	ui.title.OnDropdownTapped(ui.showViewMenu)

	w.SetOnClosed(ui.Close)
	return ui
}

// Build creates the complete UI layout
func (ui *DemoUI) Build() fyne.CanvasObject {
	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	barBg := canvas.NewRectangle(th.Color(apptheme.ColorNameTitleBar, variant))
	divider := canvas.NewRectangle(th.Color(apptheme.ColorNameDivider, variant))
	divider.SetMinSize(fyne.NewSize(0, 1))

	titleBar := container.NewVBox(
		container.NewStack(barBg, container.NewCenter(ui.title)),
		divider,
	)

	send := func(kind models.Kind) func() {
		return func() {
			p, opts := demo.Sample(kind)
			ui.title.SetSubtitle(p, opts...)
		}
	}

	buttons := container.NewGridWithColumns(2,
		widget.NewButtonWithIcon("Status", theme.InfoIcon(), send(models.KindStandard)),
		widget.NewButtonWithIcon("Success", theme.ConfirmIcon(), send(models.KindSuccess)),
		widget.NewButtonWithIcon("Warning", theme.WarningIcon(), send(models.KindWarning)),
		widget.NewButtonWithIcon("Failure", theme.ErrorIcon(), send(models.KindFailure)),
		widget.NewButtonWithIcon("Interrupt", theme.MediaSkipNextIcon(), func() {
			p, opts := demo.Interrupt()
			ui.title.SetSubtitle(p, opts...)
		}),
		widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), func() {
			ui.title.SetSubtitle(nil)
		}),
	)

	burst := widget.NewButtonWithIcon(fmt.Sprintf("Burst of %d", config.BurstMessages), theme.MediaFastForwardIcon(), ui.runBurst)
	burst.Importance = widget.HighImportance

	animations := widget.NewCheck("Animations", func(enabled bool) {
		ui.title.Coordinator().SetAnimationsEnabled(enabled)
	})
	animations.SetChecked(ui.config.AnimationsEnabled)

	dropdown := widget.NewCheck("Dropdown", ui.title.SetDropdownVisible)
	dropdown.SetChecked(ui.config.ShowDropdown)

	controls := container.NewVBox(
		widget.NewLabelWithStyle("Send a status", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		buttons,
		burst,
		widget.NewSeparator(),
		container.NewHBox(animations, dropdown),
		ui.lastShown,
	)

	return container.NewBorder(titleBar, nil, nil, nil, container.NewPadded(controls))
}

func (ui *DemoUI) showViewMenu() {
	items := make([]*fyne.MenuItem, len(views))
	for i, name := range views {
		items[i] = fyne.NewMenuItem(name, func() {
			ui.title.SetTitle(name)
			ui.title.SetSubtitle(models.Standard("Switched to "+name), subtitle.WithoutFeedback())
		})
		items[i].Checked = name == ui.title.Title()
	}

	menu := fyne.NewMenu("", items...)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(ui.title)
	pos = pos.Add(fyne.NewPos(0, ui.title.Size().Height))
	widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), pos)
}

// runBurst fans scripted events in from several goroutines. A new burst
// cancels one still in flight.
func (ui *DemoUI) runBurst() {
	ctx, cancel := context.WithCancel(context.Background())

	ui.burstMu.Lock()
	if ui.cancelBurst != nil {
		ui.cancelBurst()
	}
	ui.cancelBurst = cancel
	ui.burstMu.Unlock()

	go func() {
		defer cancel()
		err := demo.Burst(ctx, ui.title, demo.BurstEvents(config.BurstMessages))
		if err != nil && !errors.Is(err, context.Canceled) {
			ui.log.Error("burst: %v", err)
		}
	}()
}

// Close stops any burst and the title view's coordinator.
func (ui *DemoUI) Close() {
	ui.burstMu.Lock()
	if ui.cancelBurst != nil {
		ui.cancelBurst()
		ui.cancelBurst = nil
	}
	ui.burstMu.Unlock()

	ui.title.Close()
}

// TitleView returns the title view
func (ui *DemoUI) TitleView() *widgets.TitleView {
	return ui.title
}

// GetWindow returns the main window
func (ui *DemoUI) GetWindow() fyne.Window {
	return ui.window
}
