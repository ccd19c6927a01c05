// Package tui hosts the title view in a terminal with bubbletea.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"navtitle/internal/config"
	"navtitle/internal/demo"
	"navtitle/internal/logger"
	"navtitle/internal/subtitle"
	"navtitle/models"
)

// views offered by the title dropdown
var views = []string{"Inbox", "Archive", "Drafts", "Sent"}

type tickMsg time.Time

// DropdownMsg is emitted when the user opens the title dropdown.
type DropdownMsg struct{}

type burstDoneMsg struct{ err error }

// Model is the bubbletea model for the terminal title view.
type Model struct {
	coordinator *subtitle.Coordinator
	surface     *Surface
	log         *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	title        string
	showDropdown bool
	view         int
	width        int
	bursting     bool
	status       string
	quitting     bool
}

// New creates a model. opts is passed to the coordinator after the surface
// hook is installed; its Scheduler may be replaced in tests.
func New(cfg *models.Config, opts subtitle.Options) Model {
	surface := NewSurface(opts.Now)

	onDisplay := opts.OnDisplay
	opts.OnDisplay = func(m *models.Message) {
		surface.Observe(m)
		if onDisplay != nil {
			onDisplay(m)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		coordinator:  subtitle.NewCoordinator(surface, opts),
		surface:      surface,
		log:          logger.Default().Named("tui"),
		ctx:          ctx,
		cancel:       cancel,
		title:        cfg.Title,
		showDropdown: cfg.ShowDropdown,
		width:        config.TUIMinWidth,
	}
	for i, v := range views {
		if v == cfg.Title {
			m.view = i
		}
	}
	return m
}

// Coordinator returns the coordinator driving the subtitle line.
func (m Model) Coordinator() *subtitle.Coordinator {
	return m.coordinator
}

// Close stops any burst and the coordinator.
func (m Model) Close() {
	m.cancel()
	m.coordinator.Close()
}

func tick() tea.Cmd {
	return tea.Tick(config.TUITickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, config.TUIMinWidth)
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case DropdownMsg:
		if !m.showDropdown {
			return m, nil
		}
		m.view = (m.view + 1) % len(views)
		m.title = views[m.view]
		m.coordinator.SetSubtitle(models.Standard("Switched to "+m.title), subtitle.WithoutFeedback())
		return m, nil

	case burstDoneMsg:
		m.bursting = false
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.log.Error("burst: %v", msg.err)
			m.status = "burst failed: " + msg.err.Error()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	send := func(kind models.Kind) {
		p, opts := demo.Sample(kind)
		m.coordinator.SetSubtitle(p, opts...)
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case "1":
		send(models.KindStandard)
	case "2":
		send(models.KindSuccess)
	case "3":
		send(models.KindWarning)
	case "4":
		send(models.KindFailure)
	case "i":
		p, opts := demo.Interrupt()
		m.coordinator.SetSubtitle(p, opts...)
	case "c":
		m.coordinator.Clear()
	case "a":
		enabled := !m.coordinator.AnimationsEnabled()
		m.coordinator.SetAnimationsEnabled(enabled)
		if enabled {
			m.status = "animations on"
		} else {
			m.status = "animations off"
		}
	case "v":
		m.showDropdown = !m.showDropdown
	case "d", "enter":
		if m.showDropdown {
			return m, func() tea.Msg { return DropdownMsg{} }
		}
	case "b":
		if m.bursting {
			return m, nil
		}
		m.bursting = true
		return m, m.burst()
	}
	return m, nil
}

// burst runs the producers in the command goroutine and reports back when
// every event has been handed to the coordinator.
func (m Model) burst() tea.Cmd {
	ctx, coordinator := m.ctx, m.coordinator
	return func() tea.Msg {
		err := demo.Burst(ctx, coordinator, demo.BurstEvents(config.BurstMessages))
		return burstDoneMsg{err: err}
	}
}

// Run starts the terminal host and blocks until the user quits.
func Run(ctx context.Context, cfg *models.Config, opts subtitle.Options) error {
	m := New(cfg, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
