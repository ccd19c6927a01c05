package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpText = "1-4 status · i interrupt · c clear · b burst · d dropdown · v chevron · a animations · q quit"

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.surface.Snapshot()

	title := titleStyle.Render(m.title)
	if m.showDropdown {
		title += " " + chevronStyle.Render("▾")
	}

	// Empty subtitle keeps its row so the title never jumps.
	subtitle := " "
	if snap.Text != "" && snap.Alpha > 0 {
		subtitle = lipgloss.NewStyle().
			Foreground(fadeColor(kindColor(snap.Kind), snap.Alpha)).
			Render(snap.Text)
	}

	bar := barStyle.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Center, title, subtitle))
	divider := dividerStyle.Render(strings.Repeat("─", m.width))

	var b strings.Builder
	b.WriteString(bar)
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n\n")

	if len(snap.History) > 0 {
		lines := make([]string, 0, len(snap.History))
		for i := len(snap.History) - 1; i >= 0; i-- {
			msg := snap.History[i]
			lines = append(lines, fmt.Sprintf("%s %s  %s", msg.CreatedAt.Format("15:04:05"), msg.Payload.Kind.StatusIcon(), msg.Text()))
		}
		b.WriteString(historyStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n\n")
	}

	status := fmt.Sprintf("%s · pending %d", m.coordinator.Phase(), m.coordinator.Pending())
	if m.bursting {
		status += " · burst running"
	}
	if m.status != "" {
		status += " · " + m.status
	}
	b.WriteString(helpStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Width(m.width).Render(helpText))
	return b.String()
}
