package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header displays the plan name, the clocks and set progress.
type Header struct {
	Name        string
	Mode        Mode
	Elapsed     int
	ClockOn     bool
	Rest        int
	RestOn      bool
	Done, Total int
	width       int
}

// SetWidth sets the component width.
func (h *Header) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h Header) View() string {
	contentWidth := h.width - 4 // Account for border padding
	if contentWidth < 40 {
		contentWidth = 40
	}

	name := h.Name
	if strings.TrimSpace(name) == "" {
		name = "(unnamed)"
	}
	left := headerLabelStyle.Render(h.Mode.String()+": ") + headerValueStyle.Render(name)

	var right []string
	if h.Mode == ModeExecute {
		clock := clockPausedStyle
		if h.ClockOn {
			clock = clockRunningStyle
		}
		right = append(right,
			headerLabelStyle.Render("time ")+clock.Render(formatClock(h.Elapsed)),
			headerLabelStyle.Render("sets ")+headerValueStyle.Render(fmt.Sprintf("%d/%d", h.Done, h.Total)),
		)
		if h.RestOn || h.Rest > 0 {
			right = append(right, headerLabelStyle.Render("rest ")+restStyle.Render(formatClock(h.Rest)))
		}
	}
	rightContent := strings.Join(right, headerLabelStyle.Render("  |  "))

	spacing := contentWidth - lipgloss.Width(left) - lipgloss.Width(rightContent)
	if spacing < 1 {
		spacing = 1
	}

	content := left + strings.Repeat(" ", spacing) + rightContent
	return headerStyle.Width(contentWidth).Render(content)
}

// formatClock renders seconds as m:ss, or h:mm:ss past an hour.
func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
