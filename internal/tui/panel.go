package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// ScrollablePanel is a titled viewport that keeps a given line visible.
type ScrollablePanel struct {
	Title    string
	viewport viewport.Model
	width    int
	height   int
}

// NewScrollablePanel creates a new scrollable panel.
func NewScrollablePanel(title string) ScrollablePanel {
	return ScrollablePanel{
		Title:    title,
		viewport: viewport.New(80, 10),
	}
}

// SetSize sets the panel dimensions.
func (p *ScrollablePanel) SetSize(width, height int) {
	p.width = width
	p.height = height

	// Account for title line and borders
	viewportWidth := width - 4
	viewportHeight := height - 4
	if viewportWidth < 10 {
		viewportWidth = 10
	}
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	p.viewport.Width = viewportWidth
	p.viewport.Height = viewportHeight
}

// SetContent replaces the content and scrolls so line is visible.
func (p *ScrollablePanel) SetContent(content string, line int) {
	p.viewport.SetContent(content)
	top := p.viewport.YOffset
	switch {
	case line < top:
		p.viewport.SetYOffset(line)
	case line >= top+p.viewport.Height:
		p.viewport.SetYOffset(line - p.viewport.Height + 1)
	}
}

// View renders the panel.
func (p ScrollablePanel) View() string {
	title := panelTitleStyle.Render(p.Title)
	body := lipgloss.JoinVertical(lipgloss.Left, title, p.viewport.View())
	w := p.width - 2
	if w < 12 {
		w = 12
	}
	return panelStyle.Width(w).Render(body)
}
