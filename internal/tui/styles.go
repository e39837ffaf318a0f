// Package tui provides the Bubble Tea TUI for composing plans and
// running workout sessions.
package tui

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
var (
	colorForeground = lipgloss.Color("#fcfcfa")
	colorYellow     = lipgloss.Color("#ffd866")
	colorOrange     = lipgloss.Color("#fc9867")
	colorRed        = lipgloss.Color("#ff6188")
	colorMagenta    = lipgloss.Color("#ab9df2")
	colorGreen      = lipgloss.Color("#a9dc76")
	colorCyan       = lipgloss.Color("#78dce8")
	colorGray       = lipgloss.Color("#727072")
	colorDimGray    = lipgloss.Color("#5b595c")
)

// Panel styles
var (
	// headerStyle is used for the header panel border
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorDimGray).
			Padding(0, 1)

	headerLabelStyle = lipgloss.NewStyle().
				Foreground(colorGray)

	headerValueStyle = lipgloss.NewStyle().
				Foreground(colorForeground).
				Bold(true)

	// panelStyle is used for the workout body
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorDimGray).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorMagenta).
			Bold(true)

	// dialogStyle frames confirmations, the picker and the name prompt
	dialogStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(colorYellow).
			Padding(0, 1)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)
)

// Workout body styles
var (
	exerciseStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	setStyle = lipgloss.NewStyle().
			Foreground(colorForeground)

	cursorStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	fieldStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	activeFieldStyle = lipgloss.NewStyle().
				Foreground(colorOrange).
				Underline(true)

	completedStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	pendingStyle = lipgloss.NewStyle().
			Foreground(colorDimGray)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)
)

// Timer styles
var (
	clockRunningStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	clockPausedStyle = lipgloss.NewStyle().
				Foreground(colorGray)

	restStyle = lipgloss.NewStyle().
			Foreground(colorOrange).
			Bold(true)
)

// Message styles
var (
	noticeStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)
