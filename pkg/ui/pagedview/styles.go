package pagedview

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	gray    = lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"}
	fuchsia = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}

	grayFg    = lipgloss.NewStyle().Foreground(gray).Render
	fuchsiaFg = lipgloss.NewStyle().Foreground(fuchsia).Render

	statusStyle = lipgloss.NewStyle().Foreground(gray)
)
