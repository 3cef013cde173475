package tui

import (
	"github.com/charmbracelet/lipgloss"

	"dashboard/internal/dashboard"
)

// Styles used by the dashboard views.
type Styles struct {
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	Card        lipgloss.Style
	FocusedCard lipgloss.Style
	CardTitle   lipgloss.Style
	Badge       lipgloss.Style
	Label       lipgloss.Style
	Selected    lipgloss.Style
	Done        lipgloss.Style
	Button      lipgloss.Style
	ActiveBtn   lipgloss.Style
	Alert       lipgloss.Style
	Error       lipgloss.Style
	Status      lipgloss.Style
}

// NewStyles returns the default styles.
func NewStyles() Styles {
	border := lipgloss.RoundedBorder()
	card := lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Subtle:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Card:        card,
		FocusedCard: card.BorderForeground(lipgloss.Color("63")),
		CardTitle:   lipgloss.NewStyle().Bold(true),
		Badge:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250")).Padding(0, 1),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Done:        lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("244")),
		Button:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		ActiveBtn:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("63")).Bold(true).Padding(0, 1),
		Alert:       lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("196")).Padding(1, 3),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

var priorityColors = map[dashboard.PriorityColor]lipgloss.Color{
	dashboard.ColorRed:    lipgloss.Color("196"),
	dashboard.ColorYellow: lipgloss.Color("220"),
	dashboard.ColorGreen:  lipgloss.Color("42"),
	dashboard.ColorGray:   lipgloss.Color("245"),
}

// PriorityTag renders a task priority with its tag color.
func (s Styles) PriorityTag(p dashboard.Priority) string {
	color := priorityColors[dashboard.PriorityColorFor(p)]
	return lipgloss.NewStyle().Foreground(color).Render("[" + string(p) + "]")
}
