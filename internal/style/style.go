package style

import "github.com/charmbracelet/lipgloss"

var (
	// Board
	Wall      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	Floor     = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	Crowd     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204")) // Pinkish-reddish purple
	Active    = lipgloss.NewStyle().Bold(true).Reverse(true)
	Creatures = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // Bright yellow
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")),  // Bright cyan
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),  // Bright green
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),  // Bright magenta
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // Bright red
	}

	// Status line
	Moves    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	NextMove = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Skipped  = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241"))
	Paused   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228"))

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Creature returns the style for creature index i.
func Creature(i int) lipgloss.Style {
	return Creatures[i%len(Creatures)]
}
