package repl

import "github.com/charmbracelet/lipgloss"

var (
	colorPrompt = lipgloss.Color("#8B5CF6") // Violet
	colorTrue   = lipgloss.Color("#10B981") // Emerald
	colorFalse  = lipgloss.Color("#F59E0B") // Amber
	colorError  = lipgloss.Color("#EF4444") // Red
)

// styles groups the lipgloss styles used by the shell.
type styles struct {
	prompt    lipgloss.Style
	truth     lipgloss.Style
	falsehood lipgloss.Style
	problem   lipgloss.Style
}

// newStyles builds the style set; with noColor every style is empty, so
// rendering passes text through unchanged.
func newStyles(noColor bool) styles {
	if noColor {
		return styles{
			prompt:    lipgloss.NewStyle(),
			truth:     lipgloss.NewStyle(),
			falsehood: lipgloss.NewStyle(),
			problem:   lipgloss.NewStyle(),
		}
	}
	return styles{
		prompt:    lipgloss.NewStyle().Foreground(colorPrompt).Bold(true),
		truth:     lipgloss.NewStyle().Foreground(colorTrue),
		falsehood: lipgloss.NewStyle().Foreground(colorFalse),
		problem:   lipgloss.NewStyle().Foreground(colorError),
	}
}
