package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7E57C2"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	// Heatmap bands, low to high.
	severityNone = lipgloss.NewStyle().Foreground(lipgloss.Color("#EDE7F6"))
	severityLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B39DDB"))
	severityMed  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7E57C2"))
	severityHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A148C"))
)

// terminalNotifier renders store alerts on stderr so they do not mix
// with command output.
type terminalNotifier struct{}

func (terminalNotifier) Alert(title, message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render(title+":"), message)
}

func (terminalNotifier) Warn(title, message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", warnStyle.Render(title+":"), message)
}
