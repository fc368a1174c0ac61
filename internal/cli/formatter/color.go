package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wardenlabs/warden/internal/domain"
	"github.com/wardenlabs/warden/internal/hooks"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RiskIndicator returns a colored risk indicator string such as "● DESTRUCTIVE".
func RiskIndicator(risk hooks.RiskLevel) string {
	switch risk {
	case hooks.RiskDestructive:
		return StyleRed.Render("● DESTRUCTIVE")
	case hooks.RiskSafe:
		return StyleGreen.Render("● SAFE")
	default:
		return StyleYellow.Render("● UNKNOWN")
	}
}

// StatusPill renders an intent status in its conventional color.
func StatusPill(status domain.IntentStatus) string {
	switch status {
	case domain.IntentCompleted:
		return StyleGreen.Render(string(status))
	case domain.IntentInProgress:
		return StyleBlue.Render(string(status))
	case domain.IntentBlocked:
		return StyleRed.Render(string(status))
	case domain.IntentPending:
		return StyleYellow.Render(string(status))
	default:
		return StyleDim.Render(string(status))
	}
}

// PriorityLabel renders an intent priority in its conventional color.
func PriorityLabel(p domain.IntentPriority) string {
	switch p {
	case domain.PriorityCritical:
		return StyleRed.Render(string(p))
	case domain.PriorityHigh:
		return StyleYellow.Render(string(p))
	case domain.PriorityLow:
		return StyleDim.Render(string(p))
	default:
		return StyleFg.Render(string(p))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
