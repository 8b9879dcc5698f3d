package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reflow/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
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
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ReasonLabel returns a colored label for a change reason.
func ReasonLabel(r domain.ChangeReason) string {
	switch r {
	case domain.ReasonDependencyPush:
		return StyleBlue.Render("dependency")
	case domain.ReasonConflictPush:
		return StyleYellow.Render("conflict")
	case domain.ReasonRecalculated:
		return StyleDim.Render("recalculated")
	default:
		return StyleDim.Render(string(r))
	}
}

// ValidIndicator renders an audit verdict such as "● VALID".
func ValidIndicator(valid bool) string {
	if valid {
		return StyleGreen.Render("● VALID")
	}
	return StyleRed.Render("● VIOLATIONS")
}

// DelayCell colors a signed minute delta: red for late, green for early,
// dim for zero.
func DelayCell(min int) string {
	switch {
	case min > 0:
		return StyleRed.Render(fmt.Sprintf("+%d min", min))
	case min < 0:
		return StyleGreen.Render(fmt.Sprintf("%d min", min))
	default:
		return StyleDim.Render("0 min")
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
