package styles

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Theme is the bubbletint theme picked in the config. When nil the Tokyo
// Night palette below is used.
var Theme tint.Tint

// Tokyo Night Color Palette
var (
	TokyoNightBlue   lipgloss.TerminalColor = lipgloss.Color("#7AA2F7")
	TokyoNightGreen  lipgloss.TerminalColor = lipgloss.Color("#9EEB49")
	TokyoNightRed    lipgloss.TerminalColor = lipgloss.Color("#F7768E")
	TokyoNightPurple lipgloss.TerminalColor = lipgloss.Color("#BB9AF7")
	TokyoNightGray   lipgloss.TerminalColor = lipgloss.Color("#A9B1D6")
)

// Define styles using lipgloss
var (
	AppStyle            lipgloss.Style
	HeaderStyle         lipgloss.Style
	HeaderBarStyle      lipgloss.Style
	SubHeaderStyle      lipgloss.Style
	StatusStyle         lipgloss.Style
	ErrorStyle          lipgloss.Style
	DetailStyle         lipgloss.Style
	TitleStyle          lipgloss.Style
	DescriptionStyle    lipgloss.Style
	SelectedItemStyle   lipgloss.Style
	UnselectedItemStyle lipgloss.Style
	HelpStyle           lipgloss.Style
	ActivePager         lipgloss.Style
	InactivePager       lipgloss.Style
)

func init() {
	LoadStyle()
}

// LoadStyle builds the styles from Theme, falling back to the default palette.
func LoadStyle() {
	blue, green, red, purple, gray := TokyoNightBlue, TokyoNightGreen, TokyoNightRed, TokyoNightPurple, TokyoNightGray
	if Theme != nil {
		blue, green, red, purple, gray = Theme.Blue(), Theme.Green(), Theme.Red(), Theme.Purple(), Theme.BrightBlack()
	}

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(purple).
		Bold(true)

	HeaderBarStyle = lipgloss.NewStyle().
		Foreground(gray)

	SubHeaderStyle = lipgloss.NewStyle().
		Foreground(blue).
		Bold(true)

	StatusStyle = lipgloss.NewStyle().
		Foreground(gray)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(red).
		Bold(true)

	DetailStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true).
		BorderForeground(blue).
		Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().Bold(true)
	DescriptionStyle = lipgloss.NewStyle().Foreground(gray)
	SelectedItemStyle = lipgloss.NewStyle().Foreground(blue)
	UnselectedItemStyle = lipgloss.NewStyle()
	HelpStyle = lipgloss.NewStyle().Foreground(gray)
	ActivePager = lipgloss.NewStyle().Foreground(green)
	InactivePager = lipgloss.NewStyle().Foreground(gray)
}
