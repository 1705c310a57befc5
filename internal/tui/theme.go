package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorAccent).
			Bold(true).
			Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	okChipStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorSuccess).
			Padding(0, 1)

	guestChipStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorOverlay0).
			Padding(0, 1)

	userMsgStyle = lipgloss.NewStyle().
			Foreground(colorLavender)

	assistantMsgStyle = lipgloss.NewStyle().
				Foreground(colorText)

	systemMsgStyle = lipgloss.NewStyle().
			Foreground(colorError)

	interruptChipStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorPeach).
				Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 1)

	footerBusyStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Background(colorMantle).
			Bold(true).
			Padding(0, 1)
)
