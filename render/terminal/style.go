package terminal

import "github.com/charmbracelet/lipgloss"

var (
	// Feed banner in blue, entry titles in emerald.
	colorFeed  = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	colorEntry = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}

	// UI colors.
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorLink   = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"} // purple
)

var (
	styleFeed  = lipgloss.NewStyle().Foreground(colorFeed).Bold(true)
	styleTitle = lipgloss.NewStyle().Foreground(colorEntry).Bold(true)
	styleBody  = lipgloss.NewStyle().Foreground(colorBright)
	styleMeta  = lipgloss.NewStyle().Foreground(colorDim)
	styleLink  = lipgloss.NewStyle().Foreground(colorLink).Underline(true)

	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
)
