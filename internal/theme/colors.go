package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - stage headers
)

// Outcome colors
const (
	ColorCommitted Color = "2"   // Green - change kept
	ColorEscalated Color = "196" // Bright red - commit or revert could not complete
	ColorReverted  Color = "3"   // Yellow - change thrown away
	ColorSkipped   Color = "8"   // Gray - ignored or debounced
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)
