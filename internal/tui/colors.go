package tui

// Color constants for the lancer TUI theme
const (
	// Base
	ColorBorder = "#2E4057" // slate blue-grey

	// Text
	ColorPrimaryText   = "#E8EDF4" // titles, user input
	ColorSecondaryText = "#9AA8BC" // supporting text
	ColorDisabledText  = "#5F6B7C" // muted values
	ColorHelpText      = "240"     // dark grey help bar

	// Accent (teal theme)
	ColorAccentMain   = "#0FA3A3" // headers, active borders
	ColorAccentBright = "#5EEAD4" // highlights, the running clock

	// State
	ColorError   = "#F87171" // failures
	ColorSuccess = "#34D399" // confirmations
	ColorWarning = "#FBBF24" // cautions
)
