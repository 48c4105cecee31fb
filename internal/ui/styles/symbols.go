package styles

import "charm.land/lipgloss/v2"

// Result symbols (ASCII-safe fallbacks are not needed; these render in
// any UTF-8 terminal)
const (
	SymbolOk   = "✔"
	SymbolFail = "✘"
	SymbolWarn = "!"
)

// colorEnabled tracks whether symbols and text are styled. Disabled
// when stdout is not a terminal.
var colorEnabled = true

// SetColorEnabled enables or disables color styling.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color styling is enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// Ok returns the success symbol, styled when color is enabled.
func Ok() string {
	return render(SuccessStyle, SymbolOk)
}

// Fail returns the failure symbol, styled when color is enabled.
func Fail() string {
	return render(ErrorStyle, SymbolFail)
}

// Warn returns the warning symbol, styled when color is enabled.
func Warn() string {
	return render(WarningStyle, SymbolWarn)
}

// OkText styles text with the success color.
func OkText(s string) string {
	return render(SuccessStyle, s)
}

// FailText styles text with the error color.
func FailText(s string) string {
	return render(ErrorStyle, s)
}

// WarnText styles text with the warning color.
func WarnText(s string) string {
	return render(WarningStyle, s)
}

// MutedText styles text with the muted color.
func MutedText(s string) string {
	return render(MutedStyle, s)
}

func render(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}
