package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.apply(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.apply(fmt.Sprintf(format, a...))
}

func (f Formatter) apply(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats runnable commands. Yellow, or `backticks`.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file paths. Yellow.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag formats command-line flags. Yellow.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	// Success formats success indicators. Green.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error indicators. Red.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats warnings. Yellow.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats hints and arrows. Cyan.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats cipher names and key values. Cyan, or 'quotes'.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Heading formats section titles. Bold.
	Heading = Formatter{color.New(color.Bold), "", ""}

	// Muted formats secondary details. Gray, or (parentheses).
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Done prefixes msg with a green check mark.
func Done(msg string) string { return Success.Sprint("✓") + " " + msg }

// Failed prefixes msg with a red cross.
func Failed(msg string) string { return Error.Sprint("✗") + " " + msg }

// Hint prefixes msg with a cyan arrow.
func Hint(msg string) string { return Info.Sprint("→") + " " + msg }

// Caution prefixes msg with a yellow warning sign.
func Caution(msg string) string { return Warning.Sprint("⚠") + " " + msg }
