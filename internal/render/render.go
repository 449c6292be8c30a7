// Package render prints fortunes and readings to a terminal.
package render

import (
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/fortunes/internal/deck"
	"github.com/arcanaland/fortunes/internal/fortune"
)

// DefaultWidth is used when the terminal width cannot be read
const DefaultWidth = 80

var (
	titleStyle    = colorize.New(colorize.FgHiWhite, colorize.Bold)
	keywordStyle  = colorize.New(colorize.FgCyan)
	lightStyle    = colorize.New(colorize.FgYellow, colorize.Underline)
	shadowStyle   = colorize.New(colorize.FgMagenta, colorize.Underline)
	subtitleStyle = colorize.New(colorize.Faint)
)

// TerminalWidth returns the width of the terminal behind f
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Fortune writes every keyword and meaning line of a fortune
func Fortune(w io.Writer, f fortune.Fortune, width int) error {
	return write(w, f, f.Keywords, f.Light.Lines, f.Shadow.Lines, width)
}

// Reading writes a drawn reading
func Reading(w io.Writer, r deck.Reading, width int) error {
	return write(w, r.Fortune, r.Keywords, r.Light, r.Shadow, width)
}

func write(w io.Writer, f fortune.Fortune, keywords, light, shadow []string, width int) error {
	// Leave room for the left padding and the "- " bullet
	textWidth := width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Sprint(f.Title) + "\n")
	b.WriteString("  " + subtitleStyle.Sprint(f.Type) + "\n")

	if len(keywords) > 0 {
		b.WriteString("\n")
		for _, line := range wrapText(strings.Join(keywords, " · "), textWidth) {
			b.WriteString("  " + keywordStyle.Sprint(line) + "\n")
		}
	}

	writeSection(&b, lightStyle.Sprint("Light:"), light, textWidth)
	writeSection(&b, shadowStyle.Sprint("Shadow:"), shadow, textWidth)

	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, heading string, lines []string, width int) {
	if len(lines) == 0 {
		return
	}

	b.WriteString("\n")
	b.WriteString("  " + heading + "\n")
	for _, line := range lines {
		for i, wrapped := range wrapText(line, width) {
			if i == 0 {
				b.WriteString("  - " + wrapped + "\n")
			} else {
				b.WriteString("    " + wrapped + "\n")
			}
		}
	}
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			// First word on the line, always add it
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			// Word doesn't fit, start a new line
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
