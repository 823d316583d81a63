package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette. Scene-graph output leans on color to separate
// structure (titles, property names) from bookkeeping (counts, paths,
// cache state), so the same roles are reused across every command.
var (
	colorCyan   = lipgloss.Color("36")  // titles, property names
	colorGreen  = lipgloss.Color("35")  // success, cache hits
	colorYellow = lipgloss.Color("220") // warnings (fallback backends, empty stores)
	colorRed    = lipgloss.Color("167") // validation and render failures
	colorBlue   = lipgloss.Color("75")  // suggested commands
	colorWhite  = lipgloss.Color("255") // values: names, paths, counts
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // link names, separators, trails
)

// Styles shared with the browse TUI.
var (
	// StyleTitle for headings such as the document summary line.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values (property types, the browse
	// cursor).
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary text: link kinds, breadcrumbs, durations.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for primary values: names, paths, counts.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for confirmation lines.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for degraded-but-continuing conditions.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// Command-local styles.
var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// printSuccess reports a completed operation, e.g. a saved snapshot or a
// validated document.
func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printError reports a failed operation.
func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

// printWarning reports a degraded condition the command is working around,
// e.g. Redis unreachable and the file cache standing in.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo reports neutral status, e.g. an empty snapshot store.
func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line under a status message.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written artifact path under a render result.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints one labeled field of a document summary.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints the document's shape and where the artifacts came
// from, e.g. "7 properties · 9 links · cached".
func printStats(propertyCount, linkCount int, cached bool) {
	var parts []string
	if propertyCount > 0 {
		parts = append(parts, fmt.Sprintf("%d properties", propertyCount))
	}
	if linkCount > 0 {
		parts = append(parts, fmt.Sprintf("%d links", linkCount))
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}
	parts = append(parts, statusStyle.Render(status))

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// printNextStep suggests the command that usually follows, e.g. render
// after a successful validate.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
