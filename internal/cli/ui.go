package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/planforge/planforge/pkg/plan"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	fmt.Println(styleSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printError prints an error message.
func printError(format string, args ...any) {
	fmt.Println(styleError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

// printFile prints an output file path.
func printFile(path string) {
	fmt.Println(styleDim.Render("  wrote ") + path)
}

// =============================================================================
// Plan Summary
// =============================================================================

// renderSummary formats a terminal summary of a plan: header line with
// footprint and area, then one row per room.
func renderSummary(p plan.FloorPlan) string {
	var b strings.Builder

	name := p.Name
	if name == "" {
		name = "Floor plan"
	}
	b.WriteString(styleTitle.Render(name) + "\n")
	b.WriteString(fmt.Sprintf("  footprint %s x %s m",
		styleNumber.Render(fmt.Sprintf("%.1f", p.Width)),
		styleNumber.Render(fmt.Sprintf("%.1f", p.Depth))))
	if p.LShaped() {
		b.WriteString(styleDim.Render(fmt.Sprintf("  (L-shaped, wing %.1f x %.1f m)",
			*p.GarageWingWidth, *p.GarageWingDepth)))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  habitable area %s m², %s walls\n",
		styleNumber.Render(fmt.Sprintf("%.1f", p.TotalArea)),
		styleNumber.Render(fmt.Sprintf("%d", len(p.Walls)))))

	if len(p.Rooms) == 0 {
		b.WriteString(styleDim.Render("  (no rooms)") + "\n")
		return b.String()
	}

	b.WriteString("\n" + styleHeader.Render(fmt.Sprintf("  %-18s %-15s %9s %12s", "room", "type", "size", "position")) + "\n")
	for _, r := range p.Rooms {
		b.WriteString(fmt.Sprintf("  %-18s %-15s %4.1fx%-4.1f %5.1f,%-5.1f\n",
			truncate(r.Label, 18), r.Type, r.Width, r.Height, r.X, r.Y))
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
