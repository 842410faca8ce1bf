package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fms-dashboard/internal/stage"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	stageStyles = map[stage.Stage]lipgloss.Style{
		stage.NotStarted: mutedStyle,
		stage.Stage1:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		stage.Stage2:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		stage.Stage3:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		stage.Completed:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

func renderStage(s stage.Stage) string {
	return stageStyles[s].Render(s.String())
}

// table renders left-aligned columns separated by two spaces. Cells may
// already carry styling, so widths are measured with lipgloss.Width.
type table struct {
	headers []string
	rows    [][]string
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) write(w io.Writer) error {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if cw := lipgloss.Width(cell); i < len(widths) && cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	line := func(cells []string, style func(string) string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			pad := widths[i] - lipgloss.Width(cell)
			parts[i] = style(cell) + strings.Repeat(" ", pad)
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	if _, err := fmt.Fprintln(w, line(t.headers, func(s string) string { return headerStyle.Render(s) })); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, line(row, func(s string) string { return s })); err != nil {
			return err
		}
	}
	return nil
}
