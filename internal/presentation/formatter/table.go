package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-plan-compare/internal/core/compare"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// maxCellWidth caps the free-text columns so rows stay on one line
const maxCellWidth = 40

type TableFormatter struct {
	w       io.Writer
	headers []string
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		w: w,
		headers: []string{
			"Tool", "Plan", "Type", "Price", "Models", "Limits",
		},
	}
}

func (f *TableFormatter) Format(result compare.Result) error {
	rows := Rows(result)
	cells := make([][]string, 0, len(rows))
	for i, row := range rows {
		values := f.values(row)
		// Only the first row of each tool names the tool
		if i > 0 && rows[i-1].Tool == row.Tool {
			values[0] = ""
		}
		cells = append(cells, values)
	}
	total := []string{"Total", strconv.Itoa(len(rows)) + " plans", "", "", "", ""}

	// Calculate optimal column widths based on content
	widths := f.calculateColumnWidths(append(cells, total))

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")
	for _, values := range cells {
		f.printRow(values, widths)
	}
	if len(cells) > 0 {
		f.printBorder(widths, "middle")
	}
	f.printRow(total, widths)
	f.printBorder(widths, "bottom")
	return nil
}

func (f *TableFormatter) values(row Row) []string {
	models, hidden := visibleModels(row.Models)
	modelStr := strings.Join(models, ", ")
	if hidden > 0 {
		modelStr += " " + util.FormatOverflow(hidden, "")
	}
	return []string{
		row.Tool.DisplayName(),
		row.Name,
		row.Type.Label(),
		util.FormatPrice(row.Price),
		util.Truncate(modelStr, maxCellWidth),
		util.Truncate(row.Limits, maxCellWidth),
	}
}

func visibleModels(models []string) ([]string, int) {
	return model.Plan{Models: models}.VisibleModels()
}

// calculateColumnWidths determines optimal width for each column based on content
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))

	// Initialize with header widths
	for i, header := range f.headers {
		widths[i] = runewidth.StringWidth(header)
	}

	for _, values := range rows {
		for i, value := range values {
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Apply minimum widths for readability
	for i := range widths {
		if widths[i] < 5 {
			widths[i] = 5
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right, separator string

	switch borderType {
	case "top":
		left, middle, right, separator = "┌", "┬", "┐", "─"
	case "middle":
		left, middle, right, separator = "├", "┼", "┤", "─"
	case "bottom":
		left, middle, right, separator = "└", "┴", "┘", "─"
	}

	var b strings.Builder
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat(separator, width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	fmt.Fprintln(f.w, b.String())
}

// printRow prints a row; the price column is right-aligned
func (f *TableFormatter) printRow(values []string, widths []int) {
	var b strings.Builder
	b.WriteString("│")
	for i, value := range values {
		b.WriteString(" ")
		if i == 3 {
			b.WriteString(runewidth.FillLeft(value, widths[i]))
		} else {
			b.WriteString(runewidth.FillRight(value, widths[i]))
		}
		b.WriteString(" │")
	}
	fmt.Fprintln(f.w, b.String())
}
