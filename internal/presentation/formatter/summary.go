package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-plan-compare/internal/core/compare"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// SummaryFormatter writes a short per-tool report of the plans in range.
type SummaryFormatter struct {
	w io.Writer
}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{w: w}
}

// Format writes the budget, the filter and the price range of every tool.
func (f *SummaryFormatter) Format(result compare.Result) error {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("Plan Comparison Summary\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&b, "Budget: up to %s per month\n", util.FormatCurrency(result.Budget))
	fmt.Fprintf(&b, "Plan Type: %s\n", result.Filter.Label())
	fmt.Fprintf(&b, "Plans in range: %d\n\n", result.Count())

	for _, col := range result.Columns {
		fmt.Fprintf(&b, "%s:\n", col.Tool.DisplayName())
		if len(col.Entries) == 0 {
			b.WriteString("  No plans available within budget\n\n")
			continue
		}
		// Columns are sorted most expensive first
		priciest := col.Entries[0].Plan
		cheapest := col.Entries[len(col.Entries)-1].Plan
		fmt.Fprintf(&b, "  Plans:        %d\n", len(col.Entries))
		fmt.Fprintf(&b, "  Cheapest:     %s (%s)\n", cheapest.Name, util.FormatPrice(cheapest.Price))
		fmt.Fprintf(&b, "  Top tier:     %s (%s)\n\n", priciest.Name, util.FormatPrice(priciest.Price))
	}

	b.WriteString(strings.Repeat("=", 60) + "\n")
	_, err := io.WriteString(f.w, b.String())
	return err
}
