package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/penwyp/go-plan-compare/internal/core/compare"
)

type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(result compare.Result) error {
	w := csv.NewWriter(f.w)

	headers := []string{
		"Tool", "ID", "Plan", "Type", "Price (USD)", "Models", "Limits", "Features",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range Rows(result) {
		record := []string{
			row.Tool.ID(),
			row.ID,
			row.Name,
			string(row.Type),
			strconv.Itoa(row.Price),
			strings.Join(row.Models, "; "),
			row.Limits,
			strings.Join(row.Features, "; "),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
