package formatter

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-plan-compare/internal/core/compare"
)

type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

// Format writes the grouped columns as indented JSON
func (f *JSONFormatter) Format(result compare.Result) error {
	data, err := sonic.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.w.Write(data)
	return err
}
