// Package output provides utilities for writing formatted amounts.
package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/iwvelando/endinero/pkg/constants"
	"github.com/olekukonko/tablewriter"
)

// Result pairs an input amount, as given, with its formatted rendering.
type Result struct {
	Input     string
	Formatted string
}

// Write renders results in the named output format.
func Write(w io.Writer, format string, results []Result) error {
	switch format {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, results)
	case constants.OutputFormatCSV:
		return CsvFormat(w, results)
	case constants.OutputFormatPlain:
		return PlainFormat(w, results)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []Result) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Amount", "Formatted"})
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, result := range results {
		table.Append([]string{result.Input, result.Formatted})
	}
	table.Render()
	return nil
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"amount", "formatted"}); err != nil {
		return err
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Input, result.Formatted}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// PlainFormat outputs one formatted amount per line.
func PlainFormat(w io.Writer, results []Result) error {
	for _, result := range results {
		if _, err := fmt.Fprintln(w, result.Formatted); err != nil {
			return err
		}
	}
	return nil
}
