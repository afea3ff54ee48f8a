// Package export serializes assembled reports for download. JSON goes out
// verbatim; CSV flattens a report into named sections, one table each.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/bytedance/sonic"
)

// Section is one table of a CSV export.
type Section struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Tabular is implemented by report payloads that can flatten themselves
// into CSV sections.
type Tabular interface {
	Sections() []Section
}

// WriteJSON streams v as JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	return sonic.ConfigDefault.NewEncoder(w).Encode(v)
}

// WriteCSV writes each section as a titled table, separated by a blank row.
func WriteCSV(w io.Writer, sections []Section) error {
	cw := csv.NewWriter(w)
	for i, s := range sections {
		if i > 0 {
			if err := cw.Write([]string{""}); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{s.Name}); err != nil {
			return err
		}
		if len(s.Header) > 0 {
			if err := cw.Write(s.Header); err != nil {
				return err
			}
		}
		for _, row := range s.Rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// Float renders a metric value with two decimals, the precision used across
// CSV exports.
func Float(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Int renders an integer cell.
func Int(v int) string {
	return strconv.Itoa(v)
}
