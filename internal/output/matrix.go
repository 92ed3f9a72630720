// internal/output/matrix.go
package output

import (
	"fmt"
	"io"
	"strings"

	"popsum-core/matrix"
	"popsum/internal/jsonutil"
)

// WriteMatrix writes a population x population matrix as TSV. Rows and
// columns follow the matrix's lexicographic population order; holes are NA.
func WriteMatrix(w io.Writer, m *matrix.Matrix, header bool) error {
	if header {
		if _, err := fmt.Fprintf(w, "population\t%s\n", strings.Join(m.Populations, "\t")); err != nil {
			return err
		}
	}
	for _, a := range m.Populations {
		cells := make([]string, 0, len(m.Populations)+1)
		cells = append(cells, a)
		for _, b := range m.Populations {
			cells = append(cells, m.Cell(a, b).String())
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// WriteMatrixJSON writes the matrix as an object keyed by population, with
// null for missing cells.
func WriteMatrixJSON(w io.Writer, m *matrix.Matrix) error {
	type cellmap = map[string]any
	out := struct {
		Metric      string   `json:"metric"`
		Populations []string `json:"populations"`
		Cells       cellmap  `json:"cells"`
	}{Metric: m.Metric, Populations: m.Populations, Cells: cellmap{}}

	for _, a := range m.Populations {
		row := cellmap{}
		for _, b := range m.Populations {
			row[b] = m.Cell(a, b)
		}
		out.Cells[a] = row
	}
	return jsonutil.EncodePretty(w, out)
}
