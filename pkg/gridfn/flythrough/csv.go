package flythrough

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Fixed leading columns of the CSV layout.
var csvHeader = []string{"net_idx", "utc_time", "c1", "c2", "c3"}

// WriteCSV writes a flythrough result as CSV. Variable columns follow the
// trajectory columns in sorted name order, with the unit in brackets:
// "rho[kg/m^3]". The coordinate-system label is written as a leading
// comment row.
func WriteCSV(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"#coord_system", res.CoordSystem}); err != nil {
		return fmt.Errorf("write coord system: %w", err)
	}

	names := make([]string, 0, len(res.Values))
	for name := range res.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	header := append([]string{}, csvHeader...)
	for _, name := range names {
		header = append(header, fmt.Sprintf("%s[%s]", name, res.Units[name]))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(header))
	for i := range res.Time {
		row[0] = strconv.Itoa(res.NetIdx[i])
		row[1] = formatFloat(res.Time[i])
		row[2] = formatFloat(res.C1[i])
		row[3] = formatFloat(res.C2[i])
		row[4] = formatFloat(res.C3[i])
		for j, name := range names {
			row[5+j] = formatFloat(res.Values[name][i])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a result previously written by WriteCSV.
// The RunID is not persisted; the returned result has an empty one.
func ReadCSV(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	res := &Result{
		Values: make(map[string][]float64),
		Units:  make(map[string]string),
	}

	first, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(first) == 2 && first[0] == "#coord_system" {
		res.CoordSystem = first[1]
		first, err = cr.Read()
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
	}

	if len(first) < len(csvHeader) {
		return nil, fmt.Errorf("header has %d columns, want at least %d", len(first), len(csvHeader))
	}
	names := make([]string, 0, len(first)-len(csvHeader))
	for _, col := range first[len(csvHeader):] {
		name, unit := splitUnit(col)
		names = append(names, name)
		res.Units[name] = unit
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(row) != len(first) {
			return nil, fmt.Errorf("row has %d columns, want %d", len(row), len(first))
		}

		idx, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("parse net_idx %q: %w", row[0], err)
		}
		res.NetIdx = append(res.NetIdx, idx)

		cols, err := parseFloats(row[1:])
		if err != nil {
			return nil, err
		}
		res.Time = append(res.Time, cols[0])
		res.C1 = append(res.C1, cols[1])
		res.C2 = append(res.C2, cols[2])
		res.C3 = append(res.C3, cols[3])
		for j, name := range names {
			res.Values[name] = append(res.Values[name], cols[4+j])
		}
	}
	return res, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseFloats(cols []string) ([]float64, error) {
	out := make([]float64, len(cols))
	for i, c := range cols {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %q: %w", c, err)
		}
		out[i] = v
	}
	return out, nil
}

// splitUnit parses "rho[kg/m^3]" into ("rho", "kg/m^3").
func splitUnit(col string) (string, string) {
	open := strings.IndexByte(col, '[')
	if open < 0 || !strings.HasSuffix(col, "]") {
		return col, ""
	}
	return col[:open], col[open+1 : len(col)-1]
}
