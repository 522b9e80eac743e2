package scatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Value is one parsed cell of a table. The raw text is always kept, the
// number only when the text is numeric.
type Value struct {
	text    string
	num     float64
	numeric bool
}

// ParseValue types a cell once. Surrounding whitespace is ignored when
// looking for a number.
func ParseValue(text string) Value {
	v := Value{text: text, num: math.NaN()}
	if f, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		v.num = f
		v.numeric = true
	}
	return v
}

// Num returns the numeric value, or NaN for missing and non-numeric cells.
func (v Value) Num() float64 {
	if !v.numeric {
		return math.NaN()
	}
	return v.num
}

func (v Value) IsNumber() bool { return v.numeric }

func (v Value) String() string { return v.text }

// Record is one row, keyed by column name.
type Record map[string]Value

// Num returns the numeric value of column col.
func (r Record) Num(col string) float64 {
	return r[col].Num()
}

// Text returns the raw text of column col, empty if the column is missing.
func (r Record) Text(col string) string {
	return r[col].String()
}

// NewRecord builds a record from plain strings, mostly useful for tests and
// programmatic data.
func NewRecord(fields map[string]string) Record {
	r := make(Record, len(fields))
	for k, v := range fields {
		r[k] = ParseValue(v)
	}
	return r
}

// Table holds the columns in file order and the records in row order.
type Table struct {
	Columns []string
	Records []Record
}

// ReadTable parses comma separated data with a header row.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := &Table{Columns: header}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		rec := make(Record, len(header))
		for i, col := range header {
			// Short rows leave the remaining columns missing.
			if i < len(row) {
				rec[col] = ParseValue(row[i])
			}
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

// LoadTable reads the table stored at path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load table %q: %w", path, err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("load table %q: %w", path, err)
	}
	return t, nil
}
