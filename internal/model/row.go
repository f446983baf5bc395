package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Row is one record of a SELECT * result. Columns keep the order reported
// by the database so the JSON object reads like the table definition.
// Values are passed through as returned by the driver, except []byte which
// is rendered as a string.
type Row struct {
	Columns []string
	Values  []any
}

// NewRow pairs columns with values. Extra values are dropped; missing ones
// read as NULL.
func NewRow(columns []string, values []any) Row {
	vals := make([]any, len(columns))
	for i := range columns {
		if i < len(values) {
			vals[i] = normalize(values[i])
		}
	}
	return Row{Columns: columns, Values: vals}
}

func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// Get returns the value of a column and whether the column exists.
func (r Row) Get(column string) (any, bool) {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i], true
		}
	}
	return nil, false
}

// Int reads a column as an integer; text holding a number is accepted.
func (r Row) Int(column string) int64 {
	v, _ := r.Get(column)
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		i, _ := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i
	}
	return 0
}

// Float reads a column as a float; text holding a number is accepted.
func (r Row) Float(column string) float64 {
	v, _ := r.Get(column)
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f
	}
	return 0
}

// String reads a column as text. Numbers are formatted, NULL is "".
func (r Row) String(column string) string {
	v, _ := r.Get(column)
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// MarshalJSON writes the row as an object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object back into a Row, keeping key order.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("row: expected JSON object")
	}

	r.Columns = r.Columns[:0]
	r.Values = r.Values[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		if n, ok := v.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				v = i
			} else if f, err := n.Float64(); err == nil {
				v = f
			}
		}
		r.Columns = append(r.Columns, key)
		r.Values = append(r.Values, v)
	}
	_, err = dec.Token()
	return err
}
