package export

import (
	"bytes"
	"encoding/csv"
	"io"
)

// WriteCSV writes a header line followed by one comma-delimited line per
// record. An empty sequence produces the header only.
func WriteCSV[T any](w io.Writer, records []T) error {
	l, err := layoutOf[T]()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(l.header()); err != nil {
		return err
	}
	row := make([]string, len(l.columns))
	for _, rec := range records {
		for i, v := range l.fields(rec) {
			row[i] = formatValue(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV renders records into memory.
func CSV[T any](records []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
