// Package export renders uniform record sequences as delimited text or
// spreadsheets. Columns are the exported struct fields in declaration order,
// named by their `csv` tag; fields tagged `csv:"-"` are skipped.
package export

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the locale-independent layout used for every date column.
const TimeLayout = time.RFC3339

type column struct {
	name  string
	index []int
}

// layout holds the columns of a record type.
type layout struct {
	typ     reflect.Type
	columns []column
}

func layoutOf[T any]() (*layout, error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("export: %s is not a struct", typ)
	}
	l := &layout{typ: typ}
	for _, f := range reflect.VisibleFields(typ) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name := f.Tag.Get("csv")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		l.columns = append(l.columns, column{name: name, index: f.Index})
	}
	return l, nil
}

func (l *layout) header() []string {
	out := make([]string, len(l.columns))
	for i, c := range l.columns {
		out[i] = c.name
	}
	return out
}

// fields returns the column values of record; nil pointers yield nil.
func (l *layout) fields(record any) []any {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return make([]any, len(l.columns))
		}
		v = v.Elem()
	}
	out := make([]any, len(l.columns))
	for i, c := range l.columns {
		fv := v.FieldByIndex(c.index)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		out[i] = fv.Interface()
	}
	return out
}

// formatValue renders v without any locale dependence.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.UTC().Format(TimeLayout)
	case decimal.Decimal:
		return x.String()
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	}
	return fmt.Sprint(v)
}
