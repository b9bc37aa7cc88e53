// Package schema describes each persisted concept once (columns, relations,
// projection profiles) and derives row decoding, DTO projection and
// validation from that description.
package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind is the semantic type of a column.
type Kind int

const (
	KindID Kind = iota
	KindText
	KindInteger
	KindLong
	KindFloat
	KindInstant
)

func (k Kind) String() string {
	switch k {
	case KindID:
		return "id"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindInstant:
		return "instant"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// CoercionError reports a column value that cannot be read as the declared kind.
type CoercionError struct {
	Column string
	Kind   Kind
	Value  any
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("schema: column %q: cannot read %T as %s", e.Column, e.Value, e.Kind)
}

// timestamp layouts accepted from text columns (sqlite stores datetimes as text).
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Coerce converts a driver value into the Go type of kind:
// int64 for KindID and KindLong, int for KindInteger, string for KindText,
// float32 for KindFloat and time.Time for KindInstant. nil stays nil.
func Coerce(v any, kind Kind) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch kind {
	case KindID, KindLong:
		n, ok := toInt64(v)
		if !ok {
			return nil, &CoercionError{Kind: kind, Value: v}
		}
		return n, nil
	case KindInteger:
		n, ok := toInt64(v)
		if !ok || n < math.MinInt32 || n > math.MaxInt32 {
			return nil, &CoercionError{Kind: kind, Value: v}
		}
		return int(n), nil
	case KindText:
		switch t := v.(type) {
		case string:
			return t, nil
		case []byte:
			return string(t), nil
		}
	case KindFloat:
		switch t := v.(type) {
		case float32:
			return t, nil
		case float64:
			return float32(t), nil
		case []byte:
			return parseFloat(string(t), kind, v)
		case string:
			return parseFloat(t, kind, v)
		}
		if n, ok := toInt64(v); ok {
			return float32(n), nil
		}
	case KindInstant:
		switch t := v.(type) {
		case time.Time:
			return t, nil
		case []byte:
			return parseInstant(string(t), kind, v)
		case string:
			return parseInstant(t, kind, v)
		}
	}
	return nil, &CoercionError{Kind: kind, Value: v}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint:
		return int64(n), n <= math.MaxInt64
	case uint64:
		return int64(n), n <= math.MaxInt64
	case uint32:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint8:
		return int64(n), true
	case []byte:
		i, err := strconv.ParseInt(strings.TrimSpace(string(n)), 10, 64)
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	}
	return 0, false
}

func parseFloat(s string, kind Kind, raw any) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return nil, &CoercionError{Kind: kind, Value: raw}
	}
	return float32(f), nil
}

func parseInstant(s string, kind Kind, raw any) (any, error) {
	s = strings.TrimSpace(s)
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return nil, &CoercionError{Kind: kind, Value: raw}
}
