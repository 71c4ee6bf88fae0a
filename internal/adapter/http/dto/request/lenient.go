package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"invoicer/internal/domain/totals"
)

// Number accepts a JSON number, a numeric string, a bool or null. Anything
// that does not coerce to a finite number decodes as 0, so a stray field
// never fails the whole request.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number(coerceNumber(data))
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

func coerceNumber(data []byte) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}

	switch data[0] {
	case 't':
		if string(data) == "true" {
			return 1
		}
		return 0
	case 'f', 'n':
		return 0
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0
		}
		return parseNumber(s)
	case '{', '[':
		return 0
	}
	return parseNumber(string(data))
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return totals.Finite(v)
}

// Text accepts any JSON scalar and keeps its textual form. Objects, arrays
// and null decode as an empty string.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*t = ""
			return nil
		}
		*t = Text(s)
	case '{', '[', 'n':
		*t = ""
	default:
		*t = Text(data)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}
