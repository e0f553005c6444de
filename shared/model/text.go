package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Text is display text read from a loosely typed member: a string, a number, or a list of
// strings or named objects joined with commas.
type Text struct {
	Value string
	raw   []byte
}

func (t Text) String() string {
	return t.Value
}

func (t Text) MarshalJSON() ([]byte, error) {
	if len(t.raw) > 0 {
		return t.raw, nil
	}

	return json.Marshal(t.Value)
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = Text{}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	t.raw = append([]byte(nil), data...)

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err //nolint:wrapcheck
	}

	t.Value = textOf(value)

	return nil
}

func textOf(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, element := range v {
			if part := textOf(element); part != "" {
				parts = append(parts, part)
			}
		}

		return strings.Join(parts, ", ")
	case map[string]any:
		if name, ok := v["name"].(string); ok {
			return name
		}

		return ""
	default:
		return ""
	}
}
