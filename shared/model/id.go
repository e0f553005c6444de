package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an identifier stored either as a JSON number or a JSON string. It keeps its
// original JSON kind so records round-trip unchanged.
type ID struct {
	value   string
	numeric bool
}

func NewID(value string) ID {
	return ID{value: value}
}

func NewNumericID(value int64) ID {
	return ID{value: strconv.FormatInt(value, 10), numeric: true}
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsZero() bool {
	return id.value == ""
}

// Equal compares by textual value, so 7 and "7" are the same id.
func (id ID) Equal(other ID) bool {
	return id.value == other.value
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.value == "" {
		return []byte("null"), nil
	}

	if id.numeric {
		return []byte(id.value), nil
	}

	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*id = ID{}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("invalid id %s: %w", data, err)
		}

		id.value = value

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}

	id.value = number.String()
	id.numeric = true

	return nil
}
