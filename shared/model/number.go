package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a float that also accepts numeric strings and null. Form input saved by the
// storefront is not always converted before it is stored.
type Number float64

func (n Number) Float() float64 {
	return float64(n)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = 0

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("invalid number %s: %w", data, err)
		}

		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}

		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", value, err)
		}

		*n = Number(parsed)

		return nil
	}

	var parsed float64
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid number %s: %w", data, err)
	}

	*n = Number(parsed)

	return nil
}
