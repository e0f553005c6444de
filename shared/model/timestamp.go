package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"saapadu/shared/constant"
	"saapadu/shared/timezone"
	"strconv"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
	"1/2/2006",
	"1/2/2006, 3:04:05 PM",
}

// Timestamp accepts an RFC 3339 (or date-like) string or epoch milliseconds. A value read
// from storage is written back in its original form.
type Timestamp struct {
	time.Time
	raw []byte
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// IsZero reports whether no value was given. An unreadable stored value is not zero.
func (ts Timestamp) IsZero() bool {
	return ts.Time.IsZero() && len(ts.raw) == 0
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if len(ts.raw) > 0 {
		return ts.raw, nil
	}

	if ts.Time.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(ts.UTC().Format(constant.DateFormat))
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*ts = Timestamp{}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	ts.raw = append([]byte(nil), data...)

	if data[0] != '"' {
		millis, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp %s: %w", data, err)
		}

		ts.Time = time.UnixMilli(int64(millis))

		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", data, err)
	}

	ts.Time = ParseTime(value)

	return nil
}

// ParseTime reads the date formats found in stored data. Unreadable values give the zero time.
func ParseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(millis)
	}

	for _, layout := range timestampLayouts {
		if t, err := timezone.Parse(layout, value); err == nil {
			return t
		}
	}

	return time.Time{}
}

// Date renders the calendar date in the application timezone, "N/A" when unknown.
func (ts Timestamp) Date() string {
	return timezone.FormatDate(ts.Time)
}
