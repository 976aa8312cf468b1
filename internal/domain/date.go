package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDate parses the date formats clients send for trip dates
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// DateValue is a trip date received either as text or as a time.
// Text stays untouched until Time is asked for.
type DateValue struct {
	text   string
	t      time.Time
	isTime bool
}

// DateString wraps a textual date
func DateString(s string) DateValue {
	return DateValue{text: s}
}

// DateTime wraps a time value
func DateTime(t time.Time) DateValue {
	return DateValue{t: t, isTime: true}
}

// String returns the original text, or RFC 3339 for time values
func (d DateValue) String() string {
	if d.isTime {
		return d.t.Format(time.RFC3339)
	}
	return d.text
}

// Time returns the parsed date
func (d DateValue) Time() (time.Time, error) {
	if d.isTime {
		return d.t, nil
	}
	return ParseDate(d.text)
}

func (d DateValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("expected a date string")
	}
	*d = DateString(s)
	return nil
}
