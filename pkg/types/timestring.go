// Package types contains small value types shared across layers.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// MinutesPerDay is the number of minutes in a single day.
const MinutesPerDay = 24 * 60

// timeStringPattern matches strict HH:MM wall-clock times (00:00 - 23:59).
// Single-digit hours are rejected on purpose: the persisted format is always
// zero-padded, and a lenient parse would hide data problems.
var timeStringPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ErrInvalidTimeString is returned when a string is not a valid HH:MM time.
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It carries no date and no timezone; callers are expected to interpret it in
// the venue's local frame.
type TimeString string

// NewTimeString creates a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString validates s and returns it as a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate reports whether the value is a well-formed HH:MM time.
func (t TimeString) Validate() error {
	if !timeStringPattern.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes converts the value to minutes since midnight.
// Malformed values fail with ErrInvalidTimeString rather than producing a
// garbage number.
func (t TimeString) Minutes() (int, error) {
	m := timeStringPattern.FindStringSubmatch(string(t))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	// The pattern guarantees two-digit numeric groups.
	hours := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	minutes := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	return hours*60 + minutes, nil
}

// FromMinutes builds a TimeString from minutes since midnight.
// Values beyond one day wrap around (25:00 becomes 01:00).
func FromMinutes(minutes int) TimeString {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// AddMinutes returns the value shifted forward by m minutes, wrapping past
// midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	base, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(base + m), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Valid HH:MM strings compare correctly byte-wise.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer so the type can be written directly by
// database/sql.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as
// "HH:MM:SS"; the seconds are dropped.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
