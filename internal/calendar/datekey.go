// Package calendar holds the month-view calendar model: day keys, month
// grids and the store of navigation, selection and per-day events.
package calendar

import "time"

// keyLayout is the canonical day format. Keys sort lexicographically in date order.
const keyLayout = "2006-01-02"

// Key identifies a single local calendar day as YYYY-MM-DD.
type Key string

// Encode returns the key of the local calendar day containing t.
// The time of day is discarded.
func Encode(t time.Time) Key {
	return Key(t.In(time.Local).Format(keyLayout))
}

// EncodeDate returns the key for the given local date. Out of range
// components are normalized the way time.Date does it.
func EncodeDate(year int, month time.Month, day int) Key {
	return Encode(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// Decode parses a key into local midnight of that day.
func Decode(k Key) (time.Time, error) {
	t, err := time.ParseInLocation(keyLayout, string(k), time.Local)
	if err != nil {
		return time.Time{}, &KeyError{Key: string(k)}
	}
	// Reject anything that doesn't re-encode to itself.
	if t.Format(keyLayout) != string(k) {
		return time.Time{}, &KeyError{Key: string(k)}
	}
	return t, nil
}

// Valid reports whether k decodes.
func (k Key) Valid() bool {
	_, err := Decode(k)
	return err == nil
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}
