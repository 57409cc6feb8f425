package wfh

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// ErrInvalidClock is returned when a time of day cannot be parsed.
var ErrInvalidClock = errors.New("invalid time of day, expected HH:MM")

// clockRegex matches 24-hour HH:MM with an optional :SS suffix.
var clockRegex = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)(?::[0-5]\d)?$`)

// Clock is a wall-clock time of day in minutes since midnight.
type Clock int

// ParseClock parses a "HH:MM" string into a Clock.
// Seconds are accepted and dropped.
func ParseClock(s string) (Clock, error) {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return Clock(Minutes(hours, minutes)), nil
}

// MustParseClock is like ParseClock but panics on error.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsClock reports whether s is a valid "HH:MM" time of day.
func IsClock(s string) bool {
	return clockRegex.MatchString(s)
}

// String renders the clock as 24-hour "HH:MM".
func (c Clock) String() string {
	m := normalize(int(c))
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MarshalText implements encoding.TextMarshaler.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Minutes converts an hours and minutes pair into total minutes.
func Minutes(hours, minutes int) int {
	return hours*60 + minutes
}

// SplitMinutes splits a duration in minutes into whole hours and leftover minutes.
func SplitMinutes(total int) (hours, minutes int) {
	return total / 60, total % 60
}

// FormatTime12 renders minutes since midnight as a 12-hour time such as "9:05 AM".
// Values outside a single day wrap around midnight in either direction.
func FormatTime12(minutes int) string {
	m := normalize(minutes)
	h := m / 60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h
	switch {
	case h == 0:
		display = 12
	case h > 12:
		display = h - 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m%60, period)
}

// FormatDuration renders a duration as "8h 05m".
func FormatDuration(minutes int) string {
	h, m := SplitMinutes(minutes)
	return fmt.Sprintf("%dh %02dm", h, m)
}

// GapLabel renders a gap duration, dropping the hour part when it is zero.
func GapLabel(minutes int) string {
	h, m := SplitMinutes(minutes)
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func normalize(minutes int) int {
	return ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
}
