// Package dates handles calendar dates stored as "YYYY-MM-DD" strings.
//
// Dates are never converted through the viewer's local timezone: parsing pins them to
// UTC so formatting and re-parsing always recover the same calendar day.
package dates

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// TimestampLayout has fixed-width milliseconds so stored timestamps sort as strings.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var ErrInvalidDate = errors.New("invalid date")

var monthNames = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Today returns the calendar date of now as seen in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(Layout)
}

func Parse(day string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(day), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, day)
	}
	return t, nil
}

func Valid(day string) bool {
	_, err := Parse(day)
	return err == nil
}

// AddDays moves a calendar date by n days.
func AddDays(day string, n int) (string, error) {
	t, err := Parse(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(Layout), nil
}

// DaysBetween returns the whole number of days from `from` to `to`, measured at noon UTC.
func DaysBetween(from, to string) (int, error) {
	a, err := Parse(from)
	if err != nil {
		return 0, err
	}
	b, err := Parse(to)
	if err != nil {
		return 0, err
	}
	a = a.Add(12 * time.Hour)
	b = b.Add(12 * time.Hour)
	return int(math.Round(b.Sub(a).Hours() / 24)), nil
}

// FormatLong renders a date the way the es-ES locale does: "5 de junio de 2025".
func FormatLong(day string) string {
	if strings.TrimSpace(day) == "" {
		return "N/A"
	}
	t, err := Parse(day)
	if err != nil {
		return "Fecha inválida"
	}
	return longDate(t)
}

// Stamp formats an instant for storage (createdAt, updatedAt, audit timestamps).
func Stamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatTimestamp renders an RFC3339 timestamp in UTC with its time of day.
func FormatTimestamp(ts string) string {
	if strings.TrimSpace(ts) == "" {
		return "N/A"
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return "Fecha inválida"
	}
	t = t.UTC()
	return fmt.Sprintf("%s, %02d:%02d:%02d", longDate(t), t.Hour(), t.Minute(), t.Second())
}

// ParseLong is the inverse of FormatLong.
func ParseLong(s string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 5 || parts[1] != "de" || parts[3] != "de" {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	year, err := strconv.Atoi(parts[4])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	month := 0
	for i, name := range monthNames {
		if strings.EqualFold(name, parts[2]) {
			month = i + 1
			break
		}
	}
	if month == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t.Format(Layout), nil
}

func longDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}
