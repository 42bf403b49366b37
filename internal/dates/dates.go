// Package dates parses the due dates accepted on the command line.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layout is the format due dates are stored in.
const Layout = "2006-01-02"

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(Layout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.Parse(Layout, s)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDueArg turns a --due argument into a stored date. It accepts
// YYYY-MM-DD, today, tomorrow, yesterday, and weekday names (the next such
// day after now).
func ParseDueArg(arg string, now time.Time) (string, error) {
	value := strings.ToLower(strings.TrimSpace(arg))
	anchor := startOfDay(now)

	switch value {
	case "today":
		return anchor.Format(Layout), nil
	case "tomorrow":
		return anchor.AddDate(0, 0, 1).Format(Layout), nil
	case "yesterday":
		return anchor.AddDate(0, 0, -1).Format(Layout), nil
	}

	if wd, ok := weekdays[value]; ok {
		days := (int(wd) - int(anchor.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return anchor.AddDate(0, 0, days).Format(Layout), nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return "", fmt.Errorf("invalid date format '%s', use YYYY-MM-DD, today, tomorrow or a weekday", arg)
	}
	return parsed.Format(Layout), nil
}

// Overdue reports whether due (YYYY-MM-DD) lies before the day of now.
// Invalid or empty dates are never overdue.
func Overdue(due string, now time.Time) bool {
	d, err := ParseDate(due)
	if err != nil {
		return false
	}
	today := startOfDay(now)
	return d.Before(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
