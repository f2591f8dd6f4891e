// Package refdate parses the reference date a picked time is combined onto.
package refdate

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned for input Parse does not recognise.
var ErrInvalidDate = errors.New("date must be YYYY-MM-DD, today, tomorrow, yesterday or a weekday name")

// weekdays maps weekday names to time.Weekday values.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parse resolves s against now. It accepts:
//   - "" or "today"
//   - "tomorrow" and "yesterday"
//   - weekday names, meaning the next occurrence after today
//   - "last-<weekday>", the most recent occurrence before today
//   - an absolute "YYYY-MM-DD" date, in now's location
//
// Input is case-insensitive. The result is at midnight.
func Parse(s string, now time.Time) (time.Time, error) {
	today := TruncateToDay(now)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if name, ok := strings.CutPrefix(input, "last-"); ok {
		if day, ok := weekdays[name]; ok {
			return previousWeekday(today, day), nil
		}
		return time.Time{}, ErrInvalidDate
	}
	if day, ok := weekdays[input]; ok {
		return nextWeekday(today, day), nil
	}

	result, err := time.ParseInLocation("2006-01-02", input, now.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return result, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nextWeekday returns the next occurrence of target after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	days := int(target) - int(today.Weekday())
	if days <= 0 {
		days += 7
	}
	return today.AddDate(0, 0, days)
}

// previousWeekday returns the last occurrence of target before today.
func previousWeekday(today time.Time, target time.Weekday) time.Time {
	days := int(today.Weekday()) - int(target)
	if days <= 0 {
		days += 7
	}
	return today.AddDate(0, 0, -days)
}
