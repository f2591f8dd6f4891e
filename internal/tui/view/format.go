package view

import (
	"fmt"
	"time"
)

// FormatInterval describes the minute step of the minute wheel.
func FormatInterval(minutes int) string {
	switch {
	case minutes <= 1:
		return "every minute"
	case minutes >= 60:
		return "on the hour"
	default:
		return fmt.Sprintf("every %d min", minutes)
	}
}

// DateLabel renders the date a selection will be combined onto. Today is
// wrapped in asterisks.
func DateLabel(ref time.Time, today time.Time) string {
	label := ref.Format("Mon 2 Jan 06")
	if sameDay(ref, today) {
		label = "*" + label + "*"
	}
	return label
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
