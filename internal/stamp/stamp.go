// Package stamp formats the local second-precision timestamps used across
// the note and task stores.
package stamp

import "time"

// Layout is the ISO-8601 layout used for created_at/updated_at fields.
const Layout = "2006-01-02T15:04:05"

// DateLayout is the layout used for task due dates.
const DateLayout = "2006-01-02"

// Now returns the current local time formatted with Layout.
func Now() string {
	return time.Now().Format(Layout)
}

// Format renders t with Layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// DateIn returns the local date d days from now, formatted with DateLayout.
func DateIn(days int) string {
	return time.Now().AddDate(0, 0, days).Format(DateLayout)
}
