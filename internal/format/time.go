package format

import (
	"fmt"
	"strings"
	"time"
)

// Uptime renders a duration as days, hours, minutes and seconds, omitting
// zero units: "2d 3h 4m", "5m 6s", "0s".
func Uptime(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	total := int64(d / time.Second)

	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " ")
}

// OrdinalDate renders t as month name and ordinal day, e.g. "October 18th".
func OrdinalDate(t time.Time) string {
	return t.Month().String() + " " + Ordinal(t.Day())
}

// Ordinal appends the English ordinal suffix to n: 1st, 2nd, 3rd, 11th, 22nd.
func Ordinal(n int) string {
	suffix := "th"
	if mod100 := n % 100; mod100 < 11 || mod100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// FormatTimeSince formats a time.Time as a human-readable duration since that time.
// Returns strings like "2h ago", "3d ago", "45m ago", or "just now".
func FormatTimeSince(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	d := time.Since(t)
	if d < 0 {
		d = -d
	}

	if d < 10*time.Second {
		return "just now"
	}

	if d < time.Minute {
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	}

	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}

	if d < 24*time.Hour {
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}

	days := int(d.Hours() / 24)
	return fmt.Sprintf("%dd ago", days)
}

// Millis renders a duration in milliseconds with microsecond precision,
// e.g. "1.234ms", for benchmark tables.
func Millis(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}
