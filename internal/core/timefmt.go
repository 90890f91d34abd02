package core

import (
	"fmt"
	"time"
)

// RelativeAge renders a human-readable approximation of the time elapsed
// between t and now: "just now" under a minute, then whole minutes, hours,
// and days.
func RelativeAge(t, now time.Time) string {
	elapsed := now.Sub(t)

	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return pluralize(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return pluralize(int(elapsed.Hours()), "hour")
	default:
		return pluralize(int(elapsed.Hours()/24), "day")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}

	return fmt.Sprintf("%d %ss ago", n, unit)
}
