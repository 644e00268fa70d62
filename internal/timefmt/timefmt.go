// Package timefmt renders backend timestamp tuples as Korean clock strings.
package timefmt

import (
	"fmt"
	"time"
)

// Location is the zone tuples are interpreted in.
var Location = time.Local

// Time builds the calendar time for a [year, month, day, hour, minute,
// second] tuple. Out-of-range fields roll over the way a calendar would.
func Time(ts []int) (time.Time, bool) {
	if len(ts) < 6 {
		return time.Time{}, false
	}
	year, month, day, hour, minute, second := ts[0], ts[1], ts[2], ts[3], ts[4], ts[5]
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, Location), true
}

// Format renders the tuple as "HH시 MM분". Short tuples yield "". The
// seconds field never affects the clock shown.
func Format(ts []int) string {
	if len(ts) < 6 {
		return ""
	}
	t := time.Date(ts[0], time.Month(ts[1]), ts[2], ts[3], ts[4], 0, 0, Location)
	return fmt.Sprintf("%02d시 %02d분", t.Hour(), t.Minute())
}

// FromTime is the inverse of Time.
func FromTime(t time.Time) []int {
	return []int{t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()}
}
