// Package timefmt turns durations and instants into coarse, human readable text,
// e.g. "3 days", "in a month" or "2 years ago".
package timefmt

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// magnitudes never yield "1 <unit>s": every plural range starts at 2 units.
var magnitudes = []humanize.RelTimeMagnitude{
	{D: 45 * time.Second, Format: "a few seconds", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "a minute", DivBy: time.Minute},
	{D: 45 * time.Minute, Format: "%d minutes", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "an hour", DivBy: time.Hour},
	{D: 22 * time.Hour, Format: "%d hours", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "a day", DivBy: humanize.Day},
	{D: 26 * humanize.Day, Format: "%d days", DivBy: humanize.Day},
	{D: 2 * humanize.Month, Format: "a month", DivBy: humanize.Month},
	{D: humanize.Year, Format: "%d months", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "a year", DivBy: humanize.Year},
	{D: time.Duration(math.MaxInt64), Format: "%d years", DivBy: humanize.Year},
}

// Duration returns humanized length of d, sign ignored.
func Duration(d time.Duration) string {
	var epoch time.Time
	return Between(epoch, epoch.Add(d))
}

// Seconds returns humanized length of a duration given in seconds.
func Seconds(s float64) string {
	return Duration(time.Duration(s * float64(time.Second)))
}

// Between returns humanized distance between a and b, without direction.
func Between(a, b time.Time) string {
	return humanize.CustomRelTime(a, b, "", "", magnitudes)
}

// Relative describes t as seen from now: "in X" for future instants, "X ago" otherwise.
func Relative(t, now time.Time) string {
	if t.After(now) {
		return "in " + Between(now, t)
	}
	return Between(t, now) + " ago"
}
