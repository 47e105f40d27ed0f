package settings

import "time"

const (
	// BuildDateLayout renders an instant as YYYY-MM-DD-HHMMSS.
	BuildDateLayout = "2006-01-02-150405"

	// BuildTimestampLayout renders an instant as YYYYMMDD.HHMMSS.
	BuildTimestampLayout = "20060102.150405"
)

// Clock is the source of the current instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// BuildDate formats t in UTC using BuildDateLayout.
func BuildDate(t time.Time) string {
	return t.UTC().Format(BuildDateLayout)
}

// BuildTimestamp formats t in UTC using BuildTimestampLayout.
func BuildTimestamp(t time.Time) string {
	return t.UTC().Format(BuildTimestampLayout)
}

// CurrentBuildDate returns the current UTC time as YYYY-MM-DD-HHMMSS.
func CurrentBuildDate() string {
	return BuildDate(SystemClock.Now())
}

// CurrentBuildTimestamp returns the current UTC time as YYYYMMDD.HHMMSS.
func CurrentBuildTimestamp() string {
	return BuildTimestamp(SystemClock.Now())
}
