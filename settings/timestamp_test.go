package settings_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lambda-feedback/buildsettings/settings"
)

func TestBuildDate(t *testing.T) {
	instant := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.UTC)

	assert.Equal(t, "2024-03-07-090503", settings.BuildDate(instant))
}

func TestBuildTimestamp(t *testing.T) {
	instant := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.UTC)

	assert.Equal(t, "20240307.090503", settings.BuildTimestamp(instant))
}

func TestBuildDate_ConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	instant := time.Date(2024, time.January, 1, 1, 30, 0, 0, zone)

	assert.Equal(t, "2023-12-31-233000", settings.BuildDate(instant))
	assert.Equal(t, "20231231.233000", settings.BuildTimestamp(instant))
}

func TestCurrentBuildDate(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{6}$`), settings.CurrentBuildDate())
}

func TestCurrentBuildTimestamp(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^\d{8}\.\d{6}$`), settings.CurrentBuildTimestamp())
}
