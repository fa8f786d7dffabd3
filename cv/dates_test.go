package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	for _, value := range []string{"2023-05-01", "2023-05", "2023", "05/2023", "May 2023"} {
		_, ok := ParseDate(value)
		assert.True(t, ok, "expected %q to parse", value)
	}

	for _, value := range []string{"", "   ", "not a date", "13/13/13"} {
		_, ok := ParseDate(value)
		assert.False(t, ok, "expected %q to fail", value)
	}
}

func TestFormatShortDate(t *testing.T) {
	assert.Equal(t, "May 2023", FormatShortDate("2023-05-01", "en"))
	assert.Equal(t, "May 2023", FormatShortDate("2023-05", ""))
	assert.Equal(t, "", FormatShortDate("garbage", "en"))
	assert.Equal(t, "", FormatShortDate("", "en"))
}

func TestFormatShortDate_Locales(t *testing.T) {
	// German abbreviates May as "Mai".
	assert.Equal(t, "Mai 2023", FormatShortDate("2023-05", "de"))
	// Unknown locales fall back to en-US.
	assert.Equal(t, "May 2023", FormatShortDate("2023-05", "xx-YY"))
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "Jan 2020 – Mar 2022", FormatDateRange("2020-01", "2022-03", false, "en"))
	assert.Equal(t, "Jan 2020 – Present", FormatDateRange("2020-01", "", true, "en"))
	assert.Equal(t, "Jan 2020 – Present", FormatDateRange("2020-01", "2022-03", true, "en"))
	assert.Equal(t, "Jan 2020", FormatDateRange("2020-01", "", false, "en"))
	assert.Equal(t, "Mar 2022", FormatDateRange("", "2022-03", false, "en"))
	assert.Equal(t, "", FormatDateRange("", "", false, "en"))
	assert.Equal(t, "Present", FormatDateRange("bogus", "", true, "en"))
}
