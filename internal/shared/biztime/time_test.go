package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfMonthUTC(t *testing.T) {
	require.NoError(t, Init("UTC"))
	t.Cleanup(func() { _ = Init("") })

	got := StartOfMonthUTC(time.Date(2024, time.March, 17, 13, 4, 5, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestMonthOf_UsesBusinessTimezone(t *testing.T) {
	require.NoError(t, Init("Asia/Tokyo"))

	// 2024-01-31 20:00 UTC is already February 1st in Tokyo.
	year, month := MonthOf(time.Date(2024, time.January, 31, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.February, month)
}

func TestInit_InvalidTimezone(t *testing.T) {
	err := Init("Not/AZone")
	assert.Error(t, err)
}

func TestFromUnixMilli(t *testing.T) {
	ts := time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, ts.Equal(FromUnixMilli(ts.UnixMilli())))
}
