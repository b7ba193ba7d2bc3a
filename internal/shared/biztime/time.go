// Package biztime provides utilities for business timezone calculations.
// Storage and transport use UTC. The business timezone is only used for
// calendar boundaries such as "this month" and per-month buckets.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Tokyo"
)

var (
	bizLocation *time.Location
	locationMu  sync.RWMutex
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}

	locationMu.Lock()
	bizLocation = loc
	locationMu.Unlock()
	return nil
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	locationMu.RLock()
	loc := bizLocation
	locationMu.RUnlock()
	if loc != nil {
		return loc
	}

	if err := Init(""); err != nil {
		// tzdata missing on the host; fall back to a fixed JST offset
		fixed := time.FixedZone("JST", 9*60*60)
		locationMu.Lock()
		bizLocation = fixed
		locationMu.Unlock()
		return fixed
	}
	return Location()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfMonthUTC returns 00:00 on the 1st of t's month in the business
// timezone, converted to UTC.
func StartOfMonthUTC(t time.Time) time.Time {
	biz := t.In(Location())
	return time.Date(biz.Year(), biz.Month(), 1, 0, 0, 0, 0, Location()).UTC()
}

// MonthOf returns the business-timezone calendar month containing t.
func MonthOf(t time.Time) (int, time.Month) {
	biz := t.In(Location())
	return biz.Year(), biz.Month()
}

// FromUnixMilli converts a stored millisecond timestamp to UTC time.
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
