package util

import "time"

// Clock supplies the current time to services that stamp records.
type Clock func() time.Time

// NowUTC is the production clock.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FixedClock always reports ts; handy for deterministic tests.
func FixedClock(ts time.Time) Clock {
	return func() time.Time { return ts }
}
