package timex

import "time"

// Clock is the time provider consulted by services. Tests replace it with a
// fixed clock so expiry dates are deterministic.
type Clock interface {
	Now() time.Time
	// AddDays returns Now() shifted by n calendar days.
	AddDays(n int) time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

func (c SystemClock) AddDays(n int) time.Time { return c.Now().AddDate(0, 0, n) }

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

func (c FixedClock) AddDays(n int) time.Time { return c.At.AddDate(0, 0, n) }
