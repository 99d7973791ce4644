package pagedate

import "time"

// Default configuration values.
const (
	DefaultFloorYear       = 1990
	DefaultClockSkew       = 24 * time.Hour
	DefaultFallbackTimeout = 30 * time.Second
)

// Config holds the extraction parameters that must be explicit so behavior
// is reproducible and testable: the plausibility window bounds, the locale
// preference for ambiguous numeric dates, and the fallback timeout.
type Config struct {
	// FloorYear is the earliest plausible year. Parsed dates before
	// January 1 of this year are discarded everywhere.
	FloorYear int

	// ClockSkew is added to the reference time when computing the upper
	// bound of the plausibility window, tolerating slightly-ahead clocks.
	ClockSkew time.Duration

	// DayFirst prefers day/month order when a numeric date is ambiguous.
	// The default is month first (US convention).
	DayFirst bool

	// FallbackTimeout bounds a single fallback capability call.
	FallbackTimeout time.Duration

	// Now returns the reference time for the plausibility window.
	// Nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() Config {
	return Config{
		FloorYear:       DefaultFloorYear,
		ClockSkew:       DefaultClockSkew,
		FallbackTimeout: DefaultFallbackTimeout,
	}
}

// Window returns the plausibility bounds [min, max] implied by the config.
func (c Config) Window() (min, max time.Time) {
	floor := c.FloorYear
	if floor <= 0 {
		floor = DefaultFloorYear
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	skew := c.ClockSkew
	if skew <= 0 {
		skew = DefaultClockSkew
	}
	min = time.Date(floor, time.January, 1, 0, 0, 0, 0, time.UTC)
	max = now().UTC().Add(skew)
	return min, max
}

// InWindow reports whether t falls inside the plausibility window.
func (c Config) InWindow(t time.Time) bool {
	min, max := c.Window()
	return !t.Before(min) && !t.After(max)
}
