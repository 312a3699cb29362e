package control

import (
	"flag"
	"time"
)

// Config represents the tunable parameters of the control loop.
type Config struct {
	Seed          int64
	MinPeriod     time.Duration
	MaxPeriod     time.Duration
	SettleTimeout time.Duration
	HoldThreshold time.Duration
	Debounce      time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Seed:          42,
		MinPeriod:     50 * time.Millisecond,
		MaxPeriod:     800 * time.Millisecond,
		SettleTimeout: 6 * time.Second,
		HoldThreshold: 2 * time.Second,
		Debounce:      20 * time.Millisecond,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.DurationVar(&c.MinPeriod, "min-period", c.MinPeriod, "fastest tick period")
	fs.DurationVar(&c.MaxPeriod, "max-period", c.MaxPeriod, "slowest tick period")
	fs.DurationVar(&c.SettleTimeout, "settle-timeout", c.SettleTimeout, "delay before a settled run restarts")
	fs.DurationVar(&c.HoldThreshold, "hold-threshold", c.HoldThreshold, "button hold time that switches the knob to brightness")
	fs.DurationVar(&c.Debounce, "debounce", c.Debounce, "button debounce window")
}
