package ratelimit

import "time"

// Rule allows Limit requests per Window on one route, with bursts up to Burst (default Limit).
// A Limit of zero or less disables the rule.
type Rule struct {
	Method string
	Path   string
	Limit  int
	Window time.Duration
	Burst  int
}

func (r Rule) burst() int {
	if r.Burst > 0 {
		return r.Burst
	}
	return r.Limit
}

// Config holds the limiter settings
type Config struct {
	Enabled         bool
	CleanupInterval time.Duration
	Rules           []Rule
}

func (c Config) match(method, path string) *Rule {
	for i := range c.Rules {
		if c.Rules[i].Method == method && c.Rules[i].Path == path {
			return &c.Rules[i]
		}
	}
	return nil
}

// DefaultConfig limits PDF exports to exportsPerMinute and avatar uploads to a fixed rate.
// A negative exportsPerMinute turns the limiter off.
func DefaultConfig(exportsPerMinute int) Config {
	if exportsPerMinute < 0 {
		return Config{Enabled: false}
	}
	return Config{
		Enabled:         true,
		CleanupInterval: 5 * time.Minute,
		Rules: []Rule{
			// each export drives a headless browser
			{Method: "POST", Path: "/export", Limit: exportsPerMinute, Window: time.Minute, Burst: 2},
			{Method: "POST", Path: "/resume/avatar", Limit: 30, Window: time.Minute, Burst: 5},
		},
	}
}
