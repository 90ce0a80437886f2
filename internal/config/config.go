package config // package config holds the process-wide venue configuration

import (
    "sync" // sync guards the one-time creation of the shared instance
)

// Config holds the global settings of a venue: its display name and the
// number of screens it operates.  Exactly one logical Config exists per
// process; it is created lazily on first access and lives until the process
// exits.  All reads and writes go through the accessors below.  There is no
// validation: a zero or negative screen count is stored as given.
//
// Fields:
//  name        – venue display name, empty until set.
//  screenCount – number of screens, zero until set.
type Config struct {
    name        string // venue display name
    screenCount int    // number of screens the venue operates
}

var (
    once     sync.Once // guards creation of the process-wide instance
    instance *Config   // the single process-wide Config; nil until first use
)

// Instance returns the process-wide Config, creating it with unset fields
// on the first call.  Creation happens at most once even when several
// goroutines hit the first call together; every caller receives the same
// pointer.  There is no teardown, the instance persists for the life of
// the process.
func Instance() *Config {
    once.Do(func() {
        instance = &Config{}
    })
    return instance
}

// SetName stores the venue display name.
func (c *Config) SetName(name string) {
    c.name = name
}

// Name returns the venue display name, empty until set.
func (c *Config) Name() string {
    return c.name
}

// SetScreenCount stores the number of screens.  The value is accepted
// verbatim; callers who need a sane count must check it themselves.
func (c *Config) SetScreenCount(n int) {
    c.screenCount = n
}

// ScreenCount returns the number of screens, zero until set.
func (c *Config) ScreenCount() int {
    return c.screenCount
}
