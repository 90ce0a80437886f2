package config

// This file seeds the process-wide Config from environment variables.  The
// demo binary loads a .env file first (via godotenv) so local runs can keep
// their settings next to the checkout.  Both variables are optional and a
// missing or malformed value leaves the corresponding field untouched: the
// configuration is mutable and callers can complete it afterwards.

import (
    "os"      // os provides access to environment variables
    "strconv" // strconv converts the screen count string to an int
)

// ApplyEnv copies CINEMA_NAME and CINEMA_SCREENS from the environment into
// the process-wide Config and returns that instance for convenience.
func ApplyEnv() *Config {
    cfg := Instance()
    if v := getenv("CINEMA_NAME", ""); v != "" {
        cfg.SetName(v)
    }
    if v := getenv("CINEMA_SCREENS", ""); v != "" {
        if n, err := strconv.Atoi(v); err == nil {
            cfg.SetScreenCount(n)
        }
    }
    return cfg
}

// getenv returns the value of key or def when the variable is unset or empty.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
