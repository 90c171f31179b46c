package config

import (
	"os"
	"strconv"
	"time"
)

// LoginRateLimit controls the fixed-window limiter applied to the credential
// endpoints (POST /login, POST /registration).
type LoginRateLimit struct {
	Enabled bool
	Limit   int           // attempts allowed per window
	Window  time.Duration // window length
}

func LoadLoginRateLimit() LoginRateLimit {
	rl := LoginRateLimit{
		Enabled: envBool("LOGIN_RATE_LIMIT_ENABLED", true),
		Limit:   envInt("LOGIN_RATE_LIMIT_ATTEMPTS", 10),
		Window:  envDur("LOGIN_RATE_LIMIT_WINDOW", time.Minute),
	}
	if rl.Limit < 1 {
		rl.Limit = 1
	}
	if rl.Window <= 0 {
		rl.Window = time.Minute
	}
	return rl
}

func envBool(k string, d bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			return dur
		}
	}
	return d
}
