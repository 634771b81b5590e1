package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from process environment variables.
//
// Recognized variables:
//
//	ADDRESS                          HTTP bind address
//	DATABASE_DSN                     PostgreSQL DSN
//	JWT_SECRETKEY                    JWT signing secret
//	JWT_ACCESS_TOKEN_EXPIRE_MINUTES  token lifetime, integer minutes
//
// Unset variables leave the current values untouched; a malformed
// expire-minutes value is ignored.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRETKEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("JWT_ACCESS_TOKEN_EXPIRE_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
}
