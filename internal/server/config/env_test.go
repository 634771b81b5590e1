package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("ADDRESS", ":9999")
	t.Setenv("DATABASE_DSN", "postgres://u:p@db:5432/x")
	t.Setenv("JWT_SECRETKEY", "env-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", "45")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":9999", c.EndpointAddr)
	assert.Equal(t, "postgres://u:p@db:5432/x", c.DatabaseDSN)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, 45*time.Minute, c.AccessTokenValidityDuration)
}

func TestParseEnv_UnsetLeavesDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":7777", c.EndpointAddr)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.AccessTokenValidityDuration)
}

func TestParseEnv_MalformedMinutesIgnored(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 30*time.Minute, c.AccessTokenValidityDuration)
}
