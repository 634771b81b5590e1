package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rdutra/portfolio-api/internal/flagx"
	"github.com/rdutra/portfolio-api/internal/timex"
)

// JsonConfig is the DTO for the optional JSON configuration file. It uses
// timex.Duration so lifetimes can be written either as "30m" or as
// integer nanoseconds. After unmarshalling its fields are copied into the
// runtime Config.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags. Without the flag nothing is loaded; an unreadable or
// invalid file panics, since the process cannot start half-configured.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
}
