package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config wraps the settings for the engine and its server connection.
// Settings come from an optional config file and SKRAFL_* environment
// variables, with sane defaults for local play.
type Config struct {
	v *viper.Viper
}

// New creates a config with defaults applied.
func New() *Config {
	v := viper.New()
	v.SetDefault("server-url", "http://localhost:8080")
	v.SetDefault("api-key", "")
	v.SetDefault("tileset", "new")
	v.SetDefault("game-id", "")
	v.SetDefault("debug", false)
	v.SetEnvPrefix("skrafl")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// Load reads an optional config file on top of the defaults and the
// environment. An empty path skips the file.
func (c *Config) Load(path string) error {
	if path == "" {
		return nil
	}
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return err
	}
	log.Debug().Str("file", path).Msg("loaded config file")
	return nil
}

// Set overrides a single setting.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// SanitizedSettings returns the settings suitable for logging, with
// the API key masked.
func (c *Config) SanitizedSettings() map[string]any {
	settings := map[string]any{}
	for _, key := range c.v.AllKeys() {
		if key == "api-key" && c.v.GetString(key) != "" {
			settings[key] = "****"
			continue
		}
		settings[key] = c.v.Get(key)
	}
	return settings
}
