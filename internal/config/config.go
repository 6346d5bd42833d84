package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken     string `env:"BOT_TOKEN,required"`
	MongoURI     string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DatabaseName string `env:"MONGODB_DATABASE" envDefault:"studybot"`

	// Access control
	AdminIDs        []int64 `env:"ADMIN_IDS" envSeparator:","`
	MustJoinChannel string  `env:"MUST_JOIN_CHANNEL" envDefault:"@jntuhupdates26"`

	// Web API
	Port int `env:"PORT" envDefault:"3000"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

// ChannelURL is the public join link for the required channel.
func (c *Config) ChannelURL() string {
	return "https://t.me/" + strings.TrimPrefix(c.MustJoinChannel, "@")
}
