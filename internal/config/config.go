package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

// Config holds all configuration for the demos
type Config struct {
	Cedra   CedraConfig
	Redis   RedisConfig
	Discord DiscordConfig
	DND5E   DND5EConfig
}

// CedraConfig holds settings for the CLI and the indexer
type CedraConfig struct {
	Binary          string        `env:"CEDRA_BIN" envDefault:"cedra"`
	Profile         string        `env:"CEDRA_PROFILE" envDefault:"testnet"`
	ContractAddress string        `env:"CEDRA_CONTRACT_ADDRESS" envDefault:"0xffc8b7e8ba733db4e66a992570a9531e80b92b4303cca0bb93f2fba987def403"`
	Module          string        `env:"CEDRA_MODULE" envDefault:"game_examples"`
	IndexerURL      string        `env:"CEDRA_INDEXER_URL" envDefault:"https://testnet.cedra.dev"`
	PollAttempts    int           `env:"CEDRA_POLL_ATTEMPTS" envDefault:"10"`
	PollDelay       time.Duration `env:"CEDRA_POLL_DELAY" envDefault:"2s"`
	HTTPTimeout     time.Duration `env:"CEDRA_HTTP_TIMEOUT" envDefault:"30s"`
}

// RedisConfig enables the outcome journal when URL is set
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// DiscordConfig enables result announcements through a webhook
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	Enabled bool          `env:"DND5E_ENABLED" envDefault:"true"`
	Timeout time.Duration `env:"DND5E_TIMEOUT" envDefault:"5s"`
}

// AnnouncementsEnabled reports whether both webhook credentials are present.
func (c DiscordConfig) AnnouncementsEnabled() bool {
	return c.WebhookID != "" && c.WebhookToken != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and bounds
func (c *Config) Validate() error {
	switch {
	case c.Cedra.Binary == "":
		return dnderr.Validationf("CEDRA_BIN is required")
	case c.Cedra.Profile == "":
		return dnderr.Validationf("CEDRA_PROFILE is required")
	case c.Cedra.ContractAddress == "":
		return dnderr.Validationf("CEDRA_CONTRACT_ADDRESS is required")
	case c.Cedra.Module == "":
		return dnderr.Validationf("CEDRA_MODULE is required")
	case c.Cedra.PollAttempts < 1:
		return dnderr.Validationf("CEDRA_POLL_ATTEMPTS must be at least 1, got %d", c.Cedra.PollAttempts)
	case c.Cedra.PollDelay < 0:
		return dnderr.Validationf("CEDRA_POLL_DELAY must not be negative, got %s", c.Cedra.PollDelay)
	}

	return nil
}
