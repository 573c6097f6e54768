package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	Addr     string `envconfig:"APP_ADDR" default:":3000"`
	GinMode  string `envconfig:"GIN_MODE" default:"debug"`
	DataFile string `envconfig:"DATA_FILE" default:"data/sales.json"`

	// Supabase mirror sink. When SupabaseURL is empty the mirror is
	// disabled and creates succeed on the primary store alone.
	SupabaseURL string `envconfig:"SUPABASE_URL"`
	SupabaseKey string `envconfig:"SUPABASE_KEY"`
	MirrorTable string `envconfig:"MIRROR_TABLE" default:"vendas"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
