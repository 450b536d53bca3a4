package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string   `mapstructure:"PORT"`
	Env               string   `mapstructure:"ENV"`
	DatabaseURL       string   `mapstructure:"DATABASE_URL"`
	DBMaxConns        int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns        int32    `mapstructure:"DB_MIN_CONNS"`
	CouchbaseURL      string   `mapstructure:"COUCHBASE_URL"`
	CouchbaseUsername string   `mapstructure:"COUCHBASE_USERNAME"`
	CouchbasePassword string   `mapstructure:"COUCHBASE_PASSWORD"`
	CouchbaseBucket   string   `mapstructure:"COUCHBASE_BUCKET"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("COUCHBASE_URL", "couchbase://localhost")
	v.SetDefault("COUCHBASE_BUCKET", "abernathy_clinic")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("COUCHBASE_URL")
	v.BindEnv("COUCHBASE_USERNAME")
	v.BindEnv("COUCHBASE_PASSWORD")
	v.BindEnv("COUCHBASE_BUCKET")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is complete enough to serve requests.
// The note store needs credentials outside development; locally the Couchbase
// defaults are enough.
func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "production" && c.Env != "test" {
		return fmt.Errorf("ENV must be \"development\", \"test\", or \"production\", got %q", c.Env)
	}
	if !c.IsDev() && c.CouchbaseUsername == "" {
		return fmt.Errorf("COUCHBASE_USERNAME is required when ENV=%s", c.Env)
	}
	if !c.IsDev() && c.CouchbasePassword == "" {
		return fmt.Errorf("COUCHBASE_PASSWORD is required when ENV=%s", c.Env)
	}
	return nil
}
