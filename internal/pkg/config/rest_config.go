package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig holds everything the REST server needs
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Keygen   KeygenSettings   `mapstructure:"keygen"`
}

// Validate validates the config and all nested settings
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Keygen.Validate()
}

// InitializeRestConfig reads the YAML file at path, applies TRSA_* environment
// overrides (e.g. TRSA_DATABASE_DSN) and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("TRSA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.rotation.max_size_mb", 10)
	v.SetDefault("logger.rotation.max_backups", 3)
	v.SetDefault("logger.rotation.max_age_days", 28)
	v.SetDefault("logger.rotation.compress", true)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "textbook-rsa.db")
	v.SetDefault("database.name", "textbook_rsa")
	v.SetDefault("keygen.rounds", DefaultRounds)
	v.SetDefault("keygen.max_prime", DefaultMaxPrime)
	v.SetDefault("keygen.faithful", false)
	v.SetDefault("keygen.seed", 0)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
