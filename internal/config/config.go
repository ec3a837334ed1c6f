package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Logging   LoggingConfig   `mapstructure:"logging" validate:"required"`
	Postgres  PostgresConfig  `mapstructure:"postgres" validate:"required"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Auth      AuthConfig      `mapstructure:"auth" validate:"required"`
	Dashboard DashboardConfig `mapstructure:"dashboard" validate:"required"`
}

type AppConfig struct {
	Env string `mapstructure:"env" validate:"required,oneof=development production test"`
}

type ServerConfig struct {
	Address        string   `mapstructure:"address" validate:"required"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

type PostgresConfig struct {
	DSN             string        `mapstructure:"dsn"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
}

// GetDSN prefers an explicit DSN and otherwise assembles one from the parts.
func (p PostgresConfig) GetDSN() string {
	if p.DSN != "" {
		return p.DSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type AuthConfig struct {
	JWTSecret          string        `mapstructure:"jwt_secret" validate:"required"`
	SessionTTL         time.Duration `mapstructure:"session_ttl" validate:"required"`
	LoginRatePerMinute int           `mapstructure:"login_rate_per_minute" validate:"gt=0"`
}

type DashboardConfig struct {
	ItemsPerPage int `mapstructure:"items_per_page" validate:"gt=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.dbname", "charty")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 25)
	v.SetDefault("postgres.max_idle_conns", 10)
	v.SetDefault("postgres.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("postgres.connect_timeout", time.Minute)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("auth.jwt_secret", devJWTSecret)
	v.SetDefault("auth.session_ttl", 24*time.Hour)
	v.SetDefault("auth.login_rate_per_minute", 10)
	v.SetDefault("dashboard.items_per_page", 6)
}

// NewConfig reads config.yaml (optional) and CHARTY_* environment variables.
func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/charty")

	v.SetEnvPrefix("CHARTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// devJWTSecret is public; production must override it.
const devJWTSecret = "charty-dev-secret"

const minProductionSecretLen = 32

func (c Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.IsProduction() {
		if c.Auth.JWTSecret == devJWTSecret || len(c.Auth.JWTSecret) < minProductionSecretLen {
			return fmt.Errorf("auth.jwt_secret must be set to at least %d bytes in production", minProductionSecretLen)
		}
	}
	return nil
}

func (c Configuration) IsProduction() bool {
	return c.App.Env == "production"
}

// GetDefaultConfig is used by tests and scripts that never touch the environment.
func GetDefaultConfig() *Configuration {
	v := viper.New()
	setDefaults(v)
	var cfg Configuration
	_ = v.Unmarshal(&cfg)
	return &cfg
}
