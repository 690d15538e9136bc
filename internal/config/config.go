package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type QuoteConfig struct {
	FreeQuotesPerMonth int64
}

type Config struct {
	Env      string
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Quote    QuoteConfig
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env (if any) and then the process environment.
// Keys follow the flat names used in deployment, e.g. DB_HOST, REDIS_ADDR.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Env: v.GetString("app_env"),
		HTTP: HTTPConfig{
			Port:         v.GetString("port"),
			ReadTimeout:  v.GetDuration("http_read_timeout"),
			WriteTimeout: v.GetDuration("http_write_timeout"),
			IdleTimeout:  v.GetDuration("http_idle_timeout"),
		},
		Database: DatabaseConfig{
			Host:       v.GetString("db_host"),
			User:       v.GetString("db_user"),
			Password:   v.GetString("db_password"),
			Name:       v.GetString("db_name"),
			Port:       v.GetString("db_port"),
			SSLMode:    v.GetString("db_sslmode"),
			MaxRetries: v.GetInt("db_max_retries"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		Quote: QuoteConfig{
			FreeQuotesPerMonth: v.GetInt64("free_quotes_per_month"),
		},
	}

	if cfg.Quote.FreeQuotesPerMonth <= 0 {
		return nil, fmt.Errorf("FREE_QUOTES_PER_MONTH must be positive, got %d", cfg.Quote.FreeQuotesPerMonth)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")

	v.SetDefault("port", "8000")
	v.SetDefault("http_read_timeout", "5s")
	v.SetDefault("http_write_timeout", "10s")
	v.SetDefault("http_idle_timeout", "60s")

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_name", "smbops")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_max_retries", 5)

	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)

	v.SetDefault("free_quotes_per_month", 5)
}
