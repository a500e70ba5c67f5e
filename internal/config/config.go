// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Server      ServerConfig      `mapstructure:"server"`
	App         AppConfig         `mapstructure:"app"`
	Auth        AuthConfig        `mapstructure:"auth"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Log         LogConfig         `mapstructure:"log"`
	CORS        CORSConfig        `mapstructure:"cors"`
	Certificate CertificateConfig `mapstructure:"certificate"`
	Progress    ProgressConfig    `mapstructure:"progress"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AppConfig struct {
	DefaultTotalDays     int    `mapstructure:"default_total_days"`
	IndividualPriceCents int    `mapstructure:"individual_price_cents"`
	Currency             string `mapstructure:"currency"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// JWTConfig は認証プロバイダが発行したアクセストークンの検証設定
type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	Audience  string `mapstructure:"audience"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type CertificateConfig struct {
	Issuer       string `mapstructure:"issuer"`
	DefaultColor string `mapstructure:"default_color"`
	DefaultBadge string `mapstructure:"default_badge"`
}

type ProgressConfig struct {
	// AdvisoryLock が true なら PostgreSQL で pg_advisory_xact_lock も併用する
	AdvisoryLock      bool          `mapstructure:"advisory_lock"`
	SideEffectTimeout time.Duration `mapstructure:"side_effect_timeout"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP") // 例: APP_LOG_LEVEL
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// Auth.Enabled は未設定なら true (有効)
	applyDefaults(&Cfg, viper.IsSet("auth.enabled"), viper.IsSet("progress.advisory_lock"))

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Advisory Lock: %t", Cfg.Progress.AdvisoryLock)

	return nil
}

// --- デフォルト値の設定 ---
func applyDefaults(cfg *Config, authSet, advisoryLockSet bool) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.App.DefaultTotalDays <= 0 {
		cfg.App.DefaultTotalDays = DefaultTotalDays
	}
	if cfg.App.IndividualPriceCents <= 0 {
		cfg.App.IndividualPriceCents = DefaultIndividualPriceCents
	}
	if cfg.App.Currency == "" {
		cfg.App.Currency = DefaultCurrency
	}
	if cfg.Certificate.Issuer == "" {
		cfg.Certificate.Issuer = DefaultCertificateIssuer
	}
	if cfg.Certificate.DefaultColor == "" {
		cfg.Certificate.DefaultColor = DefaultCertificateColor
	}
	if cfg.Certificate.DefaultBadge == "" {
		cfg.Certificate.DefaultBadge = DefaultCertificateBadge
	}
	if cfg.Progress.SideEffectTimeout <= 0 {
		cfg.Progress.SideEffectTimeout = DefaultSideEffectTimeout
	}
	if !authSet {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		cfg.Auth.Enabled = true
	}
	if !advisoryLockSet {
		cfg.Progress.AdvisoryLock = true
	}
	if cfg.Auth.Enabled && cfg.JWT.SecretKey == "" {
		log.Println("Warning: auth is enabled but jwt.secret_key is empty; every request will be rejected.")
	}
}

// Defaults は設定ファイルなしで使えるデフォルト設定を返す (テスト用)
func Defaults() *Config {
	cfg := &Config{}
	applyDefaults(cfg, false, false)
	return cfg
}
