package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Mode         string `yaml:"mode"`
	ReadTimeout  int    `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout" mapstructure:"write_timeout"`
}

type Logger struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	FilePath   string `yaml:"file_path" mapstructure:"file_path"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
}

// SQLiteConfig points at the single local database file.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig backs the server-side session store.
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Database struct {
	SQLite SQLiteConfig `yaml:"sqlite"`
	Redis  RedisConfig  `yaml:"redis"`
}

// SessionConfig controls the per-visit session/cart state.
type SessionConfig struct {
	CookieName string `yaml:"cookie_name" mapstructure:"cookie_name"`
	TTLMinutes int    `yaml:"ttl_minutes" mapstructure:"ttl_minutes"`
}

// StoreConfig holds catalog & order store policy knobs.
//
// AllowDuplicatePhones disables the unique index on customers.phone.
// With the default (false) a second registration with the same phone
// fails; when enabled duplicate phones accumulate and identification
// returns the first matching row. The index is created or dropped on
// every migration, so flipping the flag takes effect on an existing
// database at the next start.
type StoreConfig struct {
	AllowDuplicatePhones bool     `yaml:"allow_duplicate_phones" mapstructure:"allow_duplicate_phones"`
	ImageDirs            []string `yaml:"image_dirs" mapstructure:"image_dirs"`
}

// WhatsAppConfig is only used to format contact deep links.
type WhatsAppConfig struct {
	Number string `yaml:"number"`
}

// RateLimitRule is a token bucket: RPS refill, Burst capacity.
type RateLimitRule struct {
	RPS   int `yaml:"rps" mapstructure:"rps"`
	Burst int `yaml:"burst" mapstructure:"burst"`
}

type RateLimitsConfig struct {
	Global RateLimitRule `yaml:"global" mapstructure:"global"`
}

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   Database         `yaml:"database"`
	Session    SessionConfig    `yaml:"session"`
	Store      StoreConfig      `yaml:"store"`
	WhatsApp   WhatsAppConfig   `yaml:"whatsapp"`
	Logger     Logger           `yaml:"log" mapstructure:"log"`
	RateLimits RateLimitsConfig `yaml:"rate_limits" mapstructure:"rate_limits"`
}

func InitConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var globalConfig Config
	if err := viper.Unmarshal(&globalConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	applyDefaults(&globalConfig)

	return &globalConfig, nil
}

// LoadConfig loads config/config.yaml, falling back to the path used
// when a binary runs from its cmd/ directory.
func LoadConfig() (*Config, error) {
	cfg, err := InitConfig("config/config.yaml")
	if err != nil {
		cfg, err = InitConfig("../../config/config.yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %v", err)
		}
	}

	return cfg, nil
}

// applyDefaults fills zero values so a minimal config file still runs.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.SQLite.Path == "" {
		cfg.Database.SQLite.Path = "pizzaria.db"
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "pizzaria_session"
	}
	if cfg.Session.TTLMinutes <= 0 {
		cfg.Session.TTLMinutes = 120
	}
	if len(cfg.Store.ImageDirs) == 0 {
		cfg.Store.ImageDirs = []string{".", "static"}
	}
	if cfg.WhatsApp.Number == "" {
		cfg.WhatsApp.Number = "5585985417565"
	}
	if cfg.RateLimits.Global.RPS == 0 {
		cfg.RateLimits.Global.RPS = 100
	}
	if cfg.RateLimits.Global.Burst == 0 {
		cfg.RateLimits.Global.Burst = 200
	}
}
