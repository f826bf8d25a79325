package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingAPIKey      = errors.New("YOUTUBE_API_KEY is required. Set it in .env file")
	ErrNegativeMaxComment = errors.New("max_comments must be >= 0")
)

type Config struct {
	Port           string
	YouTubeKey     string
	AllowOrigins   string
	MaxComments    int
	FetchTimeout   time.Duration
	StopWordsPath  string
	LogLevel       string
	LogDevelopment bool
}

// Load reads .env files, an optional config file named by DROPSCORE_CONFIG and
// the process environment. Environment values win over the config file.
func Load() (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("youtube_api_key", "")
	v.SetDefault("allow_origins", "*")
	v.SetDefault("max_comments", 100)
	v.SetDefault("fetch_timeout", "15s")
	v.SetDefault("stopwords_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_development", false)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("DROPSCORE_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	return &Config{
		Port:           v.GetString("port"),
		YouTubeKey:     v.GetString("youtube_api_key"),
		AllowOrigins:   v.GetString("allow_origins"),
		MaxComments:    v.GetInt("max_comments"),
		FetchTimeout:   v.GetDuration("fetch_timeout"),
		StopWordsPath:  v.GetString("stopwords_path"),
		LogLevel:       v.GetString("log_level"),
		LogDevelopment: v.GetBool("log_development"),
	}, nil
}

// Validate reports configuration that must stop the process at startup.
func (c *Config) Validate() error {
	if c.YouTubeKey == "" {
		return ErrMissingAPIKey
	}
	if c.MaxComments < 0 {
		return ErrNegativeMaxComment
	}
	return nil
}

// loadEnvFiles loads ENV_FILE if set, otherwise .env.local and then .env.
// godotenv never overrides variables that are already set, so the first file wins.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, path := range []string{".env.local", ".env"} {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}
