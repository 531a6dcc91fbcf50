package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	S3     S3Config
	App    AppConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port string
}

// S3Config configures optional publishing of resized images to a bucket.
type S3Config struct {
	Enabled         bool
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	Prefix          string
}

type AppConfig struct {
	LocalesDir     string
	Language       string
	AllowedFormats []string
	Resampler      string
	JPEGQuality    int
	// RootDir confines the images the service may open or overwrite.
	// Empty means no restriction.
	RootDir string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from the environment, optionally layered over a
// config file. An empty configFile means environment and defaults only.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_HOST", "localhost")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("S3_ENABLED", false)
	v.SetDefault("S3_ENDPOINT", "localhost:9000")
	v.SetDefault("S3_ACCESS_KEY_ID", "minioadmin")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "minioadmin")
	v.SetDefault("S3_BUCKET_NAME", "images")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_PREFIX", "resized/")
	v.SetDefault("APP_LOCALES_DIR", "./locales")
	v.SetDefault("APP_LANGUAGE", "english")
	v.SetDefault("APP_ALLOWED_FORMATS", []string{".jpg", ".jpeg", ".png", ".gif"})
	v.SetDefault("APP_ROOT_DIR", "")
	v.SetDefault("APP_RESAMPLER", "imaging")
	v.SetDefault("APP_JPEG_QUALITY", 95)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetString("SERVER_PORT"),
		},
		S3: S3Config{
			Enabled:         v.GetBool("S3_ENABLED"),
			Endpoint:        v.GetString("S3_ENDPOINT"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
			BucketName:      v.GetString("S3_BUCKET_NAME"),
			Region:          v.GetString("S3_REGION"),
			Prefix:          v.GetString("S3_PREFIX"),
		},
		App: AppConfig{
			LocalesDir:     v.GetString("APP_LOCALES_DIR"),
			Language:       v.GetString("APP_LANGUAGE"),
			AllowedFormats: splitList(v.GetStringSlice("APP_ALLOWED_FORMATS")),
			RootDir:        v.GetString("APP_ROOT_DIR"),
			Resampler:      v.GetString("APP_RESAMPLER"),
			JPEGQuality:    v.GetInt("APP_JPEG_QUALITY"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if cfg.App.JPEGQuality < 1 || cfg.App.JPEGQuality > 100 {
		return nil, fmt.Errorf("APP_JPEG_QUALITY must be within 1..100, got %d", cfg.App.JPEGQuality)
	}

	return cfg, nil
}

// splitList flattens comma-separated entries. Values taken from the
// environment arrive as a single string that viper only splits on spaces.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
