// Package config loads techintel configuration from an optional YAML file,
// TECHINTEL_* environment variables and .env files.
//
// Environment variables use the key path upper-cased with dots replaced by
// underscores, e.g. TECHINTEL_PIPELINE_MAX_ARTICLES=40. The sources list can
// only be set from the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/export"
	"github.com/jonesrussell/north-cloud/techintel/internal/feed"
	"github.com/jonesrussell/north-cloud/techintel/internal/httpclient"
	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
	"github.com/jonesrussell/north-cloud/techintel/internal/pipeline"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TECHINTEL"

// Config is the full application configuration.
type Config struct {
	App      AppConfig          `mapstructure:"app" yaml:"app"`
	Logger   logger.Config      `mapstructure:"logger" yaml:"logger"`
	Fetcher  FetcherConfig      `mapstructure:"fetcher" yaml:"fetcher"`
	Parser   ParserConfig       `mapstructure:"parser" yaml:"parser"`
	Pipeline PipelineConfig     `mapstructure:"pipeline" yaml:"pipeline"`
	Server   ServerConfig       `mapstructure:"server" yaml:"server"`
	Channel  export.ChannelInfo `mapstructure:"channel" yaml:"channel"`
	Sources  []domain.Source    `mapstructure:"sources" yaml:"sources"`
}

// AppConfig identifies the running application.
type AppConfig struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Environment string `mapstructure:"environment" yaml:"environment"`
	Debug       bool   `mapstructure:"debug" yaml:"debug"`
}

// FetcherConfig controls feed retrieval.
type FetcherConfig struct {
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"`
}

// ParserConfig controls feed parsing.
type ParserConfig struct {
	// AtomFallback enables reading Atom/JSON feeds that carry no <item> elements.
	AtomFallback bool `mapstructure:"atom_fallback" yaml:"atom_fallback"`
}

// PipelineConfig controls a run.
type PipelineConfig struct {
	MaxArticles int `mapstructure:"max_articles" yaml:"max_articles"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	// AnalyzePerMinute caps analyze requests per minute; 0 disables the limit.
	AnalyzePerMinute int `mapstructure:"analyze_per_minute" yaml:"analyze_per_minute"`
	AnalyzeBurst     int `mapstructure:"analyze_burst" yaml:"analyze_burst"`
}

// Address returns host:port for the listener.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Default values.
const (
	DefaultAppName         = "techintel"
	DefaultEnvironment     = "development"
	DefaultPort            = 8080
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 120 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
	DefaultAnalyzePerMin   = 6
	DefaultAnalyzeBurst    = 2

	DefaultChannelTitle       = "Tech Intelligence Digest"
	DefaultChannelDescription = "Technology news classified by category, sentiment and trend"
)

// SetDefaults registers default values on v so env overrides apply to every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.name", DefaultAppName)
	v.SetDefault("app.environment", DefaultEnvironment)
	v.SetDefault("app.debug", false)

	v.SetDefault("logger.level", logger.DefaultLevel)
	v.SetDefault("logger.format", logger.DefaultFormat)
	v.SetDefault("logger.development", false)
	v.SetDefault("logger.output_paths", []string{"stderr"})

	v.SetDefault("fetcher.timeout", httpclient.DefaultTimeout)
	v.SetDefault("fetcher.user_agent", feed.DefaultUserAgent)

	v.SetDefault("parser.atom_fallback", false)

	v.SetDefault("pipeline.max_articles", pipeline.DefaultArticles)

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("server.analyze_per_minute", DefaultAnalyzePerMin)
	v.SetDefault("server.analyze_burst", DefaultAnalyzeBurst)

	v.SetDefault("channel.title", DefaultChannelTitle)
	v.SetDefault("channel.link", "")
	v.SetDefault("channel.description", DefaultChannelDescription)
}

// Load reads configuration into a Config. An explicit path must exist; with
// an empty path, techintel.yaml is looked up in . and ./config and is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("techintel")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.Sources) == 0 {
		cfg.Sources = pipeline.DefaultSources()
	}
	if cfg.App.Debug {
		cfg.Logger.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnvFiles loads .env files without overriding variables already set:
// ENV_FILE alone when set, otherwise .env.local then .env.
func LoadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}

	return nil
}
