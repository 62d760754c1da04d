package conf

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Search  SearchConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// BackendConfig points at the search aggregation API.
type BackendConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// SearchConfig carries the page-state defaults and display settings.
type SearchConfig struct {
	DefaultSafe     string `mapstructure:"default_safe"`
	DefaultLanguage string `mapstructure:"default_language"`
	DefaultEngine   string `mapstructure:"default_engine"`
	IconServiceBase string `mapstructure:"icon_service_base"`
	TotalPages      int    `mapstructure:"total_pages"`

	// BangsFile optionally replaces the embedded bang table.
	BangsFile string `mapstructure:"bangs_file"`
}

type LogConfig struct {
	Level            string        `mapstructure:"level"`
	Format           string        `mapstructure:"format"`
	Output           string        `mapstructure:"output"`
	File             FileLogConfig `mapstructure:"file"`
	EnableCaller     bool          `mapstructure:"enablecaller"`
	EnableStacktrace bool          `mapstructure:"enablestacktrace"`
}

type FileLogConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxAge     int    `mapstructure:"maxage"`
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("nilch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3000)

	viper.SetDefault("backend.base_url", "http://localhost:5000")
	viper.SetDefault("backend.timeout", 30*time.Second)

	viper.SetDefault("search.default_safe", "strict")
	viper.SetDefault("search.default_language", "en-GB")
	viper.SetDefault("search.default_engine", "duckduckgo")
	viper.SetDefault("search.icon_service_base", "https://icons.duckduckgo.com/ip3")
	viper.SetDefault("search.total_pages", 9)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("log.output", "console")
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}

	if s := c.Search.DefaultSafe; s != "strict" && s != "off" {
		return fmt.Errorf("search.default_safe must be \"strict\" or \"off\", got %q", s)
	}

	if c.Search.TotalPages <= 0 {
		return fmt.Errorf("search.total_pages must be positive, got %d", c.Search.TotalPages)
	}

	return nil
}
