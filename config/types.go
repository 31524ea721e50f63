package config

import "fmt"

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Site          SiteConfig          `mapstructure:"site"`
	Email         EmailConfig         `mapstructure:"email"`
	Contact       ContactConfig       `mapstructure:"contact"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"`
	Domain         string     `mapstructure:"domain"`
	StaticDir      string     `mapstructure:"static_dir"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// SiteConfig carries the clinic identity shown on the website and embedded
// into outbound email footers.
type SiteConfig struct {
	Name     string        `mapstructure:"name"`
	URL      string        `mapstructure:"url"`
	Phone    string        `mapstructure:"phone"`
	TollFree string        `mapstructure:"toll_free"`
	Fax      string        `mapstructure:"fax"`
	Email    string        `mapstructure:"email"`
	Address  AddressConfig `mapstructure:"address"`
}

type AddressConfig struct {
	Street string `mapstructure:"street"`
	City   string `mapstructure:"city"`
	State  string `mapstructure:"state"`
	Zip    string `mapstructure:"zip"`
}

type EmailConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	From    string `mapstructure:"from"`
	// Recipient is the staff inbox contact submissions are delivered to.
	Recipient string     `mapstructure:"recipient"`
	SMTP      SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	UseTLS         bool   `mapstructure:"use_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type ContactConfig struct {
	RateLimit ContactRateLimitConfig `mapstructure:"rate_limit"`
}

type ContactRateLimitConfig struct {
	// Store selects the admit-store backend: "memory" (default) or "redis".
	Store             string `mapstructure:"store"`
	WindowSeconds     int    `mapstructure:"window_seconds"`
	PruneAfterMinutes int    `mapstructure:"prune_after_minutes"`
	PruneThreshold    int    `mapstructure:"prune_threshold"`
}

type NotificationsConfig struct {
	// FeedURL is the published-spreadsheet CSV export for the banner feed.
	FeedURL         string `mapstructure:"feed_url"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
	MaxItems        int    `mapstructure:"max_items"`
}

type RedisConfig struct {
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type LoggingConfig struct {
	Level  string              `mapstructure:"level"`
	Format string              `mapstructure:"format"`
	Output LoggingOutputConfig `mapstructure:"output"`
}

type LoggingOutputConfig struct {
	Stdout bool              `mapstructure:"stdout"`
	File   LoggingFileConfig `mapstructure:"file"`
	Loki   LoggingLokiConfig `mapstructure:"loki"`
}

type LoggingFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LoggingLokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if s := c.Contact.RateLimit.Store; s != "" && s != "memory" && s != "redis" {
		return fmt.Errorf("contact.rate_limit.store must be \"memory\" or \"redis\", got %q", s)
	}
	if c.Contact.RateLimit.Store == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("contact.rate_limit.store is redis but redis.addr is empty")
	}
	if c.Email.Enabled && c.Email.SMTP.Host == "" {
		return fmt.Errorf("email.enabled is true but email.smtp.host is empty")
	}
	return nil
}
