package crawldex

import (
	"net/url"
	"time"
)

// Defaults used when no configuration overrides them.
const (
	DefaultBaseURL      = "https://quotes.toscrape.com/"
	DefaultIndexPath    = "inverted_index.json"
	DefaultDelay        = 6 * time.Second
	DefaultFetchTimeout = 10 * time.Second
	DefaultUserAgent    = "crawldex/1.0"
	DefaultMaxBodySize  = 10 << 20
)

// Config holds the settings of a crawl and search session.
type Config struct {
	// BaseURL is the default start URL. The crawl is restricted to the
	// host of the start URL.
	BaseURL string `yaml:"baseUrl"`

	// IndexPath is the default location of the persisted index.
	IndexPath string `yaml:"indexPath"`

	// Delay is the politeness delay between successive fetches.
	Delay time.Duration `yaml:"delay"`

	// MaxPages caps the number of fetched pages. Zero means no limit.
	MaxPages int `yaml:"maxPages"`

	FetchTimeout time.Duration `yaml:"fetchTimeout"`
	UserAgent    string        `yaml:"userAgent"`

	// MaxBodySize is the largest response body in bytes a fetch accepts.
	MaxBodySize int64 `yaml:"maxBodySize"`

	// MetricsFile, if set, receives crawl metrics in the Prometheus text
	// format after each build.
	MetricsFile string `yaml:"metricsFile"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls structured logging level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:      DefaultBaseURL,
		IndexPath:    DefaultIndexPath,
		Delay:        DefaultDelay,
		FetchTimeout: DefaultFetchTimeout,
		UserAgent:    DefaultUserAgent,
		MaxBodySize:  DefaultMaxBodySize,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Errorf(EINVALID, "base URL %q must be an absolute http(s) URL", c.BaseURL)
	}
	if c.IndexPath == "" {
		return Errorf(EINVALID, "index path required")
	}
	if c.Delay < 0 {
		return Errorf(EINVALID, "delay must not be negative")
	}
	if c.MaxPages < 0 {
		return Errorf(EINVALID, "max pages must not be negative")
	}
	if c.MaxBodySize <= 0 {
		return Errorf(EINVALID, "max body size must be positive")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return Errorf(EINVALID, "unknown log format %q", c.Log.Format)
	}
	return nil
}
