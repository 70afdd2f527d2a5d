// Package yaml loads crawldex configuration from YAML files with
// environment-variable overrides.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/fwojciec/crawldex"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no explicit config path is given.
const DefaultConfigPath = "crawldex.yaml"

// Environment variables that override file settings.
const (
	EnvBaseURL   = "CRAWLDEX_BASE_URL"
	EnvIndexPath = "CRAWLDEX_INDEX_PATH"
	EnvDelay     = "CRAWLDEX_DELAY"
	EnvMaxPages  = "CRAWLDEX_MAX_PAGES"
	EnvLogLevel  = "CRAWLDEX_LOG_LEVEL"
	EnvLogFormat = "CRAWLDEX_LOG_FORMAT"
	EnvMetrics   = "CRAWLDEX_METRICS_FILE"
)

// LoadConfig returns the default config overlaid with the YAML file at path
// and then with CRAWLDEX_* variables looked up through getenv. A nil getenv
// uses os.Getenv.
//
// An empty path reads DefaultConfigPath and tolerates its absence. An
// explicit path that does not exist returns ENOTFOUND. Malformed files and
// overrides return EINVALID, as does a config that fails validation.
func LoadConfig(path string, getenv func(string) string) (*crawldex.Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := crawldex.DefaultConfig()

	optional := path == ""
	if optional {
		path = DefaultConfigPath
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && optional:
	case errors.Is(err, fs.ErrNotExist):
		return nil, crawldex.Errorf(crawldex.ENOTFOUND, "config file %s not found", path)
	case err != nil:
		return nil, crawldex.Errorf(crawldex.EINTERNAL, "reading config file %s: %v", path, err)
	default:
		if err := decode(data, cfg); err != nil {
			return nil, crawldex.Errorf(crawldex.EINVALID, "parsing config file %s: %v", path, err)
		}
	}

	if err := applyEnvOverrides(cfg, getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays data onto cfg, rejecting unknown keys.
func decode(data []byte, cfg *crawldex.Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnvOverrides(cfg *crawldex.Config, getenv func(string) string) error {
	if v := getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv(EnvIndexPath); v != "" {
		cfg.IndexPath = v
	}
	if v := getenv(EnvDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return crawldex.Errorf(crawldex.EINVALID, "%s: invalid duration %q", EnvDelay, v)
		}
		cfg.Delay = d
	}
	if v := getenv(EnvMaxPages); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return crawldex.Errorf(crawldex.EINVALID, "%s: invalid number %q", EnvMaxPages, v)
		}
		cfg.MaxPages = n
	}
	if v := getenv(EnvMetrics); v != "" {
		cfg.MetricsFile = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	return nil
}
