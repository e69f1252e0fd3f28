package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults for the serve subcommand.
const (
	DefaultListen       = "127.0.0.1:8080"
	DefaultYears        = 5
	DefaultCalendarName = "Svenska helgdagar"
	DefaultPublishedTTL = "PT24H"
)

// Config is the configuration of the subscription feed server. The plain
// generator CLI never reads it.
type Config struct {
	// Listen is the HTTP listen address for the feed server.
	Listen string `yaml:"listen"`

	// Years is the span of the generated calendar when a request does not
	// specify one.
	Years int `yaml:"years"`

	// CalendarName is the feed's display name (X-WR-CALNAME).
	CalendarName string `yaml:"calendar_name"`

	// PublishedTTL is the refresh interval suggested to subscribers
	// (X-PUBLISHED-TTL), an ISO 8601 duration.
	PublishedTTL string `yaml:"published_ttl"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:       DefaultListen,
		Years:        DefaultYears,
		CalendarName: DefaultCalendarName,
		PublishedTTL: DefaultPublishedTTL,
	}
}

// Normalize fills in missing/zero values so that partially-filled configs
// still behave correctly.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Years <= 0 {
		c.Years = DefaultYears
	}
	if c.CalendarName == "" {
		c.CalendarName = DefaultCalendarName
	}
	if c.PublishedTTL == "" {
		c.PublishedTTL = DefaultPublishedTTL
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist: create the parent directory if needed,
//     write a default config with 0600 perms and return the defaults.
//   - If the file exists: unmarshal it and normalize defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create a default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Return cfg with the error so the caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path. The parent
// directory is created with 0700 and the file is written atomically via a
// temp file + rename, ending up with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".helgdagar-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any error path.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	return nil
}

// Save delegates to the package-level Save function:
//
//	cfg, _ := config.Load(path)
//	// ... mutate cfg ...
//	if err := cfg.Save(path); err != nil { ... }
func (c *Config) Save(path string) error {
	return Save(path, c)
}
