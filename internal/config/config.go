// Package config holds the eventboard settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/eventboard/internal/event"
	"github.com/roach88/eventboard/internal/store"
)

// Defaults applied by Normalize.
const (
	DefaultDatabase     = "eventboard.db"
	DefaultTimezone     = "UTC"
	DefaultMessageTTL   = 3 * time.Second
	DefaultHighlightTTL = 1 * time.Second
)

// Config is the top-level application configuration.
type Config struct {
	// Database is the SQLite file holding the key-value table.
	Database string `yaml:"database" json:"database"`

	// StorageKey is the key the event array is stored under.
	StorageKey string `yaml:"storage_key" json:"storage_key"`

	// Timezone is the IANA zone whose calendar date counts as "today".
	Timezone string `yaml:"timezone" json:"timezone"`

	// IDScheme selects how new event ids are generated:
	//   - "timestamp" (default): Unix milliseconds
	//   - "uuid7": time-ordered UUIDs
	IDScheme string `yaml:"id_scheme" json:"id_scheme"`

	// MessageTTL is how long success and error messages stay visible.
	MessageTTL time.Duration `yaml:"message_ttl" json:"message_ttl"`

	// HighlightTTL is how long a newly created card stays highlighted.
	HighlightTTL time.Duration `yaml:"highlight_ttl" json:"highlight_ttl"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Database:     DefaultDatabase,
		StorageKey:   store.DefaultKey,
		Timezone:     DefaultTimezone,
		IDScheme:     event.SchemeTimestamp,
		MessageTTL:   DefaultMessageTTL,
		HighlightTTL: DefaultHighlightTTL,
	}
}

// Normalize fills in missing or zero values with defaults so that
// partially filled files still behave correctly.
func (c *Config) Normalize() {
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.StorageKey == "" {
		c.StorageKey = store.DefaultKey
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	switch c.IDScheme {
	case event.SchemeTimestamp, event.SchemeUUID7:
	default:
		c.IDScheme = event.SchemeTimestamp
	}
	if c.MessageTTL <= 0 {
		c.MessageTTL = DefaultMessageTTL
	}
	if c.HighlightTTL <= 0 {
		c.HighlightTTL = DefaultHighlightTTL
	}
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist, a default config is written (0600) and
//     returned.
//   - If the file exists, it is decoded and normalized. Unknown keys are
//     rejected.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically via a temp file and rename.
// The parent directory is created (0700) and the file ends up 0600.
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
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".eventboard-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp config: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}
