package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Tiliavir/sentimizer/internal/journal"
	"github.com/Tiliavir/sentimizer/internal/storage"
)

// Config is the root configuration for senti, stored in ~/.senti/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// Nickname is used in the status greeting.
	Nickname string         `json:"nickname"`
	Storage  StorageConfig  `json:"storage"`
	Defaults DefaultsConfig `json:"defaults"`
	List     ListConfig     `json:"list"`
}

// StorageConfig selects where entries live.
type StorageConfig struct {
	// Backend is "sqlite" or "json".
	Backend string `json:"backend"`
	// Dir holds the database or the day files. Empty means the senti home.
	Dir string `json:"dir"`
}

// DefaultsConfig holds the values shown for fields an entry leaves empty.
type DefaultsConfig struct {
	Activity        string `json:"activity"`
	Sentiment       string `json:"sentiment"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ListConfig tunes the list command.
type ListConfig struct {
	// RecentLimit caps how many entries are grouped when no month is chosen.
	RecentLimit int `json:"recent_limit"`
}

const (
	// DefaultBackend is the storage backend used when none is configured.
	DefaultBackend = storage.BackendSQLite
	// DefaultRecentLimit matches the number of entries the journal screen fetches.
	DefaultRecentLimit = 100
)

// JournalDefaults converts the configured defaults for the journal adapter.
func (c Config) JournalDefaults() journal.Defaults {
	return journal.Defaults{
		Activity:        c.Defaults.Activity,
		Sentiment:       c.Defaults.Sentiment,
		DurationMinutes: c.Defaults.DurationMinutes,
	}
}

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	var cfg Config
	cfg.fill()
	return cfg
}

// fill replaces zero-value fields with built-in defaults so callers always get
// a usable Config even if the user only partially fills in the file.
func (c *Config) fill() {
	d := journal.DefaultValues()
	if c.Storage.Backend == "" {
		c.Storage.Backend = DefaultBackend
	}
	if c.Defaults.Activity == "" {
		c.Defaults.Activity = d.Activity
	}
	if c.Defaults.Sentiment == "" {
		c.Defaults.Sentiment = d.Sentiment
	}
	if c.Defaults.DurationMinutes <= 0 {
		c.Defaults.DurationMinutes = d.DurationMinutes
	}
	if c.List.RecentLimit <= 0 {
		c.List.RecentLimit = DefaultRecentLimit
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// senti configuration
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise senti behaviour.
{
  // Name used in the greeting of "senti status".
  "nickname": "",

  "storage": {
    // "sqlite" keeps everything in journal.db.
    // "json" keeps one readable file per day (YYYY/MM/DD.json).
    "backend": "sqlite",

    // Directory for the data. Leave empty to use the senti home (~/.senti).
    "dir": ""
  },

  // Values shown for entries that were logged without them.
  "defaults": {
    "activity": "senting",
    "sentiment": "happy",
    "duration_minutes": 10
  },

  "list": {
    // Number of most recent entries grouped by "senti list" without --month.
    "recent_limit": 100
  }
}
`

// FilePath returns the path to config.json under the senti home.
func FilePath() (string, error) {
	base, err := storage.BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config at path, creating it with annotated defaults on first
// run. An empty path means FilePath. A missing storage dir resolves to the
// directory holding the config file. A template that cannot be written is
// logged and the defaults are used.
func Load(path string, log *zap.Logger) (Config, error) {
	if path == "" {
		var err error
		path, err = FilePath()
		if err != nil {
			return defaultConfig(), err
		}
	}

	cfg, err := read(path, log)
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = filepath.Dir(path)
	}
	return cfg, err
}

func read(path string, log *zap.Logger) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			log.Warn("Could not create config file", zap.String("path", path), zap.Error(writeErr))
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	cfg.fill()
	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
