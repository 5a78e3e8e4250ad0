package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"forwardtask/internal/domain"
)

const (
	AppName          = "forwardtask"
	ConfigFile       = "config.yaml"
	DefaultVaultPath = "~/Documents/Obsidian"
	VaultEnv         = "FORWARDTASK_VAULT"
)

// Config is the persisted configuration
type Config struct {
	File          string           `yaml:"-"`
	Vault         string           `yaml:"vault,omitempty"`
	SectionHeader string           `yaml:"section-header"`
	DailyNotes    DailyNotesConfig `yaml:"daily-notes"`
	Log           LogConfig        `yaml:"log"`
	Journal       JournalConfig    `yaml:"journal"`
}

// DailyNotesConfig overrides the vault's own daily-notes settings when set
type DailyNotesConfig struct {
	Folder   string `yaml:"folder,omitempty"`
	Format   string `yaml:"format,omitempty"`
	Template string `yaml:"template,omitempty"`
}

// LogConfig holds logging settings
type LogConfig struct {
	// Level is parsed with zapcore.ParseLevel
	Level string `yaml:"level" default:"warn"`
}

// JournalConfig holds move journal settings
type JournalConfig struct {
	Enabled *bool  `yaml:"enabled" default:"true"`
	Path    string `yaml:"path,omitempty"` // empty for the per-vault default
}

// DefaultConfigDir returns the configuration directory, honoring XDG_CONFIG_HOME
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultPath returns the default configuration file path
func DefaultPath() string {
	return filepath.Join(DefaultConfigDir(), ConfigFile)
}

// Load reads the configuration file at path, or the default path when
// empty. A missing file yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	realpath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve config path failed")
	}

	c := new(Config)
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Wrap(err, "read config file failed")
	default:
		if err := yaml.Unmarshal(file, c); err != nil {
			return nil, errors.Wrap(err, "parse config file failed")
		}
		// Fill fields present in the file but left empty
		if err := defaults.Set(c); err != nil {
			return nil, errors.Wrap(err, "re-set default config failed")
		}
	}

	c.File = filepath.Clean(realpath)
	return c, nil
}

// Save writes the configuration back to its file
func (c *Config) Save() error {
	if c.File == "" {
		c.File = DefaultPath()
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}
	if err := os.MkdirAll(filepath.Dir(c.File), 0755); err != nil {
		return errors.Wrap(err, "create config directory failed")
	}
	if err := writeFileAtomic(c.File, data); err != nil {
		return errors.Wrap(err, "write config file failed")
	}
	return nil
}

// writeFileAtomic replaces path through a temp file in the same folder, so
// an interrupted save leaves the old file in place
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// VaultPath returns the vault path from the FORWARDTASK_VAULT env var,
// then the config file, falling back to DefaultVaultPath.
func (c *Config) VaultPath() string {
	if env := os.Getenv(VaultEnv); env != "" {
		return env
	}
	if strings.TrimSpace(c.Vault) != "" {
		return c.Vault
	}
	return DefaultVaultPath
}

// DailyNoteSettings returns the configured daily-notes overrides
func (c *Config) DailyNoteSettings() domain.DailyNoteSettings {
	return domain.DailyNoteSettings{
		Folder:   c.DailyNotes.Folder,
		Format:   c.DailyNotes.Format,
		Template: c.DailyNotes.Template,
	}
}

// JournalEnabled reports whether moves are journaled
func (c *Config) JournalEnabled() bool {
	return c.Journal.Enabled == nil || *c.Journal.Enabled
}

// Settings adapts the configuration to ports.SettingsStore, saving on every change
type Settings struct {
	cfg *Config
}

// NewSettings creates a settings store backed by cfg
func NewSettings(cfg *Config) *Settings {
	return &Settings{cfg: cfg}
}

func (s *Settings) SectionHeader() string {
	return s.cfg.SectionHeader
}

func (s *Settings) SetSectionHeader(header string) error {
	prev := s.cfg.SectionHeader
	s.cfg.SectionHeader = header
	if err := s.cfg.Save(); err != nil {
		s.cfg.SectionHeader = prev
		return err
	}
	return nil
}
