package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"reminders/internal/shortcuts"
)

const (
	DefaultConfigFileName = "config.toml"
	appDirName            = "reminders"
)

// Keymap lists the keys bound to each action, in bubbletea key-string form.
type Keymap struct {
	Quit      []string `toml:"quit"`
	Up        []string `toml:"up"`
	Down      []string `toml:"down"`
	Confirm   []string `toml:"confirm"`
	Back      []string `toml:"back"`
	Cancel    []string `toml:"cancel"`
	Backspace []string `toml:"backspace"`
}

type Config struct {
	Command  string `toml:"command"`
	Shortcut string `toml:"shortcut"`
	LogPath  string `toml:"log_path"`
	Keys     Keymap `toml:"keys"`
}

// ResolveConfigPath returns <user config dir>/reminders/config.toml, or a
// file in the working directory when no config dir is known.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// the file does not exist. Keys left empty in the file keep their defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Command == "" {
		c.Command = def.Command
	}
	if c.Shortcut == "" {
		c.Shortcut = def.Shortcut
	}
	fill := func(dst *[]string, src []string) {
		if len(*dst) == 0 {
			*dst = src
		}
	}
	fill(&c.Keys.Quit, def.Keys.Quit)
	fill(&c.Keys.Up, def.Keys.Up)
	fill(&c.Keys.Down, def.Keys.Down)
	fill(&c.Keys.Confirm, def.Keys.Confirm)
	fill(&c.Keys.Back, def.Keys.Back)
	fill(&c.Keys.Cancel, def.Keys.Cancel)
	fill(&c.Keys.Backspace, def.Keys.Backspace)
}

func Default() Config {
	return Config{
		Command:  shortcuts.DefaultCommand,
		Shortcut: shortcuts.DefaultShortcut,
		Keys: Keymap{
			Quit:      []string{"q", "ctrl+c"},
			Up:        []string{"up", "k"},
			Down:      []string{"down", "j"},
			Confirm:   []string{"enter", "l"},
			Back:      []string{"q", "h"},
			Cancel:    []string{"esc"},
			Backspace: []string{"backspace"},
		},
	}
}
