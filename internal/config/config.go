package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/session"
)

type DatasetConfig struct {
	Path        string `mapstructure:"path"`
	TextColumn  string `mapstructure:"text_column"`
	ScoreColumn string `mapstructure:"score_column"` // empty: polarity_score or skor_polaritas
	Cache       bool   `mapstructure:"cache"`
	CachePath   string `mapstructure:"cache_path"`
}

type ViewConfig struct {
	PageSize int `mapstructure:"page_size"` // one of session.PageSizes
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type NotificationsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Dataset       DatasetConfig       `mapstructure:"dataset"`
	View          ViewConfig          `mapstructure:"view"`
	Theme         string              `mapstructure:"theme"`
	Log           LogConfig           `mapstructure:"log"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

const envPrefix = "SENTIMEN"

func Default() Config {
	return Config{
		Dataset: DatasetConfig{
			Path:       "HASIL_AKHIR_SKOR_POLARITAS_V2.csv",
			TextColumn: "text",
			Cache:      true,
			CachePath:  "~/.local/share/sentimen/cache.db",
		},
		View:          ViewConfig{PageSize: session.DefaultPageSize},
		Theme:         "default",
		Log:           LogConfig{Level: "info", File: "~/.local/share/sentimen/sentimen.log"},
		Notifications: NotificationsConfig{Enabled: true},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sentimen", "config.yaml"), nil
}

// Load reads ~/.config/sentimen/config.yaml. A missing file is fine.
func Load() (Config, error) {
	path, err := xdgConfigPath()
	if err != nil {
		return Default(), err
	}
	return load(path, false)
}

// LoadFile reads the config at path, which must exist.
func LoadFile(path string) (Config, error) {
	return load(path, true)
}

func load(path string, required bool) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults; also registers every key for env lookup
	v.SetDefault("dataset.path", cfg.Dataset.Path)
	v.SetDefault("dataset.text_column", cfg.Dataset.TextColumn)
	v.SetDefault("dataset.score_column", cfg.Dataset.ScoreColumn)
	v.SetDefault("dataset.cache", cfg.Dataset.Cache)
	v.SetDefault("dataset.cache_path", cfg.Dataset.CachePath)
	v.SetDefault("view.page_size", cfg.View.PageSize)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("notifications.enabled", cfg.Notifications.Enabled)

	if err := v.ReadInConfig(); err != nil {
		if required || !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if !session.ValidPageSize(c.View.PageSize) {
		c.View.PageSize = session.DefaultPageSize
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Dataset.TextColumn = strings.TrimSpace(c.Dataset.TextColumn)
	c.Dataset.ScoreColumn = strings.TrimSpace(c.Dataset.ScoreColumn)
	c.Dataset.Path = ExpandHome(c.Dataset.Path)
	c.Dataset.CachePath = ExpandHome(c.Dataset.CachePath)
	c.Log.File = ExpandHome(c.Log.File)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
