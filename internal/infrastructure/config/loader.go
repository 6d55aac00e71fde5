package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFile is the name of the game configuration file
const ConfigFile = "game.json"

// EnvPrefix prefixes environment overrides, e.g. BLOCKFALL_LOGGING_LEVEL
const EnvPrefix = "BLOCKFALL"

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json over the built-in defaults and applies environment overrides
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	var cfg GameConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ConfigFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	return &cfg, nil
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("display.cellSize", d.Display.CellSize)
	v.SetDefault("display.scale", d.Display.Scale)
	v.SetDefault("display.framerate", d.Display.Framerate)
	v.SetDefault("display.title", d.Display.Title)
	v.SetDefault("input.repeatDelayMs", d.Input.RepeatDelayMs)
	v.SetDefault("input.repeatRateMs", d.Input.RepeatRateMs)
	v.SetDefault("input.softDropRateMs", d.Input.SoftDropRateMs)
	v.SetDefault("session.seed", d.Session.Seed)
	v.SetDefault("session.recordDir", d.Session.RecordDir)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	return v
}
