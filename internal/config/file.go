package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/ytget/glass-calculator/internal/engine"
	"github.com/ytget/glass-calculator/internal/model"
)

// Config file location relative to the user config directory
const (
	ConfigDirName  = "glass-calculator"
	ConfigFileName = "config.toml"
)

var (
	ErrInvalidVariant   = errors.New("invalid variant")
	ErrInvalidAngleMode = errors.New("invalid angle mode")
	ErrInvalidPrecision = errors.New("invalid precision")
)

// File is the optional TOML configuration. Empty fields are left to the
// preferences or built-in defaults.
type File struct {
	Variant   string `toml:"variant,omitempty"`
	AngleMode string `toml:"angle_mode,omitempty"`
	Precision *int   `toml:"precision,omitempty"`
	Language  string `toml:"language,omitempty"`
}

// DefaultFilePath returns $XDG_CONFIG_HOME/glass-calculator/config.toml
// (or the platform equivalent), or "" when no config dir is known.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName)
}

// LoadFile reads and validates the config file at path. A missing file
// yields an empty config and no error.
func LoadFile(fs afero.Fs, path string) (*File, error) {
	f := &File{}
	if path == "" {
		return f, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	if _, err := toml.Decode(string(data), f); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}

	if err := f.normalize(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return f, nil
}

// normalize validates values and rewrites aliases to canonical names
func (f *File) normalize() error {
	if f.Variant != "" {
		v, ok := model.ParseVariant(f.Variant)
		if !ok {
			return errors.Wrapf(ErrInvalidVariant, "%q", f.Variant)
		}
		f.Variant = string(v)
	}
	if f.AngleMode != "" {
		mode, ok := model.ParseAngleMode(f.AngleMode)
		if !ok {
			return errors.Wrapf(ErrInvalidAngleMode, "%q", f.AngleMode)
		}
		f.AngleMode = string(mode)
	}
	if f.Precision != nil && (*f.Precision < 0 || *f.Precision > engine.MaxPrecision) {
		return errors.Wrapf(ErrInvalidPrecision, "%d not in 0..%d", *f.Precision, engine.MaxPrecision)
	}
	return nil
}

// SaveFile writes f as TOML, creating the parent directory
func SaveFile(fs afero.Fs, path string, f *File) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create config dir for %s", path)
	}

	out, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create config %s", path)
	}
	defer out.Close()

	if err := toml.NewEncoder(out).Encode(f); err != nil {
		return errors.Wrapf(err, "encode config %s", path)
	}
	return nil
}
