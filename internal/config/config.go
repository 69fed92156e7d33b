// Package config holds model explorer settings. A YAML file is read over the defaults,
// then command-line overrides are laid on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the explorer looks for its config, relative to the working directory.
const DefaultPath = "config/modelexplorer.yaml"

// Config is every setting the explorer reads. Vectors are in the model's Z-up frame.
type Config struct {
	LogLevel   string     `yaml:"log_level"`
	LogFile    string     `yaml:"log_file,omitempty"`
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Eye        [3]float32 `yaml:"eye,flow"`
	Target     [3]float32 `yaml:"target,flow"`
	Fovy       float32    `yaml:"fovy"`
	Gravity    [3]float32 `yaml:"gravity,flow"`
	ShowFPS    bool       `yaml:"show_fps"`
	ShowBounds bool       `yaml:"show_bounds"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Title:    "Model Explorer",
		Width:    1280,
		Height:   720,
		Eye:      [3]float32{0, -4, 2},
		Target:   [3]float32{0, 0, 1},
		Fovy:     45,
		Gravity:  [3]float32{0, 0, -9.81},
		ShowFPS:  true,
	}
}

// Load reads path over Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Overlay copies every non-zero field of src onto dst.
func Overlay(dst *Config, src Config) error {
	return copier.CopyWithOption(dst, &src, copier.Option{IgnoreEmpty: true})
}

// Save writes c to path as YAML, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
