package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

const (
	EnvConfigPath   = "MACHINE_CONFIG"
	defaultFileName = ".machine.yml"
)

// DefaultPath is $MACHINE_CONFIG, or ~/.machine.yml when it is unset.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultFileName
	}
	return filepath.Join(home, defaultFileName)
}

// Load reads the config at path, or at DefaultPath when path is empty. A
// missing default file yields NewConfig; a missing explicit file is an
// error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	c, err := LoadFromYAMLPath(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return NewConfig(), nil
		}
		return nil, err
	}
	return c, nil
}

func LoadFromYAMLPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := LoadFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func LoadFromYAML(data []byte) (*Config, error) {
	config := NewConfig()
	err := yaml.UnmarshalStrict(data, config)
	if err != nil {
		return nil, err
	}

	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}
