package config

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/ryotarai/machine/command"
	"github.com/sirupsen/logrus"
)

var ErrUnknownProfile = errors.New("unknown profile")

type Config struct {
	Region         string                         `yaml:"Region"`
	LogLevel       string                         `yaml:"LogLevel" validate:"omitempty,oneof=debug info warn warning error"`
	RedisURL       string                         `yaml:"RedisURL"`
	RedisKeyPrefix string                         `yaml:"RedisKeyPrefix"`
	ServicePorts   []int                          `yaml:"ServicePorts" validate:"dive,min=1,max=65535"`
	HookCommands   []command.Command              `yaml:"HookCommands" validate:"dive"`
	SSH            SSH                            `yaml:"SSH"`
	APIAddr        string                         `yaml:"APIAddr"`
	Defaults       LaunchConfiguration            `yaml:"Defaults"`
	Profiles       map[string]LaunchConfiguration `yaml:"Profiles" validate:"dive"`
}

type SSH struct {
	User                   string `yaml:"User"`
	IdentityFile           string `yaml:"IdentityFile"`
	Port                   int    `yaml:"Port" validate:"omitempty,min=1,max=65535"`
	ConfigPath             string `yaml:"ConfigPath"`
	UsePrivateIP           bool   `yaml:"UsePrivateIP"`
	DisableHostKeyChecking bool   `yaml:"DisableHostKeyChecking"`
}

func NewConfig() *Config {
	return &Config{
		LogLevel:       "info",
		RedisKeyPrefix: "machine/",
		APIAddr:        "127.0.0.1:8080",
	}
}

// ProfileNames returns the configured profile names, sorted.
func (c *Config) ProfileNames() []string {
	names := []string{}
	for n := range c.Profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve returns Defaults with the named profile merged over it. An empty
// profile name returns a copy of Defaults.
func (c *Config) Resolve(profile string) (*LaunchConfiguration, error) {
	lc := c.Defaults.clone()
	if profile == "" {
		return &lc, nil
	}

	p, ok := c.Profiles[profile]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownProfile, profile, strings.Join(c.ProfileNames(), ", "))
	}

	if err := mergo.Merge(&lc, p.clone(), mergo.WithOverride); err != nil {
		return nil, err
	}
	return &lc, nil
}

// ImageID returns the AMI, running AMICommand when no AMI is set.
func (lc *LaunchConfiguration) ImageID(ctx context.Context, logger logrus.FieldLogger) (string, error) {
	if lc.AMI != "" {
		return lc.AMI, nil
	}
	if lc.AMICommand == nil {
		return "", errors.New("neither AMI nor AMICommand is set")
	}

	ami, err := lc.AMICommand.GetString(ctx, logger)
	if err != nil {
		return "", fmt.Errorf("AMICommand failed: %w", err)
	}
	ami = strings.TrimSpace(ami)
	if ami == "" {
		return "", errors.New("AMICommand printed nothing")
	}
	return ami, nil
}

// CheckLaunchable reports what a resolved configuration still lacks.
func (lc *LaunchConfiguration) CheckLaunchable() error {
	missing := []string{}
	if lc.InstanceType == "" {
		missing = append(missing, "InstanceType")
	}
	if lc.AMI == "" && lc.AMICommand == nil {
		missing = append(missing, "AMI or AMICommand")
	}
	if len(missing) > 0 {
		return fmt.Errorf("launch configuration is missing %s", strings.Join(missing, ", "))
	}
	return nil
}
