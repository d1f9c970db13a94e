package config

import (
	"github.com/creasty/defaults"
	"github.com/goccy/go-yaml"
	icingadbConfig "github.com/icinga/icingadb/pkg/config"
	"github.com/icinga/icingadb/pkg/logging"
	"github.com/pkg/errors"
	"io"
	"os"
)

// ConfigFile holds the settings of the address book demo.
type ConfigFile struct {
	Logging icingadbConfig.Logging `yaml:"logging"`
}

// SetDefaults implements the defaults.Setter interface.
func (c *ConfigFile) SetDefaults() {
	if defaults.CanUpdate(c.Logging.Output) {
		c.Logging.Output = logging.CONSOLE
	}
}

// Validate checks the loaded configuration for errors.
func (c *ConfigFile) Validate() error {
	return c.Logging.Validate()
}

// Assert interface compliance.
var _ defaults.Setter = (*ConfigFile)(nil)

// Default returns a ConfigFile populated with default values only.
func Default() (*ConfigFile, error) {
	var c ConfigFile
	if err := defaults.Set(&c); err != nil {
		return nil, errors.Wrap(err, "can't set config defaults")
	}

	return &c, nil
}

// FromFile loads the YAML config file at path on top of the defaults.
//
// Unknown keys are rejected. An empty file yields the default configuration.
func FromFile(path string) (*ConfigFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't open config file")
	}
	defer func() { _ = f.Close() }()

	c, err := Default()
	if err != nil {
		return nil, err
	}

	d := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "can't parse config file %q", path)
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return c, nil
}
