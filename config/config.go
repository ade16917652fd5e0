package config

import (
	"io/ioutil"
	"os"
	"path"
	"runtime"
	"strconv"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"
	"github.com/zeozeozeo/restdiv/divider"
	"gopkg.in/yaml.v2"
)

const (
	MainDir          = ".restdiv"
	MainFileFullName = "config.yaml"
	EnvPrefix        = "RESTDIV_"
)

// FileNotFoundError denotes failing to find an explicitly requested config file.
type FileNotFoundError struct {
	name string
}

// Error returns the formatted configuration error.
func (f FileNotFoundError) Error() string {
	return "config file " + f.name + " not found"
}

// Config holds the configured operand pair and the knobs of the tool.
type Config struct {
	Mode             string `mapstructure:"mode"`
	Dividend         string `mapstructure:"dividend"`
	Divisor          string `mapstructure:"divisor"`
	LogLevel         string `mapstructure:"log-level"`
	Workers          int    `mapstructure:"workers"`
	TrapDivideErrors bool   `mapstructure:"trap-divide-errors"`
}

// Default returns the built-in configuration: 0x78 / 0xA unsigned.
func Default() *Config {
	return &Config{
		Mode:     divider.MODE_UNSIGNED.String(),
		Dividend: "0x78",
		Divisor:  "0xa",
		LogLevel: "info",
		Workers:  runtime.NumCPU(),
	}
}

// DefaultPath returns ~/.restdiv/config.yaml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error finding home directory")
	}
	return path.Join(home, MainDir, MainFileFullName), nil
}

// Load reads the config file at fileName, or the default path when fileName is empty,
// then applies environment overrides.
// A missing default file is not an error.
func Load(fileName string) (*Config, error) {
	cfg := Default()
	explicit := fileName != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		fileName = p
	}

	data, err := ioutil.ReadFile(fileName)
	switch {
	case err == nil:
		if err := cfg.decode(data); err != nil {
			return nil, errors.Wrapf(err, "error reading config file %v", fileName)
		}
	case os.IsNotExist(err) && !explicit:
		// use the defaults
	case os.IsNotExist(err):
		return nil, FileNotFoundError{name: fileName}
	default:
		return nil, errors.Wrapf(err, "error reading config file %v", fileName)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode unmarshals YAML into a generic map and copies it onto the config.
func (c *Config) decode(data []byte) error {
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "error unmarshalling yaml")
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           c,
	})
	if err != nil {
		return err
	}
	return errors.Wrap(decoder.Decode(raw), "error decoding config")
}

// ApplyEnv overrides fields with RESTDIV_* environment variables.
// Malformed numbers and booleans are errors.
func (c *Config) ApplyEnv() error {
	c.Mode = env.Str(EnvPrefix+"MODE", c.Mode)
	c.Dividend = env.Str(EnvPrefix+"DIVIDEND", c.Dividend)
	c.Divisor = env.Str(EnvPrefix+"DIVISOR", c.Divisor)
	c.LogLevel = env.Str(EnvPrefix+"LOG_LEVEL", c.LogLevel)
	if name := EnvPrefix + "WORKERS"; env.Has(name) {
		workers, err := strconv.Atoi(env.Str(name, ""))
		if err != nil {
			return errors.Wrapf(err, "error reading %s", name)
		}
		c.Workers = workers
	}
	if name := EnvPrefix + "TRAP_DIVIDE_ERRORS"; env.Has(name) {
		trap, err := strconv.ParseBool(env.Str(name, ""))
		if err != nil {
			return errors.Wrapf(err, "error reading %s", name)
		}
		c.TrapDivideErrors = trap
	}
	return nil
}

// Validate checks the mode, the operands and the worker count.
func (c *Config) Validate() error {
	if _, _, _, err := c.Operands(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// ParsedMode returns the division mode.
func (c *Config) ParsedMode() (divider.Mode, error) {
	return divider.ParseMode(c.Mode)
}

// Operands returns the configured dividend, divisor and mode.
func (c *Config) Operands() (dividend, divisor uint32, mode divider.Mode, err error) {
	mode, err = c.ParsedMode()
	if err != nil {
		return 0, 0, mode, err
	}
	if dividend, err = divider.ParseOperand(c.Dividend, mode); err != nil {
		return 0, 0, mode, errors.Wrap(err, "dividend")
	}
	if divisor, err = divider.ParseOperand(c.Divisor, mode); err != nil {
		return 0, 0, mode, errors.Wrap(err, "divisor")
	}
	return dividend, divisor, mode, nil
}
