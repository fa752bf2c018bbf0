package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	CurveBLS12381 = "bls12381"

	// DefaultDegree bounds the size of committable sets. It must exceed the
	// largest set any accumulator built on the setup will hold.
	DefaultDegree uint32 = 1000
)

type SetupConfig struct {
	// Seeds for the setup secrets s and r. They are stretched to scalar
	// field elements with a domain-separated hash before use.
	SecretS string `yaml:"secret_s"`
	SecretR string `yaml:"secret_r"`
	Degree  uint32 `yaml:"degree"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	ToFile   bool   `yaml:"to_file"`
	Filename string `yaml:"filename"`
}

type Config struct {
	Curve string       `yaml:"curve"`
	Setup *SetupConfig `yaml:"setup"`
	Log   *LogConfig   `yaml:"log"`
}

func NewConfig(path string) (*Config, error) {
	cfg := new(Config)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

func DefaultConfig() *Config {
	cfg := &Config{
		Curve: CurveBLS12381,
		Setup: &SetupConfig{},
		Log: &LogConfig{
			Level:  "debug",
			ToFile: false,
		},
	}
	cfg.fillDefaults()
	return cfg
}

func (c *Config) Validate() error {
	if c.Curve != "" && c.Curve != CurveBLS12381 {
		return fmt.Errorf("unsupported curve %q", c.Curve)
	}
	if c.Log != nil && c.Log.ToFile && c.Log.Filename == "" {
		return fmt.Errorf("log.to_file set but log.filename empty")
	}
	return nil
}

func (c *Config) fillDefaults() {
	if c.Curve == "" {
		c.Curve = CurveBLS12381
	}
	if c.Setup == nil {
		c.Setup = &SetupConfig{}
	}
	if c.Setup.Degree == 0 {
		c.Setup.Degree = DefaultDegree
	}
	if c.Log == nil {
		c.Log = &LogConfig{Level: "info"}
	}
}
