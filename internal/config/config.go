package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v2"
)

// DefaultRegion is used when neither the config file nor a flag names one.
const DefaultRegion = "eu-central-1"

type Config struct {
	AWS    AWS    `yaml:"aws"`
	Output Output `yaml:"output"`
	Log    Log    `yaml:"log"`
	Theme  string `yaml:"theme"`
	SSH    SSH    `yaml:"ssh"`
}

type AWS struct {
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`
}

type Output struct {
	Indent int `yaml:"indent"`
}

type Log struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// SSH is used by the browser when connecting to a host.
type SSH struct {
	User   string `yaml:"user"`
	KeyDir string `yaml:"key_dir"`
	Key    string `yaml:"key"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		AWS:    AWS{Region: DefaultRegion},
		Output: Output{Indent: 2},
		Log:    Log{Level: "info"},
		Theme:  "tokyo_night",
		SSH:    SSH{User: "ec2-user", KeyDir: "~/.ssh"},
	}
}

// DefaultPath returns the per-OS location of the config file.
func DefaultPath() string {
	var configPath string

	switch runtime.GOOS {
	case "windows":
		configPath, _ = ExpandPath(filepath.Join("$LOCALAPPDATA", "ec2-inventory", "config.yml"))
	case "darwin":
		configPath, _ = ExpandPath("~/Library/Application Support/ec2-inventory/config.yml")
	default:
		configPath, _ = ExpandPath("~/.config/ec2-inventory/config.yml")
	}
	return configPath
}

// Load reads the config file at path, or at DefaultPath when path is empty.
// A missing file gives the defaults; values in the file override them.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	config := Default()
	yamlFile, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(yamlFile, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks values that yaml cannot constrain.
func (c *Config) Validate() error {
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return fmt.Errorf("output.indent must be between 0 and 8, got %d", c.Output.Indent)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	return nil
}

// KeyPath returns the private key passed to ssh, or "" to let ssh pick one.
func (s SSH) KeyPath() string {
	if s.Key == "" {
		return ""
	}
	if filepath.IsAbs(s.Key) || strings.HasPrefix(s.Key, "~") {
		path, err := ExpandPath(s.Key)
		if err != nil {
			return s.Key
		}
		return path
	}
	dir, err := ExpandPath(s.KeyDir)
	if err != nil {
		dir = s.KeyDir
	}
	return filepath.Join(dir, s.Key)
}

// ExpandPath expands environment variables and a leading "~" and makes the
// result absolute.
func ExpandPath(path string) (string, error) {
	// 1. Expand environment variables
	expanded := os.ExpandEnv(path)

	// 2. Expand user home directory (~)
	if strings.HasPrefix(expanded, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		expanded = strings.Replace(expanded, "~", homeDir, 1)
	}

	// 3. Get the absolute path
	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("could not get absolute path for '%s': %w", expanded, err)
	}

	return absPath, nil
}
