package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up when no path is given.
const DefaultFile = "scheduler.yml"

// Config represents the top-level scheduler.yml configuration
type Config struct {
	Version string       `yaml:"version"`
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Server  ServerConfig `yaml:"server"`
	Log     LogConfig    `yaml:"log"`
}

// InputConfig lists the CSV files the entity collections are loaded from
type InputConfig struct {
	TeachersFile   string `yaml:"teachers"`
	SubjectsFile   string `yaml:"subjects"`
	ClassroomsFile string `yaml:"classrooms"`
	TimeSlotsFile  string `yaml:"time_slots"`
	Delimiter      string `yaml:"delimiter"`
}

// OutputConfig lists export targets. Empty paths skip that export.
type OutputConfig struct {
	ScheduleFile string `yaml:"schedule,omitempty"`
	BookingsFile string `yaml:"bookings,omitempty"`
	TeachersFile string `yaml:"teachers,omitempty"`
}

// ServerConfig configures the HTTP shell
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

func Default() *Config {
	return &Config{
		Version: "1.0",
		Input: InputConfig{
			TeachersFile:   "./res/teachers.csv",
			SubjectsFile:   "./res/subjects.csv",
			ClassroomsFile: "./res/classrooms.csv",
			TimeSlotsFile:  "./res/time_slots.csv",
			Delimiter:      ";",
		},
		Output: OutputConfig{
			ScheduleFile: "schedule.csv",
		},
		Server: ServerConfig{
			Addr: ":3001",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path on top of the defaults. A missing DefaultFile is not an
// error; any other missing path is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate performs strict validation on the configuration
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("input.delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// DelimiterRune returns the input delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	return r
}
