package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Booking BookingConfig `yaml:"booking"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// BookingConfig holds the engine's tunables. Defaults: Europe/Helsinki,
// rooms A and B, office hours 08:00-16:00, 30-minute blocks, 30 minutes to
// 8 hours per reservation.
type BookingConfig struct {
	Timezone      string   `yaml:"timezone"`
	Rooms         []string `yaml:"rooms"`
	BusinessOpen  string   `yaml:"business_open"`
	BusinessClose string   `yaml:"business_close"`
	BlockMinutes  int      `yaml:"block_minutes"`
	MinDuration   string   `yaml:"min_duration"`
	MaxDuration   string   `yaml:"max_duration"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Booking: BookingConfig{
			Timezone:      "Europe/Helsinki",
			Rooms:         []string{"A", "B"},
			BusinessOpen:  "08:00",
			BusinessClose: "16:00",
			BlockMinutes:  30,
			MinDuration:   "30m",
			MaxDuration:   "8h",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file and overlays it on the defaults. A missing file is
// not an error; the service runs on defaults alone.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Location resolves the canonical local zone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Booking.Timezone)
}

// BusinessHours parses the open and close bounds as offsets from local
// midnight.
func (c Config) BusinessHours() (open, close time.Duration, err error) {
	open, err = parseClock(c.Booking.BusinessOpen)
	if err != nil {
		return 0, 0, fmt.Errorf("business_open: %w", err)
	}
	close, err = parseClock(c.Booking.BusinessClose)
	if err != nil {
		return 0, 0, fmt.Errorf("business_close: %w", err)
	}
	return open, close, nil
}

// DurationBounds parses the minimum and maximum reservation length.
func (c Config) DurationBounds() (min, max time.Duration, err error) {
	min, err = time.ParseDuration(c.Booking.MinDuration)
	if err != nil {
		return 0, 0, fmt.Errorf("min_duration: %w", err)
	}
	max, err = time.ParseDuration(c.Booking.MaxDuration)
	if err != nil {
		return 0, 0, fmt.Errorf("max_duration: %w", err)
	}
	return min, max, nil
}

// BlockSize is the alignment grid for reservation endpoints.
func (c Config) BlockSize() time.Duration {
	return time.Duration(c.Booking.BlockMinutes) * time.Minute
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
