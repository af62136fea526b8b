package sim

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plus3/tethered/vmath"
)

// ErrInvalidSettings is wrapped by every error returned from Settings.Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// RespawnPolicy selects the health a player returns with after reclaiming
// its body.
type RespawnPolicy string

const (
	// RespawnFull restores MaxHealth.
	RespawnFull RespawnPolicy = "max"
	// RespawnHalf restores half of MaxHealth, rounded up.
	RespawnHalf RespawnPolicy = "half"
)

// Health returns the health to respawn with for the given maximum.
func (p RespawnPolicy) Health(maxHealth int) int {
	if p == RespawnHalf {
		return (maxHealth + 1) / 2
	}
	return maxHealth
}

// Resolution is the arena size in simulation units.
type Resolution struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Center returns the middle of the arena.
func (r Resolution) Center() vmath.Vec2 {
	return vmath.V(r.Width*0.5, r.Height*0.5)
}

// Settings are the read-only inputs of the simulation and the loop driver.
type Settings struct {
	// StepDuration is the simulated time advanced by one fixed step.
	StepDuration time.Duration `yaml:"stepDuration"`

	// Resolution is the arena the players, spawn circle and respawn circle
	// are laid out in.
	Resolution Resolution `yaml:"resolution"`

	// SpawnCap bounds the enemy population.
	SpawnCap int `yaml:"spawnCap"`

	// SpawnInterval is the number of fixed steps between spawn attempts.
	SpawnInterval int `yaml:"spawnInterval"`

	// DamagePerHit is subtracted from a player for every overlapping enemy
	// on every fixed step.
	DamagePerHit int `yaml:"damagePerHit"`

	// RespawnHealth is the health policy applied when a body is reclaimed.
	RespawnHealth RespawnPolicy `yaml:"respawnHealth"`

	// ScoreRate is added to the score per living player per fixed step.
	ScoreRate float64 `yaml:"scoreRate"`

	// MaxFrameDelta is the largest frame delta the driver accepts; longer
	// frames are discarded and the clock resynchronized.
	MaxFrameDelta time.Duration `yaml:"maxFrameDelta"`

	// Seed initializes the random source used for spawn and respawn points.
	Seed string `yaml:"seed"`
}

// DefaultSettings returns the reference configuration.
func DefaultSettings() Settings {
	return Settings{
		StepDuration:  10 * time.Millisecond,
		Resolution:    Resolution{Width: 1920, Height: 1080},
		SpawnCap:      10,
		SpawnInterval: 100,
		DamagePerHit:  1,
		RespawnHealth: RespawnFull,
		ScoreRate:     1.0 / 16.0,
		MaxFrameDelta: time.Second,
		Seed:          "death",
	}
}

// Validate checks that the settings can drive a simulation.
func (s Settings) Validate() error {
	switch {
	case s.StepDuration <= 0:
		return fmt.Errorf("%w: stepDuration must be positive, got %s", ErrInvalidSettings, s.StepDuration)
	case s.Resolution.Width <= 0 || s.Resolution.Height <= 0:
		return fmt.Errorf("%w: resolution must be positive, got %gx%g", ErrInvalidSettings, s.Resolution.Width, s.Resolution.Height)
	case s.SpawnCap < 0:
		return fmt.Errorf("%w: spawnCap must not be negative, got %d", ErrInvalidSettings, s.SpawnCap)
	case s.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawnInterval must be positive, got %d", ErrInvalidSettings, s.SpawnInterval)
	case s.DamagePerHit < 0:
		return fmt.Errorf("%w: damagePerHit must not be negative, got %d", ErrInvalidSettings, s.DamagePerHit)
	case s.RespawnHealth != RespawnFull && s.RespawnHealth != RespawnHalf:
		return fmt.Errorf("%w: unknown respawnHealth policy %q", ErrInvalidSettings, s.RespawnHealth)
	case s.ScoreRate < 0:
		return fmt.Errorf("%w: scoreRate must not be negative, got %g", ErrInvalidSettings, s.ScoreRate)
	case s.MaxFrameDelta < s.StepDuration:
		return fmt.Errorf("%w: maxFrameDelta %s is shorter than stepDuration %s", ErrInvalidSettings, s.MaxFrameDelta, s.StepDuration)
	}
	return nil
}

// ParseSettings decodes YAML on top of DefaultSettings, so a document only
// needs the keys it overrides.
func ParseSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// LoadSettings reads a YAML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	settings, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[Config] loaded settings from %s (step %s, arena %gx%g)",
		path, settings.StepDuration, settings.Resolution.Width, settings.Resolution.Height)
	return settings, nil
}
