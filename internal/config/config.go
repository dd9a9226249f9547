// Package config provides YAML-based configuration loading for the
// pathfinder: grid size, search policy, animation pacing, theme, storage
// and SSH settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-astar/internal/astar"
)

// Config contains all configuration for the pathfinder.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Search    SearchConfig    `yaml:"search"`
	Animation AnimationConfig `yaml:"animation"`
	Theme     string          `yaml:"theme"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	SSH       SSHConfig       `yaml:"ssh"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size    int    `yaml:"size"`    // rows == columns
	Pattern string `yaml:"pattern"` // barrier pattern applied on start, "" for none
}

// SearchConfig defines engine options.
type SearchConfig struct {
	Frontier string `yaml:"frontier"` // "stale" or "decrease-key"
}

// AnimationConfig defines how fast the editor reveals a run.
type AnimationConfig struct {
	FPS     int `yaml:"fps"`      // expansion steps per second, 0 = no delay
	PathFPS int `yaml:"path_fps"` // path steps per second, 0 = no delay
}

// StorageConfig defines run history persistence.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SSHConfig defines the SSH server used by "astar serve".
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Limits for grid.size.
const (
	MinGridSize = 2
	MaxGridSize = 200
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Grid.Size < MinGridSize || c.Grid.Size > MaxGridSize {
		return fmt.Errorf("%w: grid.size %d not in [%d, %d]", ErrInvalid, c.Grid.Size, MinGridSize, MaxGridSize)
	}
	if _, ok := astar.ParsePolicy(c.Search.Frontier); !ok {
		return fmt.Errorf("%w: search.frontier %q (want stale or decrease-key)", ErrInvalid, c.Search.Frontier)
	}
	if c.Animation.FPS < 0 || c.Animation.PathFPS < 0 {
		return fmt.Errorf("%w: animation rates must not be negative", ErrInvalid)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout_minutes must not be negative", ErrInvalid)
	}
	return nil
}

// Policy returns the parsed frontier policy.
func (c Config) Policy() astar.Policy {
	p, _ := astar.ParsePolicy(c.Search.Frontier)
	return p
}

// StepDelay returns the pause between expansion frames.
func (c Config) StepDelay() time.Duration {
	return rateToDelay(c.Animation.FPS)
}

// PathDelay returns the pause between path frames.
func (c Config) PathDelay() time.Duration {
	return rateToDelay(c.Animation.PathFPS)
}

// IdleTimeout returns the SSH idle timeout.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMinutes) * time.Minute
}

func rateToDelay(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}
