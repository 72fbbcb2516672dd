package game

import (
	"errors"
	"fmt"
	"time"

	"gridsnake/game/types"

	"gopkg.in/ini.v1"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the game rules. Zero Seed means seed from the clock.
type Config struct {
	GridSize        int           `ini:"grid_size"`
	InitialInterval time.Duration `ini:"initial_interval"`
	IntervalStep    time.Duration `ini:"interval_step"`
	MinInterval     time.Duration `ini:"min_interval"`
	FoodReward      int           `ini:"food_reward"`
	Seed            uint64        `ini:"seed"`
	AutoRestart     time.Duration `ini:"auto_restart"`
}

func DefaultConfig() Config {
	return Config{
		GridSize:        types.GridSize,
		InitialInterval: types.InitialInterval,
		IntervalStep:    types.IntervalStep,
		MinInterval:     types.MinInterval,
		FoodReward:      types.FoodReward,
	}
}

func (c Config) Validate() error {
	if c.GridSize < 5 || c.GridSize > 200 {
		return fmt.Errorf("%w: grid size %d outside [5, 200]", ErrInvalidConfig, c.GridSize)
	}
	if c.MinInterval <= 0 {
		return fmt.Errorf("%w: min interval must be positive", ErrInvalidConfig)
	}
	if c.InitialInterval < c.MinInterval {
		return fmt.Errorf("%w: initial interval %v below minimum %v", ErrInvalidConfig, c.InitialInterval, c.MinInterval)
	}
	if c.IntervalStep < 0 {
		return fmt.Errorf("%w: interval step must not be negative", ErrInvalidConfig)
	}
	if c.FoodReward < 0 {
		return fmt.Errorf("%w: food reward must not be negative", ErrInvalidConfig)
	}
	if c.AutoRestart < 0 {
		return fmt.Errorf("%w: auto restart delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Grid returns the square playing field
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.GridSize, Height: c.GridSize}
}

// StartPosition is the fixed spawn cell, the centre of the grid
func (c Config) StartPosition() types.Point {
	return types.Point{X: c.GridSize / 2, Y: c.GridSize / 2}
}

func (c Config) seed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// LoadConfig reads the [game] section of an ini file over the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := file.Section("game").MapTo(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to map config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
