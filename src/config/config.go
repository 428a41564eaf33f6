package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	TicksPerFloor       = 2
	DefaultFloors       = 10
	DefaultCapacity     = 4
	DefaultTickInterval = 1 * time.Second
	DefaultSpawnChance  = 10 // percent per tick
	EstimateTickLimit   = 500
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Floors       int           `yaml:"Floors"`
	Capacity     int           `yaml:"Capacity"`
	TickInterval time.Duration `yaml:"TickInterval"`
	SpawnChance  int           `yaml:"SpawnChance"`
	Seed         int64         `yaml:"Seed"` // 0 seeds from the clock
}

func Default() Config {
	return Config{
		Floors:       DefaultFloors,
		Capacity:     DefaultCapacity,
		TickInterval: DefaultTickInterval,
		SpawnChance:  DefaultSpawnChance,
	}
}

// Load decodes the YAML file at path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("decoding %s: %w", path, err)
	}
	return c, c.Validate()
}

// ApplyEnv overrides fields from the LIFTSIM_* keys of a .env file. A missing file is not
// an error.
func (c *Config) ApplyEnv(path string) error {
	if path == "" {
		return nil
	}
	env, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	ints := map[string]*int{
		"LIFTSIM_FLOORS":       &c.Floors,
		"LIFTSIM_CAPACITY":     &c.Capacity,
		"LIFTSIM_SPAWN_CHANCE": &c.SpawnChance,
	}
	for key, field := range ints {
		value, ok := env[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, value)
		}
		*field = n
	}
	if value, ok := env["LIFTSIM_TICK_INTERVAL"]; ok {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: LIFTSIM_TICK_INTERVAL=%q", ErrInvalidConfig, value)
		}
		c.TickInterval = d
	}
	if value, ok := env["LIFTSIM_SEED"]; ok {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: LIFTSIM_SEED=%q", ErrInvalidConfig, value)
		}
		c.Seed = seed
	}
	return c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Floors < 2:
		return fmt.Errorf("%w: need at least 2 floors, got %d", ErrInvalidConfig, c.Floors)
	case c.Capacity < 1:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.SpawnChance < 0 || c.SpawnChance > 100:
		return fmt.Errorf("%w: spawn chance %d not in [0, 100]", ErrInvalidConfig, c.SpawnChance)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval must be positive, got %v", ErrInvalidConfig, c.TickInterval)
	}
	return nil
}
