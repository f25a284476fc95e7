package sklist

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config carries the level-generation parameters of a list. A zero Seed
// means "seed from the clock"; fix it to reproduce exact level sequences.
type Config struct {
	Probability  float64 `yaml:"probability"`
	MaxLevelCap  int     `yaml:"maxLevelCap"`
	ExpectedSize int     `yaml:"expectedSize"`
	Seed         int64   `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Probability:  DefaultProbability,
		MaxLevelCap:  DefaultMaxLevelCap,
		ExpectedSize: DefaultExpectedSize,
	}
}

// LoadConfig reads a yaml config file; fields absent from the file keep
// their defaults.
func LoadConfig(fileName string) (Config, error) {
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return Config{}, errors.Wrapf(err, "error while reading config file: %s", fileName)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return Config{}, errors.Wrapf(err, "error while parsing config file: %s", fileName)
	}
	if err := config.validate(); err != nil {
		return Config{}, errors.Wrapf(err, "bad config file: %s", fileName)
	}
	defaultLogger.Debug().
		Float64("probability", config.Probability).
		Int("maxLevelCap", config.MaxLevelCap).
		Int("expectedSize", config.ExpectedSize).
		Msg("loaded config")
	return config, nil
}

func (c Config) validate() error {
	if c.Probability <= 0 || c.Probability >= 1 {
		return errors.Wrapf(ErrInvalidArgument, "probability must be in (0, 1), got %v", c.Probability)
	}
	if c.MaxLevelCap < 0 {
		return errors.Wrapf(ErrArgumentRange, "maxLevelCap must not be negative, got %d", c.MaxLevelCap)
	}
	if c.ExpectedSize < 0 {
		return errors.Wrapf(ErrArgumentRange, "expectedSize must not be negative, got %d", c.ExpectedSize)
	}
	return nil
}

// levelCap derives the level bound from the expected size:
// ceil(log(expectedSize) / log(1/p)), clamped to [1, MaxLevelCap].
func (c Config) levelCap() int {
	limit := c.MaxLevelCap
	if limit <= 0 {
		limit = DefaultMaxLevelCap
	}
	size := c.ExpectedSize
	if size <= 0 {
		size = DefaultExpectedSize
	}
	derived := int(math.Ceil(math.Log(float64(size)) / math.Log(1/c.Probability)))
	if derived < 1 {
		derived = 1
	}
	if derived > limit {
		derived = limit
	}
	return derived
}
