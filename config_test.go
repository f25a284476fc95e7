package sklist

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func writeConfigFile(t *testing.T, config Config) (string, func()) {
	t.Helper()
	raw, err := yaml.Marshal(&config)
	require.NoError(t, err)
	cFile, err := os.CreateTemp("", "sklist-*.yaml")
	require.NoError(t, err)
	_, err = cFile.Write(raw)
	require.NoError(t, err)
	require.NoError(t, cFile.Close())
	return cFile.Name(), func() { os.Remove(cFile.Name()) }
}

func TestLoadConfigRoundTrip(t *testing.T) {
	want := Config{Probability: 0.25, MaxLevelCap: 16, ExpectedSize: 4096, Seed: 99}
	cFileName, tearDown := writeConfigFile(t, want)
	defer tearDown()

	got, err := LoadConfig(cFileName)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("no-such-config.yaml")
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	bad := DefaultConfig()
	bad.Probability = 1.5
	err := bad.validate()
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	bad = DefaultConfig()
	bad.MaxLevelCap = -1
	err = bad.validate()
	assert.True(t, errors.Is(err, ErrArgumentRange))

	bad = DefaultConfig()
	bad.ExpectedSize = -10
	err = bad.validate()
	assert.True(t, errors.Is(err, ErrArgumentRange))

	assert.NoError(t, DefaultConfig().validate())
}

func TestConfigDerivedLevelCap(t *testing.T) {
	// p=0.5, expected 4096 entries: ceil(log2(4096)) = 12
	c := Config{Probability: 0.5, MaxLevelCap: 32, ExpectedSize: 4096}
	assert.Equal(t, 12, c.levelCap())

	// the configured cap clamps the derivation
	c.MaxLevelCap = 8
	assert.Equal(t, 8, c.levelCap())
}

func TestNewFromConfigFile(t *testing.T) {
	cFileName, tearDown := writeConfigFile(t, Config{
		Probability: 0.5, MaxLevelCap: 32, ExpectedSize: 1024, Seed: 42,
	})
	defer tearDown()

	list, err := NewFromConfigFile[int, string](cFileName)
	require.NoError(t, err)
	require.NoError(t, list.Set(1, "one"))
	v, ok := list.TryGet(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)
}

func TestNewFromConfigRejectsBadConfig(t *testing.T) {
	_, err := NewFromConfig[int, string](Config{Probability: -0.5})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestNewFromConfigSeedReproducesLevels(t *testing.T) {
	cfg := Config{Probability: 0.5, MaxLevelCap: 32, ExpectedSize: 1024, Seed: 7}
	a, err := NewFromConfig[int, int](cfg)
	require.NoError(t, err)
	b, err := NewFromConfig[int, int](cfg)
	require.NoError(t, err)

	for i := 0; i < 5000; i++ {
		require.NoError(t, a.Set(i, i))
		require.NoError(t, b.Set(i, i))
	}
	assert.Equal(t, a.level, b.level)
}
