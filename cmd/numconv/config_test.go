package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/numconv/matrix"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "verify.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadVerifyConfig(t *testing.T) {
	t.Run("overlay on defaults", func(t *testing.T) {
		path := writeConfig(t, "samples = 32\npolicies = [\"wrapping\", \"Truncating\"]\n")

		cfg, err := loadVerifyConfig(path)
		require.NoError(t, err)

		def := DefaultVerifyConfig()
		assert.Equal(t, def.Workers, cfg.Workers)
		assert.Equal(t, def.Seed, cfg.Seed)
		assert.Equal(t, 32, cfg.Samples)
		assert.Equal(t, []matrix.Policy{matrix.Wrapping, matrix.Truncating}, cfg.Policies)
	})

	t.Run("all keys", func(t *testing.T) {
		path := writeConfig(t, "workers = 3\nsamples = 0\nseed = -9\n")

		cfg, err := loadVerifyConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Workers)
		assert.Equal(t, 0, cfg.Samples)
		assert.Equal(t, int64(-9), cfg.Seed)
		assert.Equal(t, matrix.Policies(), cfg.Policies)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, body := range []string{
			"workers = 0\n",
			"samples = -1\n",
			"policies = [\"saturating\"]\n",
			"sampels = 3\n",
			"workers = \"many\"\n",
		} {
			_, err := loadVerifyConfig(writeConfig(t, body))
			assert.Error(t, err, body)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadVerifyConfig(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestVerifyCmdConfig(t *testing.T) {
	path := writeConfig(t, "workers = 2\nsamples = 8\nseed = 5\npolicies = [\"checked\"]\n")

	cmd := VerifyCmd{Config: path, Samples: -1}
	cfg, err := cmd.config()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 8, cfg.Samples)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, []matrix.Policy{matrix.Checked}, cfg.Policies)

	cmd = VerifyCmd{Config: path, Workers: 6, Samples: 0, Seed: 11, Policies: []string{"extending"}}
	cfg, err = cmd.config()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, 0, cfg.Samples)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Equal(t, []matrix.Policy{matrix.Extending}, cfg.Policies)
}
