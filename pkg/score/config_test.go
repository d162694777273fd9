package score

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_PartialOverrideKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pass_below: 70\nmin_sentences: 3\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 70, cfg.PassBelow)
	assert.Equal(t, 3, cfg.MinSentences)
	assert.Equal(t, DefaultStockPhraseWeight, cfg.StockPhraseWeight)
	assert.Equal(t, DefaultMinContentChars, cfg.MinContentChars)
}

func TestLoadConfig_MissingFileReturnsDefaultsAndError(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pass_below: [oops"), 0o644))

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pass_below: 30\n"), 0o644))
	t.Setenv(ScoreConfigEnv, path)

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.PassBelow)

	t.Setenv(ScoreConfigEnv, "")
	cfg, err = ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
