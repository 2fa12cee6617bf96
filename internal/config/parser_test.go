package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Directory.WaitSeconds)
	assert.Equal(t, 2, cfg.Directory.SettleSeconds)
	assert.Equal(t, "data", cfg.Directory.OutputDir)
}

func TestParseConfigResolvesUserDataDirs(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{
		"rod": {"user_data_dir": "./user_data/rod"},
		"chromedp": {"user_data_dir": "./user_data/chromedp"}
	}`))
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cfg.Rod.UserDataDir))
	assert.True(t, filepath.IsAbs(cfg.Chromedp.UserDataDir))
}

func TestParseConfigBoards(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{
		"license": {
			"boards": {
				"IL": {
					"search_url": "https://example.com/lookup?name=%s",
					"row_selector": "table tr",
					"number_selector": "td:nth-child(2)"
				}
			}
		}
	}`))
	require.NoError(t, err)

	board, ok := cfg.License.Boards["IL"]
	require.True(t, ok)
	assert.Equal(t, "https://example.com/lookup?name=%s", board.SearchURL)
	assert.Equal(t, "table tr", board.RowSelector)
}

func TestParseConfigInvalidJSON(t *testing.T) {
	_, err := ParseConfig([]byte(`{not json`))
	assert.Error(t, err)
}
