package langcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingua/pkg/langcode"
)

func envFrom(vars map[string]string) func(string) string {
	return func(name string) string {
		return vars[name]
	}
}

func TestTable_SystemLocale(t *testing.T) {
	t.Parallel()

	table := langcode.DefaultTable()

	t.Run("normalizes LANG", func(t *testing.T) {
		t.Parallel()

		code, ok := table.SystemLocale(envFrom(map[string]string{"LANG": "zh_CN.UTF-8"}))
		require.True(t, ok)
		assert.Equal(t, "zh-cn", code)

		code, ok = table.SystemLocale(envFrom(map[string]string{"LANG": "ja_JP.utf8"}))
		require.True(t, ok)
		assert.Equal(t, "ja", code)
	})

	t.Run("LC_ALL takes precedence", func(t *testing.T) {
		t.Parallel()

		code, ok := table.SystemLocale(envFrom(map[string]string{
			"LC_ALL": "ko_KR.UTF-8",
			"LANG":   "zh_CN.UTF-8",
		}))
		require.True(t, ok)
		assert.Equal(t, "ko", code)
	})

	t.Run("unsupported locale reports false", func(t *testing.T) {
		t.Parallel()

		_, ok := table.SystemLocale(envFrom(map[string]string{"LANG": "en_US.UTF-8"}))
		assert.False(t, ok)
	})

	t.Run("empty environment reports false", func(t *testing.T) {
		t.Parallel()

		_, ok := table.SystemLocale(envFrom(nil))
		assert.False(t, ok)
	})
}

func TestMatchAccept(t *testing.T) {
	t.Parallel()

	available := []string{"zh-cn", "ja", "fr"}

	t.Run("exact match", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "ja", langcode.MatchAccept("ja", available))
	})

	t.Run("matches across script and region variants", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "zh-cn", langcode.MatchAccept("zh-Hans", available))
		assert.Equal(t, "fr", langcode.MatchAccept("fr-CA", available))
	})

	t.Run("respects quality ordering", func(t *testing.T) {
		t.Parallel()

		got := langcode.MatchAccept("ja;q=0.6,fr;q=0.9", available)
		assert.Equal(t, "fr", got)
	})

	t.Run("falls back to first available", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "zh-cn", langcode.MatchAccept("", available))
	})

	t.Run("empty available reports empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, langcode.MatchAccept("ja", nil))
	})
}
