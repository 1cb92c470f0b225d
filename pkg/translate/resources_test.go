package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingua/pkg/translate"
)

func TestParseResources(t *testing.T) {
	t.Parallel()

	t.Run("parses a flat pack", func(t *testing.T) {
		t.Parallel()

		resources, rtl, err := translate.ParseResources([]byte(`{
			"i18n.menu.file.save": "保存",
			"i18n.menu.file.save_as": "另存为…"
		}`))
		require.NoError(t, err)
		assert.False(t, rtl)
		assert.Equal(t, map[string]string{
			"i18n.menu.file.save":    "保存",
			"i18n.menu.file.save_as": "另存为…",
		}, resources)
	})

	t.Run("extracts the rtl field", func(t *testing.T) {
		t.Parallel()

		resources, rtl, err := translate.ParseResources([]byte(`{
			"i18n.menu.file.save": "حفظ",
			"rtl": true
		}`))
		require.NoError(t, err)
		assert.True(t, rtl)
		assert.NotContains(t, resources, "rtl")
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		t.Parallel()

		_, _, err := translate.ParseResources([]byte(`not json`))
		require.ErrorIs(t, err, translate.ErrResourceFormat)
	})

	t.Run("rejects non-string values", func(t *testing.T) {
		t.Parallel()

		_, _, err := translate.ParseResources([]byte(`{"i18n.count": 3}`))
		require.ErrorIs(t, err, translate.ErrResourceFormat)

		_, _, err = translate.ParseResources([]byte(`{"i18n.nested": {"a": "b"}}`))
		require.ErrorIs(t, err, translate.ErrResourceFormat)
	})

	t.Run("rejects non-boolean rtl", func(t *testing.T) {
		t.Parallel()

		_, _, err := translate.ParseResources([]byte(`{"rtl": "yes"}`))
		require.ErrorIs(t, err, translate.ErrResourceFormat)
	})
}

func TestParseResourcesYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses a flat pack", func(t *testing.T) {
		t.Parallel()

		resources, rtl, err := translate.ParseResourcesYAML([]byte(
			"i18n.menu.file.save: שמירה\nrtl: true\n",
		))
		require.NoError(t, err)
		assert.True(t, rtl)
		assert.Equal(t, map[string]string{"i18n.menu.file.save": "שמירה"}, resources)
	})

	t.Run("rejects invalid YAML", func(t *testing.T) {
		t.Parallel()

		_, _, err := translate.ParseResourcesYAML([]byte("\t:bad"))
		require.ErrorIs(t, err, translate.ErrResourceFormat)
	})
}
