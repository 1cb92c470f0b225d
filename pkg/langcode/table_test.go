package langcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingua/pkg/langcode"
)

func TestTable_Normalize(t *testing.T) {
	t.Parallel()

	table := langcode.DefaultTable()

	t.Run("direct spellings", func(t *testing.T) {
		t.Parallel()

		cases := map[string]string{
			"zh_cn":              "zh-cn",
			"zh-hans":            "zh-cn",
			"chinese-simplified": "zh-cn",
			"zhcn":               "zh-cn",
			"zh_hk":              "zh-tw",
			"japanese":           "ja",
			"ko_kr":              "ko",
			"french":             "fr",
			"deu":                "de",
		}
		for raw, want := range cases {
			code, ok := table.Normalize(raw)
			require.True(t, ok, "expected %q to normalize", raw)
			assert.Equal(t, want, code)
		}
	})

	t.Run("is case insensitive", func(t *testing.T) {
		t.Parallel()

		code, ok := table.Normalize("Zh-CN")
		require.True(t, ok)
		assert.Equal(t, "zh-cn", code)
	})

	t.Run("strips encoding suffix", func(t *testing.T) {
		t.Parallel()

		code, ok := table.Normalize("zh_CN.UTF-8")
		require.True(t, ok)
		assert.Equal(t, "zh-cn", code)

		code, ok = table.Normalize("JA_JP.utf8")
		require.True(t, ok)
		assert.Equal(t, "ja", code)

		// GB2312 has no direct table entry, so the suffix-stripped
		// form must be retried.
		code, ok = table.Normalize("zh_CN.GB2312")
		require.True(t, ok)
		assert.Equal(t, "zh-cn", code)
	})

	t.Run("falls back to main language", func(t *testing.T) {
		t.Parallel()

		// fr_LU is not in the table; "fr" is.
		code, ok := table.Normalize("fr_LU")
		require.True(t, ok)
		assert.Equal(t, "fr", code)

		code, ok = table.Normalize("de-LI.UTF-8")
		require.True(t, ok)
		assert.Equal(t, "de", code)
	})

	t.Run("bare zh defaults to simplified", func(t *testing.T) {
		t.Parallel()

		code, ok := table.Normalize("zh")
		require.True(t, ok)
		assert.Equal(t, "zh-cn", code)
	})

	t.Run("unsupported locale reports false", func(t *testing.T) {
		t.Parallel()

		// English has no table entry in the reference set.
		_, ok := table.Normalize("en_US.UTF-8")
		assert.False(t, ok)

		_, ok = table.Normalize("xx_YY")
		assert.False(t, ok)

		_, ok = table.Normalize("")
		assert.False(t, ok)
	})
}

func TestTable_NativeName(t *testing.T) {
	t.Parallel()

	table := langcode.DefaultTable()

	name, ok := table.NativeName("zh-cn")
	require.True(t, ok)
	assert.Equal(t, "简体中文", name)

	name, ok = table.NativeName("ja")
	require.True(t, ok)
	assert.Equal(t, "日本語", name)

	_, ok = table.NativeName("xx")
	assert.False(t, ok)
}

func TestTable_SearchKeywords(t *testing.T) {
	t.Parallel()

	table := langcode.DefaultTable()

	kw, ok := table.SearchKeywords("zh-cn")
	require.True(t, ok)
	assert.Contains(t, kw, "中文")

	kw, ok = table.SearchKeywords("ja")
	require.True(t, ok)
	assert.Contains(t, kw, "日本語")

	_, ok = table.SearchKeywords("xx")
	assert.False(t, ok)
}

func TestTable_Validate(t *testing.T) {
	t.Parallel()

	table := langcode.DefaultTable()

	t.Run("accepts supported codes", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, table.Validate("zh-cn"))
		require.NoError(t, table.Validate("ja"))
		require.NoError(t, table.Validate("EN")) // case insensitive
	})

	t.Run("accepts empty code as no preference", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, table.Validate(""))
	})

	t.Run("rejects unknown codes", func(t *testing.T) {
		t.Parallel()

		err := table.Validate("invalid")
		require.ErrorIs(t, err, langcode.ErrUnknownLanguage)
	})
}

func TestTable_Supported(t *testing.T) {
	t.Parallel()

	codes := langcode.DefaultTable().Supported()
	require.NotEmpty(t, codes)
	assert.IsIncreasing(t, codes)
	assert.Contains(t, codes, "zh-cn")
	assert.Contains(t, codes, "en")
}

func TestTable_IsRightToLeft(t *testing.T) {
	t.Parallel()

	table := langcode.DefaultTable()

	assert.True(t, table.IsRightToLeft("ar"))
	assert.True(t, table.IsRightToLeft("he"))
	assert.False(t, table.IsRightToLeft("zh-cn"))
	assert.False(t, table.IsRightToLeft(""))
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("substitutes alternate data", func(t *testing.T) {
		t.Parallel()

		table := langcode.NewTable(
			langcode.WithMappings(map[string]string{
				"klingon": "tlh",
				"tlh":     "tlh",
			}),
			langcode.WithNativeName("tlh", "tlhIngan Hol"),
			langcode.WithKeywords("tlh", "tlh", "klingon"),
			langcode.WithRightToLeft("tlh"),
		)

		code, ok := table.Normalize("Klingon")
		require.True(t, ok)
		assert.Equal(t, "tlh", code)

		require.NoError(t, table.Validate("tlh"))
		assert.True(t, table.IsRightToLeft("tlh"))

		// Default data must not leak in.
		_, ok = table.Normalize("zh_cn")
		assert.False(t, ok)
	})

	t.Run("empty table matches nothing", func(t *testing.T) {
		t.Parallel()

		table := langcode.NewTable()
		_, ok := table.Normalize("ja")
		assert.False(t, ok)
		assert.Empty(t, table.Supported())
	})
}
