package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lingua/pkg/translate"
)

func TestReplaceParams(t *testing.T) {
	t.Parallel()

	t.Run("replaces placeholders", func(t *testing.T) {
		t.Parallel()

		got := translate.ReplaceParams("Hello, {name}!", []translate.Param{
			translate.P("name", "Ada"),
		})
		assert.Equal(t, "Hello, Ada!", got)
	})

	t.Run("replaces repeated placeholders", func(t *testing.T) {
		t.Parallel()

		got := translate.ReplaceParams("{x} and {x}", []translate.Param{
			translate.P("x", "one"),
		})
		assert.Equal(t, "one and one", got)
	})

	t.Run("leaves unmatched placeholders verbatim", func(t *testing.T) {
		t.Parallel()

		got := translate.ReplaceParams("{done} of {total}", []translate.Param{
			translate.P("done", "3"),
		})
		assert.Equal(t, "3 of {total}", got)
	})

	t.Run("ignores unused parameters", func(t *testing.T) {
		t.Parallel()

		got := translate.ReplaceParams("plain text", []translate.Param{
			translate.P("name", "Ada"),
		})
		assert.Equal(t, "plain text", got)
	})

	t.Run("applies parameters in order", func(t *testing.T) {
		t.Parallel()

		// The second parameter sees the first one's output; the
		// substitution is literal and sequential, not recursive.
		got := translate.ReplaceParams("{a}", []translate.Param{
			translate.P("a", "{b}"),
			translate.P("b", "deep"),
		})
		assert.Equal(t, "deep", got)
	})

	t.Run("no parameters returns the template", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "as is {x}", translate.ReplaceParams("as is {x}", nil))
	})
}
