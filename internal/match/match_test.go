package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuzl/linkedlist"
	"github.com/liuzl/linkedlist/internal/config"
)

func TestLexical(t *testing.T) {
	assert.Negative(t, Lexical(false)("B", "a"))
	assert.Positive(t, Lexical(true)("B", "a"))
	assert.Zero(t, Lexical(true)("Abc", "aBC"))
	assert.NotZero(t, Lexical(false)("Abc", "aBC"))
}

func TestNumeric(t *testing.T) {
	c := Numeric(false)

	assert.Negative(t, c("2", "10"))
	assert.Zero(t, c("1.0", "1"))
	assert.Negative(t, c("-3", "x"))
	assert.Positive(t, c("x", "100"))
	assert.Negative(t, c("a", "b"))

	l := linkedlist.NewSortedList(c)
	for _, v := range []string{"10", "b", "2", "a", "-1"} {
		l.Add(v)
	}
	assert.Equal(t, []string{"-1", "2", "10", "a", "b"}, l.Values())
}

func TestForOrder(t *testing.T) {
	assert.Negative(t, ForOrder(config.OrderNumeric, false)("9", "10"))
	assert.Positive(t, ForOrder(config.OrderLexical, false)("9", "10"))
}

func TestGlob(t *testing.T) {
	t.Run("removes every match", func(t *testing.T) {
		c, err := Glob("foo*", false)
		require.NoError(t, err)

		l := linkedlist.New[string]()
		l.AddToEnd("foo").AddToEnd("bar").AddToEnd("foobar").AddToEnd("Foo")
		l.Remove("foo*", c)

		assert.Equal(t, []string{"bar", "Foo"}, l.Values())
	})
	t.Run("ignore case", func(t *testing.T) {
		c, err := Glob("FOO?", true)
		require.NoError(t, err)

		assert.Zero(t, c("", "food"))
		assert.Zero(t, c("", "Fool"))
		assert.NotZero(t, c("", "foo"))
	})
	t.Run("bad pattern", func(t *testing.T) {
		_, err := Glob("[", false)
		assert.Error(t, err)
	})
}
