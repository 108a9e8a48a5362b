package services_test

import (
	"testing"

	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionMarkup_Parse(t *testing.T) {
	m := services.NewDescriptionMarkup()

	t.Run("plain text", func(t *testing.T) {
		tokens := m.Parse("just a description")
		assert.Equal(t, []services.Token{{Text: "just a description"}}, tokens)
	})

	t.Run("single link", func(t *testing.T) {
		tokens := m.Parse("see [the manual](https://example.com/манual) for details")
		assert.Equal(t, []services.Token{
			{Text: "see "},
			{Text: "the manual", Link: "https://example.com/манual"},
			{Text: " for details"},
		}, tokens)
	})

	t.Run("multiple links", func(t *testing.T) {
		tokens := m.Parse("[a](1)[b](2)")
		assert.Equal(t, []services.Token{
			{Text: "a", Link: "1"},
			{Text: "b", Link: "2"},
		}, tokens)
	})

	t.Run("bracket without url stays plain", func(t *testing.T) {
		tokens := m.Parse("sizes [S] and [M] available")
		assert.Equal(t, []services.Token{{Text: "sizes [S] and [M] available"}}, tokens)
	})

	t.Run("unclosed bracket stays plain", func(t *testing.T) {
		tokens := m.Parse("broken [link")
		assert.Equal(t, []services.Token{{Text: "broken [link"}}, tokens)
	})

	t.Run("unclosed paren stays plain", func(t *testing.T) {
		tokens := m.Parse("broken [link](http://x")
		assert.Equal(t, []services.Token{{Text: "broken [link](http://x"}}, tokens)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, m.Parse(""))
	})
}

func TestDescriptionMarkup_RenderHTML(t *testing.T) {
	m := services.NewDescriptionMarkup()

	t.Run("escapes text", func(t *testing.T) {
		got := m.RenderHTML("<script>alert(1)</script>")
		assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", got)
	})

	t.Run("escapes link target and text", func(t *testing.T) {
		got := m.RenderHTML(`[click](https://x.test/?a=1&b="2")`)
		assert.Equal(t, `<a href="https://x.test/?a=1&amp;b=&#34;2&#34;">click</a>`, got)
	})

	t.Run("mixed content", func(t *testing.T) {
		got := m.RenderHTML("a [b](c) d")
		assert.Equal(t, `a <a href="c">b</a> d`, got)
	})
}
