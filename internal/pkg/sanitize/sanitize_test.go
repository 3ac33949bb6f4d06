package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	t.Run("removes script tags", func(t *testing.T) {
		got := HTML(`<p>Hello</p><script>alert("x")</script>`)
		assert.Equal(t, "<p>Hello</p>", got)
		assert.NotContains(t, got, "script")
	})

	t.Run("removes event handlers", func(t *testing.T) {
		got := HTML(`<p onclick="steal()">Hi</p>`)
		assert.NotContains(t, got, "onclick")
		assert.Contains(t, got, "Hi")
	})

	t.Run("keeps basic formatting", func(t *testing.T) {
		got := HTML(`<p><strong>Bold</strong> and <em>italic</em></p>`)
		assert.Contains(t, got, "<strong>Bold</strong>")
		assert.Contains(t, got, "<em>italic</em>")
	})

	t.Run("keeps style on span and p", func(t *testing.T) {
		got := HTML(`<p style="text-align: center;"><span style="color: red;">x</span></p>`)
		assert.Contains(t, got, "style=")
	})

	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "Just text", HTML("Just text"))
	})
}
