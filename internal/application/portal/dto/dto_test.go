package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderNotes(t *testing.T) {
	assert.Empty(t, RenderNotes(""))

	html := RenderNotes("**3 sets** then rest")
	assert.Contains(t, html, "<strong>3 sets</strong>")
}

func TestRenderNotes_StripsScriptTags(t *testing.T) {
	html := RenderNotes("warm up <script>alert('x')</script> first")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "warm up")
}

func TestRenderNotes_StripsEventHandlers(t *testing.T) {
	html := RenderNotes(`<img src="x" onerror="alert(1)">`)
	assert.NotContains(t, html, "onerror")
}
