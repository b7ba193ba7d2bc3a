package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAcceptLanguage(t *testing.T) {
	assert.Equal(t, Japanese, FromAcceptLanguage(""))
	assert.Equal(t, Japanese, FromAcceptLanguage("ja-JP,ja;q=0.9"))
	assert.Equal(t, English, FromAcceptLanguage("en-US,en;q=0.8"))
	assert.Equal(t, English, FromAcceptLanguage("fr-FR;q=0.9,en;q=0.5"))
	assert.Equal(t, Japanese, FromAcceptLanguage("%%%"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "新規", Label(Japanese, "new", "新規"))
	assert.Equal(t, "New", Label(English, "new", "新規"))
	assert.Equal(t, "x", Label(English, "unknown", "x"))
}
