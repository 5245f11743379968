package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"Café":        "cafe",
		"CAFÉ":        "cafe",
		"Bar Ñandú":   "bar nandu",
		"São Paulo":   "sao paulo",
		"Müller":      "muller",
		"ALREADY low": "already low",
		"galería":     "galeria",
	}

	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "Café Central", "ÁÉÍÓÚ äöü", "shopping", "Ñoño", "São João"}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "Normalize should be idempotent for %q", s)
	}
}

func TestAccentAndCaseInsensitiveMatching(t *testing.T) {
	assert.True(t, containsNormalized("Café Central", "cafe"))
	assert.True(t, containsNormalized("Café Central", "CAFÉ"))
	assert.True(t, containsNormalized("cafe central", "Café"))
	assert.False(t, containsNormalized("Café Central", "bar"))
}
