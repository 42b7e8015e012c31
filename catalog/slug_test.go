package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Mechanical Keyboard", "mechanical-keyboard"},
		{"special chars stripped", "GMK Olivia++ (R2)", "gmk-olivia-r2"},
		{"whitespace runs collapse", "Coiled   Aviator\tCable", "coiled-aviator-cable"},
		{"repeated hyphens collapse", "pre--owned board", "pre-owned-board"},
		{"leading and trailing trimmed", "  - spaced name - ", "spaced-name"},
		{"underscores survive", "v2_revision", "v2_revision"},
		{"empty", "", ""},
		{"only specials", "!!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	inputs := []string{
		"Mechanical Keyboard",
		"GMK Olivia++ (R2)",
		"  - spaced name - ",
		"already-a-slug",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}
