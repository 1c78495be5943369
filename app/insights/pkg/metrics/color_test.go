package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPickDeterministicColor_Stable(t *testing.T) {
	first := PickDeterministicColor("Signature Mix", DefaultPalette)
	second := PickDeterministicColor("Signature Mix", DefaultPalette)
	assert.Equal(t, first, second)
	assert.Contains(t, DefaultPalette, first)
}

func TestPickDeterministicColor_InPalette(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.String().Draw(t, "key")
		palette := rapid.SliceOfN(rapid.StringMatching(`#[0-9a-f]{6}`), 1, 10).Draw(t, "palette")
		got := PickDeterministicColor(key, palette)
		found := false
		for _, c := range palette {
			if c == got {
				found = true
			}
		}
		if !found {
			t.Fatalf("%q not in palette", got)
		}
		if again := PickDeterministicColor(key, palette); again != got {
			t.Fatalf("unstable pick %q vs %q", got, again)
		}
	})
}

func TestPickDeterministicColor_EmptyPalette(t *testing.T) {
	assert.Contains(t, DefaultPalette, PickDeterministicColor("x", nil))
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "#f97316", NormalizeColor("#F97316"))
	assert.Equal(t, "#ffffff", NormalizeColor("#fff"))
	assert.Equal(t, "gold", NormalizeColor("Gold"))
	assert.Equal(t, "", NormalizeColor("#12345"))
	assert.Equal(t, "", NormalizeColor("red;background:url(x)"))
	assert.Equal(t, "", NormalizeColor(""))
}

func TestColorOr(t *testing.T) {
	assert.Equal(t, "#00b050", ColorOr("#00B050", "key", nil))
	assert.Equal(t, PickDeterministicColor("key", nil), ColorOr("nope!", "key", nil))
}

func TestBadgeTextColor(t *testing.T) {
	assert.Equal(t, "#000", BadgeTextColor("#FFD93D"))
	assert.Equal(t, "#fff", BadgeTextColor("#1e293b"))
	assert.Equal(t, "#000", BadgeTextColor("teal"))
}
