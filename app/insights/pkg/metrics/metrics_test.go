package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDeriveMomentum(t *testing.T) {
	tests := []struct {
		name     string
		current  any
		previous any
		label    string
		growth   float64
		velocity int64
	}{
		{"new theme", 100, 0, Surging, 100.0, 100},
		{"no signal", 0, 0, Stable, 0.0, 0},
		{"shrinking from zero base", 0, 0, Stable, 0.0, 0},
		{"exactly fifty", 150, 100, Rising, 50.0, 50},
		{"just above fifty", 151, 100, Surging, 51.0, 51},
		{"exactly ten", 110, 100, Stable, 10.0, 10},
		{"exactly minus ten", 90, 100, Plateauing, -10.0, -10},
		{"exactly minus fifty", 50, 100, Declining, -50.0, -50},
		{"collapse", 0, 100, Declining, -100.0, -100},
		{"numeric strings", "382000", " 222000 ", Surging, 72.07207207207207, 160000},
		{"json floats", float64(120), float64(100), Rising, 20.0, 20},
		{"missing fields", nil, nil, Stable, 0.0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DeriveMomentum(tt.current, tt.previous)
			assert.Equal(t, tt.label, m.Label)
			assert.InDelta(t, tt.growth, m.GrowthPercent, 1e-9)
			assert.Equal(t, tt.velocity, m.Velocity)
			assert.True(t, m.Valid())
		})
	}
}

func TestDeriveMomentum_Sentinel(t *testing.T) {
	for _, in := range [][2]any{
		{"lots", 10},
		{10, "n/a"},
		{[]int{1}, 1},
		{-5, 10},
	} {
		m := DeriveMomentum(in[0], in[1])
		assert.Equal(t, Momentum{Label: Sentinel}, m, "input %v", in)
		assert.False(t, m.Valid())
	}
}

func TestMomentumLabel_Boundaries(t *testing.T) {
	assert.Equal(t, Surging, MomentumLabel(51))
	assert.Equal(t, Rising, MomentumLabel(50))
	assert.Equal(t, Stable, MomentumLabel(-10+1e-9))
	assert.Equal(t, Plateauing, MomentumLabel(-10))
	assert.Equal(t, Plateauing, MomentumLabel(-10.0001))
	assert.Equal(t, Declining, MomentumLabel(-50))
}

func TestMomentumLabel_Monotonic(t *testing.T) {
	rank := map[string]int{Declining: 0, Plateauing: 1, Stable: 2, Rising: 3, Surging: 4}
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-1000, 1000).Draw(t, "a")
		b := rapid.Float64Range(-1000, 1000).Draw(t, "b")
		if a > b {
			a, b = b, a
		}
		if rank[MomentumLabel(a)] > rank[MomentumLabel(b)] {
			t.Fatalf("label(%v)=%s ranks above label(%v)=%s", a, MomentumLabel(a), b, MomentumLabel(b))
		}
	})
}

func TestDeriveMomentum_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cur := rapid.Int64Range(0, 1<<40).Draw(t, "current")
		prev := rapid.Int64Range(0, 1<<40).Draw(t, "previous")
		m := DeriveMomentum(cur, prev)
		if m.Velocity != cur-prev {
			t.Fatalf("velocity %d != %d", m.Velocity, cur-prev)
		}
		if prev == 0 && cur > 0 && m.GrowthPercent != 100 {
			t.Fatalf("zero base growth %v", m.GrowthPercent)
		}
		if m.Label != MomentumLabel(m.GrowthPercent) {
			t.Fatalf("label %s does not match growth %v", m.Label, m.GrowthPercent)
		}
	})
}

func TestDeriveMaturity(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"2024-01-15", "2024-03-20", Nascent},
		{"2024-01-31", "2024-04-01", Emerging},
		{"2024-01-01", "2024-07-01", Scaling},
		{"2024-05-15", "2025-08-08", Scaling},
		{"2023-01-01", "2024-07-01", Established},
		{"2023-01-01", "2024-08-01", Established},
		{"2024-08-01", "2024-02-01", Nascent},
		{"yesterday", "2024-01-01", Sentinel},
		{"2024-01-01", "", Sentinel},
		{"-", "2024-01-01", Sentinel},
		{"2024-13-01", "2024-01-01", Sentinel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveMaturity(tt.first, tt.last), "%s -> %s", tt.first, tt.last)
	}
}

func TestMonthsBetween_IgnoresDay(t *testing.T) {
	m, ok := MonthsBetween("2024-01-31", "2024-02-01")
	assert.True(t, ok)
	assert.Equal(t, 1, m)
}

func TestFormatCompactNumber(t *testing.T) {
	tests := map[int64]string{
		0:          "0",
		999:        "999",
		1000:       "1k",
		1500:       "2k",
		2500:       "2k",
		160000:     "160k",
		999_999:    "1000k",
		1_000_000:  "1.0M",
		2_300_000:  "2.3M",
		-2000:      "-2k",
		-750:       "-750",
		-3_450_000: "-3.5M",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatCompactNumber(in), "n=%d", in)
	}
}

func TestFormatSignedCompact(t *testing.T) {
	assert.Equal(t, "+5k", FormatSignedCompact(5000))
	assert.Equal(t, "-2k", FormatSignedCompact(-2000))
	assert.Equal(t, "0", FormatSignedCompact(0))
}
