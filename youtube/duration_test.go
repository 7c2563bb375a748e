package youtube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"PT1H2M3S", 3723},
		{"PT45S", 45},
		{"PT1M", 60},
		{"PT1M1S", 61},
		{"PT2H", 7200},
		{"PT10M5S", 605},
		{"1M30S", 90},
		{"", 0},
		{"PT", 0},
		{"P0D", 0},
		{"garbage", 0},
		{"PT99999999999999999999S", math.MaxInt},
		{"PT9999999999999999H", math.MaxInt},
		{"PT3000000000000000H1S", math.MaxInt},
		{"PT1M2M", 60},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDuration(tt.in))
		})
	}
}

func TestParseDurationHugeValuesAreRegular(t *testing.T) {
	for _, in := range []string{
		"PT9999999999999999H",
		"PT3000000000000000H",
		"PT999999999999999999M",
		"PT99999999999999999999S",
		"PT2562047788015215H59M59S",
	} {
		t.Run(in, func(t *testing.T) {
			got := ParseDuration(in)
			assert.GreaterOrEqual(t, got, 0)
			assert.Equal(t, CategoryRegular, Classify(got))
		})
	}
}

func TestIsCanonicalDuration(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"PT1H2M3S", true},
		{"PT45S", true},
		{"P0D", true},
		{"P1DT2H", true},
		{"", false},
		{"PT", false},
		{"P", false},
		{"1M30S", false},
		{"PT1X", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCanonicalDuration(tt.in))
		})
	}
}
