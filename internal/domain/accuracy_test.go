package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeAccuracy_KnownLevels(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Country level accuracy"},
		{2, "Region (state, province, prefecture, etc.) level accuracy"},
		{3, "Sub-region (county, municipality, etc.) level accuracy"},
		{4, "Town (city, village) level accuracy"},
		{5, "Post code (zip code) level accuracy"},
		{6, "Street level accuracy"},
		{7, "Intersection level accuracy"},
		{8, "Address level accuracy"},
		{9, "Premise (building name, property name, shopping center, etc.) level accuracy"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DescribeAccuracy(tt.level), "level %d", tt.level)
	}
}

func TestDescribeAccuracy_OutOfRange(t *testing.T) {
	for _, level := range []int{-1, 0, 10, 42, -1000} {
		assert.Equal(t, UnknownAccuracy, DescribeAccuracy(level), "level %d", level)
	}
}
