package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"single string trimmed", []string{"  Champs-Élysées, Paris  "}, "Champs-Élysées, Paris"},
		{"fragments joined", []string{"Champs-Élysées", "Paris"}, "Champs-Élysées,Paris"},
		{"outer whitespace trimmed", []string{" Champs-Élysées", "Paris "}, "Champs-Élysées,Paris"},
		{"empty string", []string{""}, ""},
		{"whitespace string", []string{" \t\n"}, ""},
		{"no fragments", nil, ""},
		{"all blank fragments", []string{" ", "", "\t"}, ""},
		{"blank fragment kept in join", []string{"Paris", " "}, "Paris,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAddress(tt.parts...))
		})
	}
}

func TestViewport_IsSet(t *testing.T) {
	assert.False(t, Viewport{}.IsSet())
	assert.True(t, Viewport{SpanLat: 0.1}.IsSet())
	assert.True(t, Viewport{CenterLng: -0.5}.IsSet())
}

func TestPlacemark_LngLat(t *testing.T) {
	acc := 8
	p := Placemark{Accuracy: &acc, Coordinates: NewCoordinates(2.3075859, 48.8698008)}

	ll := p.LngLat()

	assert.Equal(t, 2.3075859, *ll.Lng)
	assert.Equal(t, 48.8698008, *ll.Lat)
	assert.Equal(t, 8, *ll.Accuracy)
	assert.True(t, p.Coordinates.IsSet())
	assert.False(t, Coordinates{}.IsSet())
}
