package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExperience(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{"fresher", "Fresher", 0},
		{"fresher inside sentence", "I am a FRESHER looking for work", 0},
		{"plain years", "3 years", 3},
		{"plus years", "5+ years", 5},
		{"yr unit", "2 yr", 2},
		{"decimal", "1.5 years", 1.5},
		{"no whitespace before unit", "4years", 4},
		{"embedded in sentence", "around 2.5 years of backend work", 2.5},
		{"number without unit", "3", 0},
		{"months do not count", "6 months", 0},
		{"empty", "", 0},
		{"fresher beats number", "fresher, internships worth 1 year", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeExperience(tt.raw))
		})
	}
}

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"alias exact", "bangalore", "Bengaluru"},
		{"alias inside phrase", "Bangalore based", "Bengaluru"},
		{"short alias", "BLR", "Bengaluru"},
		{"hyd", "hyd or remote", "Hyderabad"},
		{"remote", "Remote (India)", "Remote"},
		{"unknown title-cased", "new york", "New York"},
		{"trimmed", "  pune  ", "Pune"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLocation(tt.raw))
		})
	}
}

// Alias order is fixed: "bangalore" is checked before "remote", so a string
// containing both resolves to Bengaluru.
func TestNormalizeLocationAliasOrder(t *testing.T) {
	assert.Equal(t, "Bengaluru", NormalizeLocation("remote or bangalore"))
	assert.Equal(t, "Delhi", NormalizeLocation("delhi / mumbai"))
}
