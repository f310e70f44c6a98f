// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Multipurpose Desk Organiser", "multipurpose-desk-organiser"},
		{"Dragon Keychain (Red)", "dragon-keychain-red"},
		{"  Spaced  Out  ", "spaced-out"},
		{"UPPER case", "upper-case"},
		{"100% PLA Vase", "100-pla-vase"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
