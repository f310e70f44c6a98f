// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestNormalizePriceRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max *decimal.Decimal
		wantMin  *decimal.Decimal
		wantMax  *decimal.Decimal
	}{
		{"both nil", nil, nil, nil, nil},
		{"min only", dec("100"), nil, dec("100"), nil},
		{"max only", nil, dec("500"), nil, dec("500")},
		{"ordered range kept", dec("100"), dec("500"), dec("100"), dec("500")},
		{"equal bounds kept", dec("250"), dec("250"), dec("250"), dec("250")},
		{"inverted range drops max", dec("500"), dec("100"), dec("500"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := normalizePriceRange(tt.min, tt.max)

			if tt.wantMin == nil {
				assert.Nil(t, gotMin)
			} else {
				assert.True(t, tt.wantMin.Equal(*gotMin))
			}
			if tt.wantMax == nil {
				assert.Nil(t, gotMax)
			} else {
				assert.True(t, tt.wantMax.Equal(*gotMax))
			}
		})
	}
}
