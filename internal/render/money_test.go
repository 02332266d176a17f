package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"whole number gets two decimals", 300, "300.00"},
		{"thousands use indian grouping", 123456.789, "1,23,456.79"},
		{"lakh boundary", 100000, "1,00,000.00"},
		{"small value", 975, "975.00"},
		{"zero", 0, "0.00"},
		{"negative total", -400, "-400.00"},
		{"rounds to two places", 10.567, "10.57"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Money(tt.value))
		})
	}
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "2", Quantity(2))
	assert.Equal(t, "2.5", Quantity(2.5))
	assert.Equal(t, "0", Quantity(0))
	assert.Equal(t, "1000", Quantity(1000))
}
