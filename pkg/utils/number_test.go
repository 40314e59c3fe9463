package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.57, RoundWithTwoDecimalPlace(10.567))
	assert.Equal(t, 10.56, RoundWithTwoDecimalPlace(10.564))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -3.33, RoundWithTwoDecimalPlace(-3.333))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		unit     string
		expected string
	}{
		{name: "Moeda sempre com dois decimais", value: 2500.0, unit: "currency", expected: "$2500.00"},
		{name: "Moeda arredonda para dois decimais", value: 99.999, unit: "currency", expected: "$100.00"},
		{name: "Percentual com sufixo", value: 3.456, unit: "percent", expected: "3.46%"},
		{name: "Percentual inteiro não ganha decimais", value: 25.0, unit: "percent", expected: "25%"},
		{name: "Contagem inteira sem decimais", value: 42.0, unit: "count", expected: "42"},
		{name: "Contagem fracionária com dois decimais", value: 42.567, unit: "count", expected: "42.57"},
		{name: "Unidade desconhecida cai na contagem", value: 7.0, unit: "", expected: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.value, tt.unit))
		})
	}
}
