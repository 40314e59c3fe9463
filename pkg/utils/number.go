package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatValue formata um valor numérico para exibição conforme a unidade
// ("currency", "percent" ou contagem genérica). Apenas formatação de
// exibição; nenhuma conversão de moeda ou fuso é feita aqui.
func FormatValue(value float64, unit string) string {
	d := decimal.NewFromFloat(value)

	switch unit {
	case "currency":
		return "$" + d.StringFixed(2)
	case "percent":
		return d.Round(2).String() + "%"
	default:
		if value == math.Trunc(value) {
			return d.StringFixed(0)
		}
		return d.Round(2).String()
	}
}
