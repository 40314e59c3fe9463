package domain

import "fmt"

// monthNames contém os nomes canônicos dos meses, na ordem usada para a
// ordenação cronológica das séries (Jan=0..Dec=11).
var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthNames retorna os nomes canônicos dos meses em ordem calendário
func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames)
	return out
}

// MonthIndex retorna o índice canônico do mês (Jan=0..Dec=11), ou -1 quando
// o nome não é um mês válido. A ordenação das séries nunca usa comparação
// de strings nem ordem de inserção.
func MonthIndex(month string) int {
	for i, name := range monthNames {
		if name == month {
			return i
		}
	}
	return -1
}

// IsValidMonth informa se o nome do mês é um dos doze canônicos
func IsValidMonth(month string) bool {
	return MonthIndex(month) >= 0
}

// PeriodLabel monta o rótulo "{Month} {Year}" exibido nos cards e gráficos
func PeriodLabel(month string, year int) string {
	return fmt.Sprintf("%s %d", month, year)
}

// PeriodKey identifica um período (mês, ano) de uma entrada mensal
type PeriodKey struct {
	Month string
	Year  int
}

// Before informa se p antecede o na ordem calendário (ano, depois mês)
func (p PeriodKey) Before(o PeriodKey) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return MonthIndex(p.Month) < MonthIndex(o.Month)
}
