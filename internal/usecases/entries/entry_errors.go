package entries

import (
	"errors"
	"fmt"
)

// Erros específicos das entradas mensais
var (
	ErrInvalidMonth    = errors.New("mês inválido")
	ErrInvalidYear     = errors.New("ano inválido")
	ErrDuplicatePeriod = errors.New("já existe uma entrada para este período")
	ErrEntryNotFound   = errors.New("entrada não encontrada")
	ErrMetricNotFound  = errors.New("métrica não encontrada")
	ErrNotCustomMetric = errors.New("valores avulsos só se aplicam a métricas custom")
	ErrGenerateID      = errors.New("erro ao gerar identificador da entrada")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// EntryError é um erro com contexto adicional das entradas
type EntryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *EntryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError cria um novo EntryError
func NewEntryError(err error, code string, details string) *EntryError {
	return &EntryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
