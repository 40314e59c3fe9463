package registry

import (
	"errors"
	"fmt"
)

// Erros específicos do registro de métricas
var (
	ErrTitleRequired    = errors.New("título da métrica é obrigatório")
	ErrInvalidUnit      = errors.New("unidade de exibição inválida")
	ErrMetricNotFound   = errors.New("métrica não encontrada")
	ErrBuiltInProtected = errors.New("métricas padrão não podem ser excluídas")
	ErrEmptyOrder       = errors.New("lista de ordenação vazia")
	ErrGenerateID       = errors.New("erro ao gerar identificador da métrica")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// RegistryError é um erro com contexto adicional do registro
type RegistryError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	MetricID string // ID da métrica envolvida (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RegistryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RegistryError) Unwrap() error {
	return e.Err
}

// NewRegistryError cria um novo RegistryError
func NewRegistryError(err error, code string, details string) *RegistryError {
	return &RegistryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewMetricRegistryError cria um novo RegistryError com ID da métrica
func NewMetricRegistryError(err error, code string, metricID string, details string) *RegistryError {
	return &RegistryError{
		Err:      err,
		Code:     code,
		MetricID: metricID,
		Details:  details,
	}
}
