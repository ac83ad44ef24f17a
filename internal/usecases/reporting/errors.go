package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto do painel
var (
	ErrDashboardFile    = errors.New("error reading dashboard data")
	ErrInvalidDashboard = errors.New("invalid dashboard data")
)

// DashboardError é um erro com contexto adicional para o painel
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
