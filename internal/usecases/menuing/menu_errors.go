package menuing

import (
	"errors"
	"fmt"
)

// Códigos de erro do menu
const (
	CodeEntryNotFound    = "MENU_001"
	CodeNavigationFailed = "MENU_002"
	CodeInvalidRoute     = "MENU_003"
)

var (
	ErrEntryNotFound    = errors.New("entrada de menu não encontrada")
	ErrNavigationFailed = errors.New("falha ao solicitar navegação")
	ErrInvalidRoute     = errors.New("rota de menu inválida")
)

// MenuError é um erro com contexto adicional para o menu administrativo
type MenuError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	EntryKey string // Chave do card envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *MenuError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *MenuError) Unwrap() error {
	return e.Err
}

// NewMenuError cria um novo MenuError
func NewMenuError(err error, code string, details string) *MenuError {
	return &MenuError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewEntryError cria um novo MenuError vinculado a um card
func NewEntryError(err error, code string, entryKey string, details string) *MenuError {
	return &MenuError{
		Err:      err,
		Code:     code,
		EntryKey: entryKey,
		Details:  details,
	}
}
