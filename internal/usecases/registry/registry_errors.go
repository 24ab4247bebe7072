package registry

import (
	"errors"
	"fmt"
)

var (
	ErrShopNameRequired    = errors.New("nome da loja é obrigatório")
	ErrInvalidMarketplace  = errors.New("marketplace inválido")
	ErrCredentialsRequired = errors.New("credenciais do marketplace são obrigatórias")
	ErrInvalidSpreadsheet  = errors.New("URL da planilha inválida")
	ErrGenerateID          = errors.New("erro ao gerar id da loja")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// RegistryError é um erro com contexto adicional para o cadastro de lojas
type RegistryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Shop    string // Loja envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *RegistryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

func NewRegistryError(err error, code, shop, details string) *RegistryError {
	return &RegistryError{
		Err:     err,
		Code:    code,
		Shop:    shop,
		Details: details,
	}
}
