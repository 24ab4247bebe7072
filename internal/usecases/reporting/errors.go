package reporting

import (
	"errors"
	"fmt"
)

var (
	// mensagem devolvida aos clientes quando a loja não está configurada
	ErrNoConfiguration = errors.New("no configuration")

	ErrMissingShop    = errors.New("nome da loja é obrigatório")
	ErrDocumentAccess = errors.New("não foi possível criar ou abrir a planilha")
)

// ConfigurationError indica que a loja não existe no cadastro ou tem um marketplace não suportado
type ConfigurationError struct {
	Shop string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return ErrNoConfiguration.Error()
}

func (e *ConfigurationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrNoConfiguration}
	}
	return []error{ErrNoConfiguration, e.Err}
}

func newConfigurationError(shop string, err error) *ConfigurationError {
	return &ConfigurationError{Shop: shop, Err: err}
}

// Detail descreve a causa para os logs, sem expor nada ao cliente
func (e *ConfigurationError) Detail() string {
	if e.Err == nil {
		return fmt.Sprintf("loja %q não cadastrada", e.Shop)
	}
	return fmt.Sprintf("loja %q: %v", e.Shop, e.Err)
}
