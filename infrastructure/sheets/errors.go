package sheets

import (
	"errors"
	"fmt"
)

var (
	ErrSheetNotFound      = errors.New("aba não encontrada")
	ErrInvalidColumnRange = errors.New("intervalo de colunas inválido")
)

// PublishError indica em qual aba e operação a publicação falhou
type PublishError struct {
	Sheet string
	Op    string
	Err   error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("erro ao publicar aba %q (%s): %v", e.Sheet, e.Op, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
