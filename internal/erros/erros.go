// internal/erros/erros.go
package erros

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErroValidacao indica payload rejeitado antes de qualquer escrita no banco.
type ErroValidacao struct {
	Motivo string
}

func (e *ErroValidacao) Error() string {
	return "validação: " + e.Motivo
}

// ErroPersistencia indica escrita rejeitada pelo banco em uma coleção específica.
type ErroPersistencia struct {
	Colecao string
	Err     error
}

func (e *ErroPersistencia) Error() string {
	return fmt.Sprintf("persistência em %s: %v", e.Colecao, e.Err)
}

func (e *ErroPersistencia) Unwrap() error { return e.Err }

// NaoEncontrado reporta se o erro corresponde a registro inexistente.
func NaoEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
