// internal/movimentoestoque/repository.go
package movimentoestoque

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso ao histórico de movimentações.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

func (r *Repository) Criar(m *MovimentoEstoque) error {
	return r.DB.Create(m).Error
}

// ListarTodos retorna o histórico completo, mais recentes primeiro.
func (r *Repository) ListarTodos() ([]MovimentoEstoque, error) {
	var lista []MovimentoEstoque
	err := r.DB.Order("created_at DESC").Find(&lista).Error
	return lista, err
}

func (r *Repository) ListarPorMaterial(materialID uint) ([]MovimentoEstoque, error) {
	var lista []MovimentoEstoque
	err := r.DB.
		Where("material_id = ?", materialID).
		Order("created_at DESC").
		Find(&lista).Error
	return lista, err
}

// ListarPorAtendimento retorna as baixas geradas pela liquidação de um atendimento.
func (r *Repository) ListarPorAtendimento(atendimentoID uint) ([]MovimentoEstoque, error) {
	var lista []MovimentoEstoque
	err := r.DB.
		Where("atendimento_id = ?", atendimentoID).
		Order("id ASC").
		Find(&lista).Error
	return lista, err
}

// ListarPorPeriodo retorna as movimentações de um tipo dentro do intervalo.
// Tipo vazio retorna todos os tipos.
func (r *Repository) ListarPorPeriodo(tipo string, inicio, fim time.Time) ([]MovimentoEstoque, error) {
	var lista []MovimentoEstoque
	q := r.DB.Where("data >= ? AND data <= ?", inicio, fim)
	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	err := q.Order("data ASC").Find(&lista).Error
	return lista, err
}
