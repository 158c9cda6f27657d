// internal/atendimento/repository.go
package atendimento

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de atendimentos.
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

func (r *Repository) Salvar(a *Atendimento) error {
	return r.DB.Create(a).Error
}

// ListarTodos retorna os atendimentos, mais recentes primeiro.
func (r *Repository) ListarTodos() ([]Atendimento, error) {
	var lista []Atendimento
	err := r.DB.Order("data DESC").Find(&lista).Error
	return lista, err
}

// ListarPorPeriodo retorna os atendimentos com data dentro do intervalo.
func (r *Repository) ListarPorPeriodo(inicio, fim time.Time) ([]Atendimento, error) {
	var lista []Atendimento
	err := r.DB.
		Where("data >= ? AND data <= ?", inicio, fim).
		Order("data ASC").
		Find(&lista).Error
	return lista, err
}

// ListarRealizadosNoPeriodo retorna apenas os atendimentos realizados do intervalo.
func (r *Repository) ListarRealizadosNoPeriodo(inicio, fim time.Time) ([]Atendimento, error) {
	var lista []Atendimento
	err := r.DB.
		Where("data >= ? AND data <= ? AND status = ?", inicio, fim, StatusRealizado).
		Order("data ASC").
		Find(&lista).Error
	return lista, err
}

func (r *Repository) BuscarPorID(id uint) (*Atendimento, error) {
	var a Atendimento
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Atualizar salva todos os campos de um atendimento existente.
func (r *Repository) Atualizar(a *Atendimento) error {
	return r.DB.Save(a).Error
}

func (r *Repository) Remover(id uint) error {
	res := r.DB.Delete(&Atendimento{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
