// internal/despesa/repository.go
package despesa

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de despesas.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(d *Despesa) error {
	return r.DB.Create(d).Error
}

// ListarTodas retorna as despesas, vencimento mais recente primeiro.
func (r *Repository) ListarTodas() ([]Despesa, error) {
	var despesas []Despesa
	err := r.DB.Order("data_vencimento DESC").Find(&despesas).Error
	return despesas, err
}

func (r *Repository) BuscarPorID(id uint) (*Despesa, error) {
	var d Despesa
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ListarPorPeriodo retorna as despesas com vencimento dentro do intervalo.
func (r *Repository) ListarPorPeriodo(inicio, fim time.Time) ([]Despesa, error) {
	var despesas []Despesa
	err := r.DB.
		Where("data_vencimento >= ? AND data_vencimento <= ?", inicio, fim).
		Order("data_vencimento ASC").
		Find(&despesas).Error
	return despesas, err
}

// SomarPorPeriodo soma o valor das despesas do intervalo.
func (r *Repository) SomarPorPeriodo(inicio, fim time.Time) (float64, error) {
	var total float64
	err := r.DB.Model(&Despesa{}).
		Where("data_vencimento >= ? AND data_vencimento <= ?", inicio, fim).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}

// AtualizarPagamento marca ou desmarca a despesa como paga.
func (r *Repository) AtualizarPagamento(id uint, paga bool, data time.Time) error {
	updates := map[string]interface{}{"paga": paga}
	if paga {
		updates["data_pagamento"] = &data
	} else {
		updates["data_pagamento"] = nil
	}
	return r.DB.Model(&Despesa{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *Repository) Remover(id uint) error {
	res := r.DB.Delete(&Despesa{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
