// internal/parcela/repository.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de parcelas.
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

/* ========================= CRUD básico de parcelas ========================= */

// CriarEmLote cria múltiplas parcelas de uma vez (ignora se vazio).
func (r *Repository) CriarEmLote(parcelas []*Parcela) error {
	if len(parcelas) == 0 {
		return nil
	}
	return r.DB.Create(parcelas).Error
}

func (r *Repository) BuscarPorID(id uint) (*Parcela, error) {
	var p Parcela
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListarTodas retorna as parcelas ordenadas pelo vencimento.
func (r *Repository) ListarTodas() ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.Order("data_vencimento ASC").Find(&parcelas).Error
	return parcelas, err
}

func (r *Repository) ListarPorAtendimento(atendimentoID uint) ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.
		Where("atendimento_id = ?", atendimentoID).
		Order("numero ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// ListarPorPeriodo retorna as parcelas com vencimento dentro do intervalo.
func (r *Repository) ListarPorPeriodo(inicio, fim time.Time) ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.
		Where("data_vencimento >= ? AND data_vencimento <= ?", inicio, fim).
		Order("data_vencimento ASC").
		Find(&parcelas).Error
	return parcelas, err
}

/* ============================= Recebimento ============================= */

// AtualizarRecebimento marca ou desmarca a parcela como recebida.
// - Recebida => data_recebimento = data informada.
// - Caso contrário, zera data_recebimento (NULL).
func (r *Repository) AtualizarRecebimento(id uint, recebida bool, data time.Time) error {
	updates := map[string]interface{}{"recebida": recebida}
	if recebida {
		updates["data_recebimento"] = &data
	} else {
		updates["data_recebimento"] = nil
	}
	return r.DB.Model(&Parcela{}).
		Where("id = ?", id).
		Updates(updates).Error
}

/* ============================= Somatórios ============================= */

// SomarPorPeriodo soma os valores das parcelas do intervalo, filtrando
// pelo estado de recebimento.
func (r *Repository) SomarPorPeriodo(inicio, fim time.Time, recebida bool) (float64, error) {
	var total float64
	err := r.DB.Model(&Parcela{}).
		Where("data_vencimento >= ? AND data_vencimento <= ? AND recebida = ?", inicio, fim, recebida).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}
