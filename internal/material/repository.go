// internal/material/repository.go
package material

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de materiais.
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

func (r *Repository) Salvar(m *Material) error {
	return r.DB.Create(m).Error
}

func (r *Repository) ListarTodos() ([]Material, error) {
	var lista []Material
	err := r.DB.Order("nome ASC").Find(&lista).Error
	return lista, err
}

func (r *Repository) BuscarPorID(id uint) (*Material, error) {
	var m Material
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Atualizar(m *Material) error {
	return r.DB.Save(m).Error
}

// AtualizarEstoque grava apenas a nova quantidade em estoque.
// Valores negativos são permitidos; o saldo não tem piso em zero.
func (r *Repository) AtualizarEstoque(id uint, quantidade float64) error {
	return r.DB.Model(&Material{}).
		Where("id = ?", id).
		Update("quantidade_estoque", quantidade).Error
}

func (r *Repository) Remover(id uint) error {
	res := r.DB.Delete(&Material{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListarAbaixoDoMinimo retorna os materiais com saldo abaixo do mínimo configurado.
func (r *Repository) ListarAbaixoDoMinimo() ([]Material, error) {
	var lista []Material
	err := r.DB.
		Where("estoque_minimo > 0 AND quantidade_estoque < estoque_minimo").
		Order("nome ASC").
		Find(&lista).Error
	return lista, err
}
