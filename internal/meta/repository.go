// internal/meta/repository.go
package meta

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de metas.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(m *Meta) error {
	return r.DB.Create(m).Error
}

// ListarPorAno retorna as metas do ano, ordenadas por mês.
func (r *Repository) ListarPorAno(ano int) ([]Meta, error) {
	var metas []Meta
	err := r.DB.Where("ano = ?", ano).Order("mes ASC").Find(&metas).Error
	return metas, err
}

func (r *Repository) BuscarPorID(id uint) (*Meta, error) {
	var m Meta
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Remover(id uint) error {
	res := r.DB.Delete(&Meta{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
