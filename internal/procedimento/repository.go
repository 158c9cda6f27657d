// internal/procedimento/repository.go
package procedimento

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de procedimentos.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(p *Procedimento) error {
	return r.DB.Create(p).Error
}

func (r *Repository) ListarTodos() ([]Procedimento, error) {
	var lista []Procedimento
	err := r.DB.Order("nome ASC").Find(&lista).Error
	return lista, err
}

func (r *Repository) BuscarPorID(id uint) (*Procedimento, error) {
	var p Procedimento
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Atualizar(p *Procedimento) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Remover(id uint) error {
	res := r.DB.Delete(&Procedimento{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
