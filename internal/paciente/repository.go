// internal/paciente/repository.go
package paciente

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de pacientes.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(p *Paciente) error {
	return r.DB.Create(p).Error
}

// ListarTodos retorna os pacientes em ordem alfabética; busca filtra
// por nome, telefone ou e-mail.
func (r *Repository) ListarTodos(busca string) ([]Paciente, error) {
	var pacientes []Paciente
	q := r.DB.Order("nome_completo ASC")
	if busca != "" {
		like := "%" + busca + "%"
		q = q.Where("nome_completo ILIKE ? OR telefone LIKE ? OR email ILIKE ?", like, like, like)
	}
	err := q.Find(&pacientes).Error
	return pacientes, err
}

func (r *Repository) BuscarPorID(id uint) (*Paciente, error) {
	var p Paciente
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Atualizar salva todos os campos de um paciente existente.
func (r *Repository) Atualizar(p *Paciente) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Remover(id uint) error {
	res := r.DB.Delete(&Paciente{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListarRetornosProximos retorna pacientes com retorno agendado dentro
// dos próximos `dias` dias, ordenados pela data de retorno.
func (r *Repository) ListarRetornosProximos(dias int) ([]Paciente, error) {
	var pacientes []Paciente
	hoje := time.Now()
	limite := hoje.AddDate(0, 0, dias)
	err := r.DB.
		Where("proximo_retorno IS NOT NULL AND proximo_retorno >= ? AND proximo_retorno <= ?", hoje, limite).
		Order("proximo_retorno ASC").
		Find(&pacientes).Error
	return pacientes, err
}
