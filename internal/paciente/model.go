// internal/paciente/model.go
package paciente

import (
	"time"

	"gorm.io/gorm"
)

// Paciente representa um paciente da clínica.
type Paciente struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	NomeCompleto   string     `gorm:"size:255;not null" json:"nomeCompleto"`
	Telefone       string     `gorm:"size:50" json:"telefone"`
	Email          string     `gorm:"size:255" json:"email"`
	DataNascimento *time.Time `json:"dataNascimento"`
	Genero         string     `gorm:"size:50" json:"genero"`
	CPF            string     `gorm:"size:20" json:"cpf"`
	Origem         string     `gorm:"size:100" json:"origem"`
	Observacoes    string     `gorm:"type:text" json:"observacoes"`
	ProximoRetorno *time.Time `json:"proximoRetorno"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Paciente{})
}
