// internal/parcela/model.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Parcela representa uma única parcela a receber de um atendimento
// liquidado no cartão de crédito.
type Parcela struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	AtendimentoID   uint       `gorm:"not null;index" json:"atendimentoId"`
	PacienteNome    string     `gorm:"size:255" json:"pacienteNome"`
	Numero          int        `gorm:"not null" json:"numero"`
	TotalParcelas   int        `gorm:"not null" json:"totalParcelas"`
	Valor           float64    `gorm:"not null;default:0" json:"valor"`
	DataVencimento  time.Time  `gorm:"not null;index" json:"dataVencimento"`
	Recebida        bool       `gorm:"not null;default:false" json:"recebida"`
	DataRecebimento *time.Time `json:"dataRecebimento"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}
