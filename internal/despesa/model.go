// internal/despesa/model.go
package despesa

import (
	"time"

	"gorm.io/gorm"
)

// Despesa é uma conta a pagar da clínica.
type Despesa struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Descricao      string     `gorm:"size:255;not null" json:"descricao"`
	Categoria      string     `gorm:"size:100" json:"categoria"`
	Valor          float64    `gorm:"not null;default:0" json:"valor"`
	DataVencimento time.Time  `gorm:"not null;index" json:"dataVencimento"`
	Paga           bool       `gorm:"not null;default:false" json:"paga"`
	DataPagamento  *time.Time `json:"dataPagamento"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Despesa{})
}
