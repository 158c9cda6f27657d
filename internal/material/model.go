// internal/material/model.go
package material

import (
	"time"

	"gorm.io/gorm"
)

// Material é um insumo consumível do estoque da clínica.
// QuantidadeEstoque é o único campo mutável compartilhado entre a
// liquidação de atendimentos e a tela de movimentação manual; ambas
// aplicam a mesma fórmula de leitura-cálculo-gravação.
type Material struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Nome              string  `gorm:"size:255;not null" json:"nome"`
	Categoria         string  `gorm:"size:100" json:"categoria"`
	Unidade           string  `gorm:"size:20;not null;default:'un'" json:"unidade"`
	CustoUnitario     float64 `gorm:"not null;default:0" json:"custoUnitario"`
	QuantidadeEstoque float64 `gorm:"not null;default:0" json:"quantidadeEstoque"`
	EstoqueMinimo     float64 `gorm:"not null;default:0" json:"estoqueMinimo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AbaixoDoMinimo reporta se o material está abaixo do estoque mínimo configurado.
func (m *Material) AbaixoDoMinimo() bool {
	return m.EstoqueMinimo > 0 && m.QuantidadeEstoque < m.EstoqueMinimo
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Material{})
}
