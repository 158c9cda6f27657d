// internal/movimentoestoque/model.go
package movimentoestoque

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de movimentação aceitos no histórico de estoque.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
	TipoAjuste  = "ajuste"
)

// MovimentoEstoque é uma linha imutável do histórico de estoque: registra
// o saldo anterior e o novo a cada alteração de um material. Nunca é
// atualizada nem removida depois de criada.
type MovimentoEstoque struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	MaterialID      uint      `gorm:"not null;index" json:"materialId"`
	MaterialNome    string    `gorm:"size:255" json:"materialNome"`
	Tipo            string    `gorm:"size:20;not null;index" json:"tipo"`
	Quantidade      float64   `gorm:"not null;default:0" json:"quantidade"`
	EstoqueAnterior float64   `gorm:"not null;default:0" json:"estoqueAnterior"`
	EstoqueNovo     float64   `gorm:"not null;default:0" json:"estoqueNovo"`
	CustoUnitario   float64   `gorm:"not null;default:0" json:"custoUnitario"`
	CustoTotal      float64   `gorm:"not null;default:0" json:"custoTotal"`
	Motivo          string    `gorm:"size:255" json:"motivo"`
	PacienteNome    string    `gorm:"size:255" json:"pacienteNome"`
	AtendimentoID   *uint     `gorm:"index" json:"atendimentoId"`
	Data            time.Time `gorm:"not null" json:"data"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CalcularEstoqueNovo aplica a regra de cada tipo de movimento sobre o
// saldo atual: entrada soma, saída subtrai, ajuste substitui.
func CalcularEstoqueNovo(tipo string, atual, quantidade float64) float64 {
	switch tipo {
	case TipoEntrada:
		return atual + quantidade
	case TipoSaida:
		return atual - quantidade
	default:
		return quantidade
	}
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MovimentoEstoque{})
}
