// internal/atendimento/model.go
package atendimento

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de um atendimento na agenda.
const (
	StatusAgendado   = "Agendado"
	StatusConfirmado = "Confirmado"
	StatusRealizado  = "Realizado"
	StatusCancelado  = "Cancelado"
)

// Métodos de pagamento aceitos (rótulos fixos, sensíveis a maiúsculas).
const (
	MetodoPixPJ         = "Pix PJ"
	MetodoPixPF         = "Pix PF"
	MetodoDinheiro      = "Dinheiro"
	MetodoCartaoDebito  = "Cartão Débito"
	MetodoCartaoCredito = "Cartão Crédito"
	MetodoPermuta       = "Permuta"
	MetodoTroca         = "Troca em Procedimento"
)

// MetodosPagamento lista todos os métodos aceitos no formulário.
var MetodosPagamento = []string{
	MetodoPixPJ, MetodoPixPF, MetodoDinheiro,
	MetodoCartaoDebito, MetodoCartaoCredito,
	MetodoPermuta, MetodoTroca,
}

// MetodoValido reporta se o rótulo é um método de pagamento conhecido.
func MetodoValido(metodo string) bool {
	for _, m := range MetodosPagamento {
		if m == metodo {
			return true
		}
	}
	return false
}

// MetodoParcelavel reporta se o método gera parcelas (apenas cartão de crédito).
func MetodoParcelavel(metodo string) bool {
	return metodo == MetodoCartaoCredito
}

// MetodoComDesconto reporta se o método aceita desconto percentual
// (métodos à vista: Pix, dinheiro e débito). Permuta e troca não recebem
// nem desconto nem parcelamento.
func MetodoComDesconto(metodo string) bool {
	switch metodo {
	case MetodoPixPJ, MetodoPixPF, MetodoDinheiro, MetodoCartaoDebito:
		return true
	}
	return false
}

// ProcedimentoItem é a linha de procedimento realizada no atendimento,
// com nome e preço desnormalizados no momento do salvamento.
type ProcedimentoItem struct {
	ProcedimentoID uint    `json:"procedimentoId"`
	Nome           string  `json:"nome"`
	Preco          float64 `json:"preco"`
}

// MaterialItem é a linha de material consumido no atendimento.
type MaterialItem struct {
	MaterialID    uint    `json:"materialId"`
	Nome          string  `json:"nome"`
	Quantidade    float64 `json:"quantidade"`
	CustoUnitario float64 `json:"custoUnitario"`
}

// Atendimento representa um atendimento registrado, com os totais
// derivados já calculados no salvamento. Os itens ficam em JSONB.
type Atendimento struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PacienteID      uint      `gorm:"not null;index" json:"pacienteId"`
	PacienteNome    string    `gorm:"size:255" json:"pacienteNome"`
	PacienteGenero  string    `gorm:"size:50" json:"pacienteGenero"`
	PacienteOrigem  string    `gorm:"size:100" json:"pacienteOrigem"`
	PacienteNovo    bool      `gorm:"not null;default:false" json:"pacienteNovo"`
	Data            time.Time `gorm:"not null;index" json:"data"`
	Horario         string    `gorm:"size:10" json:"horario"`
	Status          string    `gorm:"size:50;not null;default:'Agendado';index" json:"status"`
	MetodoPagamento string    `gorm:"size:50" json:"metodoPagamento"`

	Procedimentos []ProcedimentoItem `gorm:"type:jsonb;serializer:json" json:"procedimentos"`
	Materiais     []MaterialItem     `gorm:"type:jsonb;serializer:json" json:"materiais"`

	DescontoPercentual float64 `gorm:"not null;default:0" json:"descontoPercentual"`
	Parcelas           int     `gorm:"not null;default:1" json:"parcelas"`

	// Totais derivados (invariante: valor_final = valor_total - valor_desconto)
	ValorTotal     float64 `gorm:"not null;default:0" json:"valorTotal"`
	CustoMateriais float64 `gorm:"not null;default:0" json:"custoMateriais"`
	ValorDesconto  float64 `gorm:"not null;default:0" json:"valorDesconto"`
	ValorFinal     float64 `gorm:"not null;default:0" json:"valorFinal"`
	ValorParcela   float64 `gorm:"not null;default:0" json:"valorParcela"`

	Observacoes string `gorm:"type:text" json:"observacoes"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Atendimento{})
}
