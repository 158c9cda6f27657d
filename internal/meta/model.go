// internal/meta/model.go
package meta

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de meta mensal suportados.
const (
	TipoFaturamento = "Faturamento"
	TipoPacientes   = "Pacientes"
)

// Meta é um objetivo mensal da clínica (faturamento ou pacientes atendidos).
type Meta struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Tipo      string    `gorm:"size:50;not null" json:"tipo"`
	Mes       int       `gorm:"not null" json:"mes"`
	Ano       int       `gorm:"not null;index" json:"ano"`
	ValorAlvo float64   `gorm:"not null;default:0" json:"valorAlvo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Progresso é o andamento calculado de uma meta.
type Progresso struct {
	Meta       Meta    `json:"meta"`
	ValorAtual float64 `json:"valorAtual"`
	Percentual float64 `json:"percentual"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Meta{})
}
