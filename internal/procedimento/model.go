// internal/procedimento/model.go
package procedimento

import "gorm.io/gorm"

// Procedimento é um serviço oferecido pela clínica, com preço de tabela.
type Procedimento struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Nome           string  `gorm:"size:255;not null" json:"nome"`
	Categoria      string  `gorm:"size:100" json:"categoria"`
	PrecoPadrao    float64 `gorm:"not null;default:0" json:"precoPadrao"`
	DuracaoMinutos *int    `json:"duracaoMinutos"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Procedimento{})
}
