package meta

import (
	"testing"
	"time"

	"github.com/ClinicaLumi/api-clinica/internal/atendimento"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func abrirBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("erro ao abrir banco em memória: %v", err)
	}
	if err := db.AutoMigrate(&Meta{}, &atendimento.Atendimento{}); err != nil {
		t.Fatalf("erro no AutoMigrate: %v", err)
	}
	return db
}

func criarRealizado(t *testing.T, db *gorm.DB, pacienteID uint, dia int, valor float64) {
	t.Helper()
	atd := &atendimento.Atendimento{
		PacienteID:      pacienteID,
		Data:            time.Date(2026, time.March, dia, 0, 0, 0, 0, time.UTC),
		Status:          atendimento.StatusRealizado,
		MetodoPagamento: atendimento.MetodoDinheiro,
		ValorFinal:      valor,
		Parcelas:        1,
	}
	if err := db.Create(atd).Error; err != nil {
		t.Fatalf("erro ao criar atendimento: %v", err)
	}
}

func TestCalcularProgressoFaturamento(t *testing.T) {
	db := abrirBancoTeste(t)
	svc := NewService(db)

	criarRealizado(t, db, 1, 5, 300)
	criarRealizado(t, db, 2, 12, 200)
	// atendimento agendado não entra no progresso
	agendado := &atendimento.Atendimento{
		PacienteID: 3,
		Data:       time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
		Status:     atendimento.StatusAgendado,
		ValorFinal: 999,
		Parcelas:   1,
	}
	if err := db.Create(agendado).Error; err != nil {
		t.Fatalf("erro ao criar atendimento: %v", err)
	}

	p, err := svc.CalcularProgresso(Meta{Tipo: TipoFaturamento, Mes: 3, Ano: 2026, ValorAlvo: 1000})
	if err != nil {
		t.Fatalf("CalcularProgresso: %v", err)
	}
	if p.ValorAtual != 500 {
		t.Errorf("valor atual = %v, esperado 500", p.ValorAtual)
	}
	if p.Percentual != 50 {
		t.Errorf("percentual = %v, esperado 50", p.Percentual)
	}
}

func TestCalcularProgressoPacientesDistintos(t *testing.T) {
	db := abrirBancoTeste(t)
	svc := NewService(db)

	criarRealizado(t, db, 1, 3, 100)
	criarRealizado(t, db, 1, 17, 100) // mesmo paciente, conta uma vez
	criarRealizado(t, db, 2, 9, 100)

	p, err := svc.CalcularProgresso(Meta{Tipo: TipoPacientes, Mes: 3, Ano: 2026, ValorAlvo: 4})
	if err != nil {
		t.Fatalf("CalcularProgresso: %v", err)
	}
	if p.ValorAtual != 2 {
		t.Errorf("valor atual = %v, esperado 2 pacientes distintos", p.ValorAtual)
	}
	if p.Percentual != 50 {
		t.Errorf("percentual = %v, esperado 50", p.Percentual)
	}
}

func TestCalcularProgressoTetoDeCemPorCento(t *testing.T) {
	db := abrirBancoTeste(t)
	svc := NewService(db)

	criarRealizado(t, db, 1, 2, 2000)

	p, err := svc.CalcularProgresso(Meta{Tipo: TipoFaturamento, Mes: 3, Ano: 2026, ValorAlvo: 500})
	if err != nil {
		t.Fatalf("CalcularProgresso: %v", err)
	}
	if p.Percentual != 100 {
		t.Errorf("percentual = %v, esperado teto de 100", p.Percentual)
	}
}
