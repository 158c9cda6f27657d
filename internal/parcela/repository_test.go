package parcela

import (
	"testing"
	"time"

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
	if err := db.AutoMigrate(&Parcela{}); err != nil {
		t.Fatalf("erro no AutoMigrate: %v", err)
	}
	return db
}

func TestAtualizarRecebimento(t *testing.T) {
	db := abrirBancoTeste(t)
	repo := NewRepository(db)

	venc := time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC)
	p := &Parcela{AtendimentoID: 1, Numero: 1, TotalParcelas: 1, Valor: 90, DataVencimento: venc}
	if err := repo.CriarEmLote([]*Parcela{p}); err != nil {
		t.Fatalf("erro ao criar parcela: %v", err)
	}

	recebimento := time.Date(2026, time.July, 7, 0, 0, 0, 0, time.UTC)
	if err := repo.AtualizarRecebimento(p.ID, true, recebimento); err != nil {
		t.Fatalf("erro ao marcar recebimento: %v", err)
	}

	relida, err := repo.BuscarPorID(p.ID)
	if err != nil {
		t.Fatalf("erro ao reler parcela: %v", err)
	}
	if !relida.Recebida || relida.DataRecebimento == nil || !relida.DataRecebimento.Equal(recebimento) {
		t.Errorf("parcela deveria estar recebida em %v, veio %+v", recebimento, relida)
	}

	// desmarcar limpa a data de recebimento
	if err := repo.AtualizarRecebimento(p.ID, false, time.Time{}); err != nil {
		t.Fatalf("erro ao desmarcar recebimento: %v", err)
	}
	relida, err = repo.BuscarPorID(p.ID)
	if err != nil {
		t.Fatalf("erro ao reler parcela: %v", err)
	}
	if relida.Recebida || relida.DataRecebimento != nil {
		t.Errorf("parcela deveria voltar a pendente, veio %+v", relida)
	}
}

func TestSomarPorPeriodo(t *testing.T) {
	db := abrirBancoTeste(t)
	repo := NewRepository(db)

	dia := func(d int) time.Time {
		return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
	}
	recebida := dia(10)
	parcelas := []*Parcela{
		{AtendimentoID: 1, Numero: 1, TotalParcelas: 2, Valor: 100, DataVencimento: dia(5), Recebida: true, DataRecebimento: &recebida},
		{AtendimentoID: 1, Numero: 2, TotalParcelas: 2, Valor: 100, DataVencimento: dia(20)},
		{AtendimentoID: 2, Numero: 1, TotalParcelas: 1, Valor: 50, DataVencimento: dia(25), Recebida: true, DataRecebimento: &recebida},
		// fora do período
		{AtendimentoID: 3, Numero: 1, TotalParcelas: 1, Valor: 999, DataVencimento: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), Recebida: true},
	}
	if err := repo.CriarEmLote(parcelas); err != nil {
		t.Fatalf("erro ao criar parcelas: %v", err)
	}

	inicio, fim := dia(1), dia(31)

	recebidas, err := repo.SomarPorPeriodo(inicio, fim, true)
	if err != nil {
		t.Fatalf("erro ao somar recebidas: %v", err)
	}
	if recebidas != 150 {
		t.Errorf("soma das recebidas = %v, esperado 150", recebidas)
	}

	pendentes, err := repo.SomarPorPeriodo(inicio, fim, false)
	if err != nil {
		t.Fatalf("erro ao somar pendentes: %v", err)
	}
	if pendentes != 100 {
		t.Errorf("soma das pendentes = %v, esperado 100", pendentes)
	}
}

func TestCriarEmLoteVazio(t *testing.T) {
	db := abrirBancoTeste(t)
	if err := NewRepository(db).CriarEmLote(nil); err != nil {
		t.Fatalf("lote vazio deveria ser ignorado: %v", err)
	}
}
