package atendimento

import (
	"testing"
	"time"
)

func TestParaModeloRecalculaTotais(t *testing.T) {
	dto := AtendimentoDTO{
		PacienteID:      1,
		PacienteNome:    "Maria Souza",
		Data:            "2026-03-10",
		MetodoPagamento: MetodoPixPF,
		Procedimentos: []ProcedimentoItem{
			{ProcedimentoID: 1, Nome: "Limpeza de Pele", Preco: 100},
			{ProcedimentoID: 2, Nome: "Peeling", Preco: 50},
		},
		Desconto: 10,
		Parcelas: 1,
	}

	atd, err := dto.ParaModelo()
	if err != nil {
		t.Fatalf("ParaModelo: %v", err)
	}

	esperada := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !atd.Data.Equal(esperada) {
		t.Errorf("data = %v, esperado %v", atd.Data, esperada)
	}
	if atd.Status != StatusRealizado {
		t.Errorf("status padrão = %q, esperado %q", atd.Status, StatusRealizado)
	}
	if atd.ValorTotal != 150 || atd.ValorDesconto != 15 || atd.ValorFinal != 135 {
		t.Errorf("totais = %v / %v / %v, esperado 150 / 15 / 135",
			atd.ValorTotal, atd.ValorDesconto, atd.ValorFinal)
	}
}

func TestParaModeloDataInvalida(t *testing.T) {
	dto := AtendimentoDTO{PacienteID: 1, PacienteNome: "X", Data: "10/03/2026"}
	if _, err := dto.ParaModelo(); err == nil {
		t.Fatal("data fora do formato ISO deveria falhar")
	}
}
