package relatorio

import (
	"math"
	"testing"

	"github.com/ClinicaLumi/api-clinica/internal/atendimento"
	"github.com/ClinicaLumi/api-clinica/internal/movimentoestoque"
)

func TestSomarValorFinal(t *testing.T) {
	lista := []atendimento.Atendimento{
		{ValorFinal: 135},
		{ValorFinal: 300},
		{ValorFinal: 0},
	}
	if got := SomarValorFinal(lista); got != 435 {
		t.Errorf("SomarValorFinal = %v, esperado 435", got)
	}
	if got := SomarValorFinal(nil); got != 0 {
		t.Errorf("SomarValorFinal(nil) = %v, esperado 0", got)
	}
}

// Atendimentos no cartão de crédito ficam de fora: a receita deles entra
// pelas parcelas, não pelo valor final.
func TestSomarValorFinalForaDoCredito(t *testing.T) {
	lista := []atendimento.Atendimento{
		{ValorFinal: 150, MetodoPagamento: atendimento.MetodoDinheiro},
		{ValorFinal: 300, MetodoPagamento: atendimento.MetodoCartaoCredito},
		{ValorFinal: 90, MetodoPagamento: atendimento.MetodoPixPF},
	}
	if got := SomarValorFinalForaDoCredito(lista); got != 240 {
		t.Errorf("SomarValorFinalForaDoCredito = %v, esperado 240", got)
	}
}

func TestContarNovosERetornos(t *testing.T) {
	lista := []atendimento.Atendimento{
		{PacienteNovo: true},
		{PacienteNovo: false},
		{PacienteNovo: true},
	}
	novos, retorno := ContarNovosERetornos(lista)
	if novos != 2 || retorno != 1 {
		t.Errorf("ContarNovosERetornos = (%d, %d), esperado (2, 1)", novos, retorno)
	}
}

func TestSomarCustoMovimentos(t *testing.T) {
	movs := []movimentoestoque.MovimentoEstoque{
		{CustoTotal: 10},
		{CustoTotal: 2.5},
	}
	if got := SomarCustoMovimentos(movs); got != 12.5 {
		t.Errorf("SomarCustoMovimentos = %v, esperado 12.5", got)
	}
}

func TestEstatisticasProcedimentos(t *testing.T) {
	lista := []atendimento.Atendimento{
		{
			Procedimentos: []atendimento.ProcedimentoItem{
				{Nome: "Botox", Preco: 300},
				{Nome: "Limpeza de Pele", Preco: 100},
			},
			CustoMateriais: 20, // rateio de 10 para cada
		},
		{
			Procedimentos: []atendimento.ProcedimentoItem{
				{Nome: "Botox", Preco: 280},
			},
			CustoMateriais: 5,
		},
		{
			// sem procedimentos: ignorado
			CustoMateriais: 99,
		},
	}

	stats := EstatisticasProcedimentos(lista, 10)
	if len(stats) != 2 {
		t.Fatalf("esperados 2 procedimentos, vieram %d", len(stats))
	}

	// ordenado por faturamento: Botox primeiro
	botox := stats[0]
	if botox.Nome != "Botox" || botox.Quantidade != 2 {
		t.Errorf("primeiro = %+v, esperado Botox com 2 execuções", botox)
	}
	if math.Abs(botox.Faturamento-580) > 1e-9 {
		t.Errorf("faturamento do Botox = %v, esperado 580", botox.Faturamento)
	}
	if math.Abs(botox.CustoMateriais-15) > 1e-9 {
		t.Errorf("custo rateado do Botox = %v, esperado 15", botox.CustoMateriais)
	}

	limpeza := stats[1]
	if math.Abs(limpeza.CustoMateriais-10) > 1e-9 {
		t.Errorf("custo rateado da limpeza = %v, esperado 10", limpeza.CustoMateriais)
	}
}

func TestEstatisticasProcedimentosLimite(t *testing.T) {
	lista := []atendimento.Atendimento{
		{Procedimentos: []atendimento.ProcedimentoItem{{Nome: "A", Preco: 10}}},
		{Procedimentos: []atendimento.ProcedimentoItem{{Nome: "B", Preco: 30}}},
		{Procedimentos: []atendimento.ProcedimentoItem{{Nome: "C", Preco: 20}}},
	}
	stats := EstatisticasProcedimentos(lista, 2)
	if len(stats) != 2 {
		t.Fatalf("limite não respeitado: vieram %d", len(stats))
	}
	if stats[0].Nome != "B" || stats[1].Nome != "C" {
		t.Errorf("ranking inesperado: %+v", stats)
	}
}

func TestAgruparPorSegmento(t *testing.T) {
	lista := []atendimento.Atendimento{
		{PacienteGenero: "Feminino", ValorFinal: 100},
		{PacienteGenero: "Feminino", ValorFinal: 200},
		{PacienteGenero: "Masculino", ValorFinal: 50},
		{PacienteGenero: "", ValorFinal: 30},
	}

	stats := AgruparPorSegmento(lista, func(a atendimento.Atendimento) string { return a.PacienteGenero })
	if len(stats) != 3 {
		t.Fatalf("esperados 3 segmentos, vieram %d", len(stats))
	}
	if stats[0].Nome != "Feminino" || stats[0].Quantidade != 2 || stats[0].Total != 300 {
		t.Errorf("primeiro segmento = %+v", stats[0])
	}

	// gênero vazio cai no balde "Outro"
	achouOutro := false
	for _, s := range stats {
		if s.Nome == "Outro" && s.Total == 30 {
			achouOutro = true
		}
	}
	if !achouOutro {
		t.Error("segmento vazio deveria virar \"Outro\"")
	}
}

func TestAgruparUsoMateriais(t *testing.T) {
	movs := []movimentoestoque.MovimentoEstoque{
		{MaterialNome: "Agulha", Quantidade: 4, CustoTotal: 10},
		{MaterialNome: "Agulha", Quantidade: 2, CustoTotal: 5},
		{MaterialNome: "Gaze", Quantidade: 10, CustoTotal: 3},
	}

	usos := AgruparUsoMateriais(movs)
	if len(usos) != 2 {
		t.Fatalf("esperados 2 materiais, vieram %d", len(usos))
	}
	if usos[0].Nome != "Agulha" || usos[0].Quantidade != 6 || usos[0].CustoTotal != 15 {
		t.Errorf("agregado da agulha = %+v", usos[0])
	}
	if usos[1].Nome != "Gaze" {
		t.Errorf("segundo material = %+v", usos[1])
	}
}
