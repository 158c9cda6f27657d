package atendimento

import (
	"math"
	"testing"
)

func quaseIgual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSomarProcedimentos(t *testing.T) {
	itens := []ProcedimentoItem{
		{ProcedimentoID: 1, Nome: "Limpeza de Pele", Preco: 100},
		{ProcedimentoID: 2, Nome: "Peeling", Preco: 50},
		{ProcedimentoID: 3, Nome: "Sem preço cadastrado"},
	}

	if got := SomarProcedimentos(itens); !quaseIgual(got, 150) {
		t.Errorf("SomarProcedimentos = %v, esperado 150", got)
	}
	if got := SomarProcedimentos(nil); got != 0 {
		t.Errorf("SomarProcedimentos(nil) = %v, esperado 0", got)
	}
}

func TestSomarMateriais(t *testing.T) {
	itens := []MaterialItem{
		{MaterialID: 1, Nome: "Agulha", Quantidade: 4, CustoUnitario: 2.5},
		{MaterialID: 2, Nome: "Gaze", Quantidade: 10, CustoUnitario: 0.3},
		{MaterialID: 3, Nome: "Sem custo", Quantidade: 5},
	}

	if got := SomarMateriais(itens); !quaseIgual(got, 13) {
		t.Errorf("SomarMateriais = %v, esperado 13", got)
	}
}

// Reexecutar a agregação sobre a mesma lista tem que dar o mesmo resultado.
func TestAgregadorSemEstado(t *testing.T) {
	itens := []ProcedimentoItem{{Preco: 80}, {Preco: 20.5}}
	primeiro := SomarProcedimentos(itens)
	segundo := SomarProcedimentos(itens)
	if primeiro != segundo {
		t.Errorf("agregação divergente entre execuções: %v != %v", primeiro, segundo)
	}
}

func TestCalcularResumo(t *testing.T) {
	procDe := func(precos ...float64) []ProcedimentoItem {
		itens := make([]ProcedimentoItem, len(precos))
		for i, p := range precos {
			itens[i] = ProcedimentoItem{Preco: p}
		}
		return itens
	}

	tests := []struct {
		nome     string
		procs    []ProcedimentoItem
		mats     []MaterialItem
		metodo   string
		desconto float64
		parcelas int
		want     Resumo
	}{
		{
			nome:   "dinheiro sem desconto",
			procs:  procDe(100, 50),
			metodo: MetodoDinheiro,
			want:   Resumo{ValorTotal: 150, ValorFinal: 150, Parcelas: 1, ValorParcela: 150},
		},
		{
			nome:     "pix com desconto de 10%",
			procs:    procDe(100, 50),
			metodo:   MetodoPixPF,
			desconto: 10,
			want:     Resumo{ValorTotal: 150, ValorDesconto: 15, ValorFinal: 135, Parcelas: 1, ValorParcela: 135},
		},
		{
			nome:     "cartão de crédito em 3x",
			procs:    procDe(300),
			metodo:   MetodoCartaoCredito,
			parcelas: 3,
			want:     Resumo{ValorTotal: 300, ValorFinal: 300, Parcelas: 3, ValorParcela: 100},
		},
		{
			nome:     "método não parcelável força parcela única",
			procs:    procDe(200),
			metodo:   MetodoCartaoDebito,
			parcelas: 5,
			want:     Resumo{ValorTotal: 200, ValorFinal: 200, Parcelas: 1, ValorParcela: 200},
		},
		{
			nome:     "parcelas zero não divide",
			procs:    procDe(120),
			metodo:   MetodoCartaoCredito,
			parcelas: 0,
			want:     Resumo{ValorTotal: 120, ValorFinal: 120, Parcelas: 0, ValorParcela: 120},
		},
		{
			nome: "custo de materiais não entra no valor final",
			procs: procDe(100),
			mats: []MaterialItem{
				{Quantidade: 4, CustoUnitario: 2.5},
			},
			metodo: MetodoDinheiro,
			want:   Resumo{ValorTotal: 100, CustoMateriais: 10, ValorFinal: 100, Parcelas: 1, ValorParcela: 100},
		},
		{
			nome:     "desconto não é zerado ao trocar para crédito",
			procs:    procDe(100),
			metodo:   MetodoCartaoCredito,
			desconto: 10,
			parcelas: 2,
			want:     Resumo{ValorTotal: 100, ValorDesconto: 10, ValorFinal: 90, Parcelas: 2, ValorParcela: 45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			got := CalcularResumo(tt.procs, tt.mats, tt.metodo, tt.desconto, tt.parcelas)
			if !quaseIgual(got.ValorTotal, tt.want.ValorTotal) ||
				!quaseIgual(got.CustoMateriais, tt.want.CustoMateriais) ||
				!quaseIgual(got.ValorDesconto, tt.want.ValorDesconto) ||
				!quaseIgual(got.ValorFinal, tt.want.ValorFinal) ||
				got.Parcelas != tt.want.Parcelas ||
				!quaseIgual(got.ValorParcela, tt.want.ValorParcela) {
				t.Errorf("CalcularResumo = %+v, esperado %+v", got, tt.want)
			}
		})
	}
}

// valor_final = valor_total × (1 − desconto/100) para qualquer desconto em [0,100].
func TestDescontoPropriedade(t *testing.T) {
	procs := []ProcedimentoItem{{Preco: 137.53}}
	for desconto := 0.0; desconto <= 100; desconto += 2.5 {
		r := CalcularResumo(procs, nil, MetodoDinheiro, desconto, 1)
		esperado := 137.53 * (1 - desconto/100)
		if math.Abs(r.ValorFinal-esperado) > 1e-9 {
			t.Fatalf("desconto %v: ValorFinal = %v, esperado %v", desconto, r.ValorFinal, esperado)
		}
	}
}

// A soma das N parcelas reconstrói o valor final dentro da tolerância.
func TestParcelamentoReconstroiValorFinal(t *testing.T) {
	procs := []ProcedimentoItem{{Preco: 999.99}}
	for parcelas := 1; parcelas <= 12; parcelas++ {
		r := CalcularResumo(procs, nil, MetodoCartaoCredito, 0, parcelas)
		soma := r.ValorParcela * float64(parcelas)
		if math.Abs(soma-r.ValorFinal) > 1e-6 {
			t.Fatalf("%d parcelas: soma %v não reconstrói valor final %v", parcelas, soma, r.ValorFinal)
		}
	}
}

func TestMetodosPagamento(t *testing.T) {
	if !MetodoValido(MetodoPixPJ) || MetodoValido("Cheque") {
		t.Error("MetodoValido com resultado inesperado")
	}
	if !MetodoParcelavel(MetodoCartaoCredito) || MetodoParcelavel(MetodoCartaoDebito) {
		t.Error("MetodoParcelavel com resultado inesperado")
	}

	comDesconto := []string{MetodoPixPJ, MetodoPixPF, MetodoDinheiro, MetodoCartaoDebito}
	for _, m := range comDesconto {
		if !MetodoComDesconto(m) {
			t.Errorf("%s deveria aceitar desconto", m)
		}
	}
	semDesconto := []string{MetodoCartaoCredito, MetodoPermuta, MetodoTroca}
	for _, m := range semDesconto {
		if MetodoComDesconto(m) {
			t.Errorf("%s não deveria aceitar desconto", m)
		}
	}
}
