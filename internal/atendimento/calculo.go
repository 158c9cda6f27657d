// internal/atendimento/calculo.go
//
// Núcleo funcional do cálculo de liquidação: funções puras, sem estado
// e sem acesso a banco. O handler e a liquidação sempre recalculam os
// totais a partir das linhas enviadas; o valor exibido pelo cliente
// nunca é persistido diretamente.
package atendimento

/* ============================ Agregador de itens ============================ */

// SomarProcedimentos soma os preços dos procedimentos selecionados.
// Preço ausente conta como zero.
func SomarProcedimentos(itens []ProcedimentoItem) float64 {
	var total float64
	for _, p := range itens {
		total += p.Preco
	}
	return total
}

// SomarMateriais soma custo unitário × quantidade das linhas de material.
func SomarMateriais(itens []MaterialItem) float64 {
	var total float64
	for _, m := range itens {
		total += m.CustoUnitario * m.Quantidade
	}
	return total
}

/* ======================= Desconto e parcelamento ======================= */

// Resumo é o resultado do cálculo de liquidação de um atendimento.
type Resumo struct {
	ValorTotal     float64 `json:"valorTotal"`
	CustoMateriais float64 `json:"custoMateriais"`
	ValorDesconto  float64 `json:"valorDesconto"`
	ValorFinal     float64 `json:"valorFinal"`
	Parcelas       int     `json:"parcelas"`
	ValorParcela   float64 `json:"valorParcela"`
}

// CalcularResumo deriva todos os totais de um atendimento a partir das
// linhas selecionadas, do desconto percentual e do parcelamento.
//
// Regras por método de pagamento:
//   - apenas Cartão Crédito parcela; qualquer outro método força parcelas = 1;
//   - o desconto não é zerado ao trocar para Cartão Crédito (comportamento
//     do formulário original, mantido);
//   - parcelas menor ou igual a zero não divide: valor da parcela = valor final.
func CalcularResumo(procedimentos []ProcedimentoItem, materiais []MaterialItem, metodo string, descontoPercentual float64, parcelas int) Resumo {
	if !MetodoParcelavel(metodo) {
		parcelas = 1
	}

	valorTotal := SomarProcedimentos(procedimentos)
	custoMateriais := SomarMateriais(materiais)
	valorDesconto := valorTotal * descontoPercentual / 100
	valorFinal := valorTotal - valorDesconto

	valorParcela := valorFinal
	if parcelas > 0 {
		valorParcela = valorFinal / float64(parcelas)
	}

	return Resumo{
		ValorTotal:     valorTotal,
		CustoMateriais: custoMateriais,
		ValorDesconto:  valorDesconto,
		ValorFinal:     valorFinal,
		Parcelas:       parcelas,
		ValorParcela:   valorParcela,
	}
}
