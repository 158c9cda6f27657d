package movimentoestoque

import "testing"

func TestCalcularEstoqueNovo(t *testing.T) {
	tests := []struct {
		nome       string
		tipo       string
		atual      float64
		quantidade float64
		want       float64
	}{
		{"entrada soma", TipoEntrada, 10, 5, 15},
		{"saída subtrai", TipoSaida, 10, 4, 6},
		{"saída pode deixar negativo", TipoSaida, 3, 5, -2},
		{"ajuste substitui", TipoAjuste, 10, 7, 7},
		{"ajuste para zero", TipoAjuste, 10, 0, 0},
		{"entrada fracionada", TipoEntrada, 1.5, 0.25, 1.75},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			if got := CalcularEstoqueNovo(tt.tipo, tt.atual, tt.quantidade); got != tt.want {
				t.Errorf("CalcularEstoqueNovo(%q, %v, %v) = %v, esperado %v",
					tt.tipo, tt.atual, tt.quantidade, got, tt.want)
			}
		})
	}
}
