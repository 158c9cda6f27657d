// internal/atendimento/dto.go
package atendimento

import (
	"time"

	"github.com/ClinicaLumi/api-clinica/internal/erros"
)

// AtendimentoDTO é o payload do formulário de atendimento.
// Os totais enviados pelo cliente são ignorados: o servidor recalcula
// tudo a partir das linhas.
type AtendimentoDTO struct {
	PacienteID      uint               `json:"pacienteId" validate:"required"`
	PacienteNome    string             `json:"pacienteNome" validate:"required"`
	PacienteGenero  string             `json:"pacienteGenero"`
	PacienteOrigem  string             `json:"pacienteOrigem"`
	PacienteNovo    bool               `json:"pacienteNovo"`
	Data            string             `json:"data" validate:"required,datetime=2006-01-02"`
	Horario         string             `json:"horario"`
	Status          string             `json:"status"`
	MetodoPagamento string             `json:"metodoPagamento"`
	Procedimentos   []ProcedimentoItem `json:"procedimentos"`
	Materiais       []MaterialItem     `json:"materiais"`
	Desconto        float64            `json:"descontoPercentual" validate:"gte=0,lte=100"`
	Parcelas        int                `json:"parcelas"`
	Observacoes     string             `json:"observacoes"`
}

// ParaModelo converte o DTO em um Atendimento com os totais recalculados.
func (d *AtendimentoDTO) ParaModelo() (*Atendimento, error) {
	data, err := time.Parse("2006-01-02", d.Data)
	if err != nil {
		return nil, &erros.ErroValidacao{Motivo: "data fora do formato 2006-01-02"}
	}

	status := d.Status
	if status == "" {
		status = StatusRealizado
	}

	resumo := CalcularResumo(d.Procedimentos, d.Materiais, d.MetodoPagamento, d.Desconto, d.Parcelas)

	return &Atendimento{
		PacienteID:         d.PacienteID,
		PacienteNome:       d.PacienteNome,
		PacienteGenero:     d.PacienteGenero,
		PacienteOrigem:     d.PacienteOrigem,
		PacienteNovo:       d.PacienteNovo,
		Data:               data,
		Horario:            d.Horario,
		Status:             status,
		MetodoPagamento:    d.MetodoPagamento,
		Procedimentos:      d.Procedimentos,
		Materiais:          d.Materiais,
		DescontoPercentual: d.Desconto,
		Parcelas:           resumo.Parcelas,
		ValorTotal:         resumo.ValorTotal,
		CustoMateriais:     resumo.CustoMateriais,
		ValorDesconto:      resumo.ValorDesconto,
		ValorFinal:         resumo.ValorFinal,
		ValorParcela:       resumo.ValorParcela,
		Observacoes:        d.Observacoes,
	}, nil
}
