// internal/relatorio/service.go
//
// Agregações de leitura para o dashboard, o financeiro e a tela de
// relatórios. As consultas buscam os registros do período e as funções
// puras deste pacote fazem as somas e rankings.
package relatorio

import (
	"sort"
	"time"

	"github.com/ClinicaLumi/api-clinica/internal/atendimento"
	"github.com/ClinicaLumi/api-clinica/internal/despesa"
	"github.com/ClinicaLumi/api-clinica/internal/movimentoestoque"
	"github.com/ClinicaLumi/api-clinica/internal/paciente"
	"github.com/ClinicaLumi/api-clinica/internal/parcela"
	"gorm.io/gorm"
)

// Service concentra as consultas de relatório.
type Service struct {
	DB       *gorm.DB
	AtdRepo  *atendimento.Repository
	PacRepo  *paciente.Repository
	DespRepo *despesa.Repository
	ParcRepo *parcela.Repository
	MovRepo  *movimentoestoque.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:       db,
		AtdRepo:  atendimento.NewRepository(db),
		PacRepo:  paciente.NewRepository(db),
		DespRepo: despesa.NewRepository(db),
		ParcRepo: parcela.NewRepository(db),
		MovRepo:  movimentoestoque.NewRepository(db),
	}
}

/* ============================== Dashboard ============================== */

// Dashboard é a visão geral de um mês.
type Dashboard struct {
	Faturamento         float64            `json:"faturamento"`
	Despesas            float64            `json:"despesas"`
	Lucro               float64            `json:"lucro"`
	PacientesNovos      int                `json:"pacientesNovos"`
	PacientesRetorno    int                `json:"pacientesRetorno"`
	DistribuicaoGeneros map[string]int     `json:"distribuicaoGeneros"`
	RetornosProximos    []paciente.Paciente `json:"retornosProximos"`
}

// DashboardMensal calcula a visão geral do mês informado sobre os
// atendimentos realizados.
func (s *Service) DashboardMensal(mes, ano int) (*Dashboard, error) {
	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, 0).Add(-time.Second)

	realizados, err := s.AtdRepo.ListarRealizadosNoPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}
	despesas, err := s.DespRepo.SomarPorPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}
	pacientes, err := s.PacRepo.ListarTodos("")
	if err != nil {
		return nil, err
	}
	retornos, err := s.PacRepo.ListarRetornosProximos(15)
	if err != nil {
		return nil, err
	}

	faturamento := SomarValorFinal(realizados)
	novos, retorno := ContarNovosERetornos(realizados)

	generos := map[string]int{}
	for _, p := range pacientes {
		g := p.Genero
		if g == "" {
			g = "Outro"
		}
		generos[g]++
	}

	return &Dashboard{
		Faturamento:         faturamento,
		Despesas:            despesas,
		Lucro:               faturamento - despesas,
		PacientesNovos:      novos,
		PacientesRetorno:    retorno,
		DistribuicaoGeneros: generos,
		RetornosProximos:    retornos,
	}, nil
}

/* ============================== Financeiro ============================== */

// ResumoFinanceiro é a visão de fluxo de caixa de um período.
type ResumoFinanceiro struct {
	Faturamento      float64      `json:"faturamento"`
	Despesas         float64      `json:"despesas"`
	AReceber         float64      `json:"aReceber"`
	SeriePorMes      []PontoSerie `json:"seriePorMes"`
}

// PontoSerie é um mês da série anual de faturamento × despesas.
type PontoSerie struct {
	Mes         string  `json:"mes"`
	Faturamento float64 `json:"faturamento"`
	Despesas    float64 `json:"despesas"`
}

var nomesMeses = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// Financeiro calcula o resumo do período: o faturamento real soma as
// parcelas recebidas com vencimento no período mais o valor final dos
// atendimentos do período não pagos no cartão de crédito (estes não
// geram parcela).
func (s *Service) Financeiro(inicio, fim time.Time, ano int) (*ResumoFinanceiro, error) {
	recebidas, err := s.ParcRepo.SomarPorPeriodo(inicio, fim, true)
	if err != nil {
		return nil, err
	}
	pendentes, err := s.ParcRepo.SomarPorPeriodo(inicio, fim, false)
	if err != nil {
		return nil, err
	}
	atendimentos, err := s.AtdRepo.ListarPorPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}
	despesas, err := s.DespRepo.SomarPorPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}

	faturamento := recebidas + SomarValorFinalForaDoCredito(atendimentos)

	serie := make([]PontoSerie, 0, 12)
	for i := 0; i < 12; i++ {
		mInicio := time.Date(ano, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		mFim := mInicio.AddDate(0, 1, 0).Add(-time.Second)

		mRec, err := s.ParcRepo.SomarPorPeriodo(mInicio, mFim, true)
		if err != nil {
			return nil, err
		}
		mDesp, err := s.DespRepo.SomarPorPeriodo(mInicio, mFim)
		if err != nil {
			return nil, err
		}
		serie = append(serie, PontoSerie{Mes: nomesMeses[i], Faturamento: mRec, Despesas: mDesp})
	}

	return &ResumoFinanceiro{
		Faturamento: faturamento,
		Despesas:    despesas,
		AReceber:    pendentes,
		SeriePorMes: serie,
	}, nil
}

/* ============================== Relatórios ============================== */

// EstatisticaProcedimento agrega um procedimento no período.
type EstatisticaProcedimento struct {
	Nome           string  `json:"nome"`
	Quantidade     int     `json:"quantidade"`
	Faturamento    float64 `json:"faturamento"`
	CustoMateriais float64 `json:"custoMateriais"`
}

// EstatisticaSegmento agrega atendimentos por gênero ou origem do paciente.
type EstatisticaSegmento struct {
	Nome       string  `json:"nome"`
	Quantidade int     `json:"quantidade"`
	Total      float64 `json:"total"`
}

// UsoMaterial agrega o consumo de um material no período.
type UsoMaterial struct {
	Nome       string  `json:"nome"`
	Quantidade float64 `json:"quantidade"`
	CustoTotal float64 `json:"custoTotal"`
}

// Relatorio é o conjunto de análises de um intervalo de datas.
type Relatorio struct {
	Faturamento      float64                   `json:"faturamento"`
	CustoMateriais   float64                   `json:"custoMateriais"`
	MargemBruta      float64                   `json:"margemBruta"`
	PacientesNovos   int                       `json:"pacientesNovos"`
	PacientesRetorno int                       `json:"pacientesRetorno"`
	TopProcedimentos []EstatisticaProcedimento `json:"topProcedimentos"`
	PorGenero        []EstatisticaSegmento     `json:"porGenero"`
	PorOrigem        []EstatisticaSegmento     `json:"porOrigem"`
	UsoMateriais     []UsoMaterial             `json:"usoMateriais"`
}

// Periodo monta o relatório completo do intervalo informado.
func (s *Service) Periodo(inicio, fim time.Time) (*Relatorio, error) {
	realizados, err := s.AtdRepo.ListarRealizadosNoPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}
	saidas, err := s.MovRepo.ListarPorPeriodo(movimentoestoque.TipoSaida, inicio, fim)
	if err != nil {
		return nil, err
	}

	faturamento := SomarValorFinal(realizados)
	custoMateriais := SomarCustoMovimentos(saidas)
	novos, retorno := ContarNovosERetornos(realizados)

	return &Relatorio{
		Faturamento:      faturamento,
		CustoMateriais:   custoMateriais,
		MargemBruta:      faturamento - custoMateriais,
		PacientesNovos:   novos,
		PacientesRetorno: retorno,
		TopProcedimentos: EstatisticasProcedimentos(realizados, 10),
		PorGenero:        AgruparPorSegmento(realizados, func(a atendimento.Atendimento) string { return a.PacienteGenero }),
		PorOrigem:        AgruparPorSegmento(realizados, func(a atendimento.Atendimento) string { return a.PacienteOrigem }),
		UsoMateriais:     AgruparUsoMateriais(saidas),
	}, nil
}

/* ===================== Funções puras de agregação ===================== */

// SomarValorFinal soma o valor final dos atendimentos.
func SomarValorFinal(lista []atendimento.Atendimento) float64 {
	var total float64
	for _, a := range lista {
		total += a.ValorFinal
	}
	return total
}

// SomarValorFinalForaDoCredito soma o valor final dos atendimentos que
// não foram pagos no cartão de crédito.
func SomarValorFinalForaDoCredito(lista []atendimento.Atendimento) float64 {
	var total float64
	for _, a := range lista {
		if a.MetodoPagamento != atendimento.MetodoCartaoCredito {
			total += a.ValorFinal
		}
	}
	return total
}

// ContarNovosERetornos conta atendimentos de pacientes novos e de retorno.
func ContarNovosERetornos(lista []atendimento.Atendimento) (novos, retorno int) {
	for _, a := range lista {
		if a.PacienteNovo {
			novos++
		} else {
			retorno++
		}
	}
	return novos, retorno
}

// SomarCustoMovimentos soma o custo total das movimentações.
func SomarCustoMovimentos(movs []movimentoestoque.MovimentoEstoque) float64 {
	var total float64
	for _, m := range movs {
		total += m.CustoTotal
	}
	return total
}

// EstatisticasProcedimentos agrega os procedimentos realizados no período.
// O custo de materiais de cada atendimento é dividido igualmente entre os
// procedimentos daquele atendimento.
func EstatisticasProcedimentos(lista []atendimento.Atendimento, limite int) []EstatisticaProcedimento {
	porNome := map[string]*EstatisticaProcedimento{}
	for _, a := range lista {
		n := len(a.Procedimentos)
		if n == 0 {
			continue
		}
		rateio := a.CustoMateriais / float64(n)
		for _, p := range a.Procedimentos {
			e, ok := porNome[p.Nome]
			if !ok {
				e = &EstatisticaProcedimento{Nome: p.Nome}
				porNome[p.Nome] = e
			}
			e.Quantidade++
			e.Faturamento += p.Preco
			e.CustoMateriais += rateio
		}
	}

	stats := make([]EstatisticaProcedimento, 0, len(porNome))
	for _, e := range porNome {
		stats = append(stats, *e)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Faturamento > stats[j].Faturamento })
	if limite > 0 && len(stats) > limite {
		stats = stats[:limite]
	}
	return stats
}

// AgruparPorSegmento agrega atendimentos por uma chave do paciente
// (gênero ou origem), ordenando pelo total faturado.
func AgruparPorSegmento(lista []atendimento.Atendimento, chave func(atendimento.Atendimento) string) []EstatisticaSegmento {
	porChave := map[string]*EstatisticaSegmento{}
	for _, a := range lista {
		k := chave(a)
		if k == "" {
			k = "Outro"
		}
		e, ok := porChave[k]
		if !ok {
			e = &EstatisticaSegmento{Nome: k}
			porChave[k] = e
		}
		e.Quantidade++
		e.Total += a.ValorFinal
	}

	stats := make([]EstatisticaSegmento, 0, len(porChave))
	for _, e := range porChave {
		stats = append(stats, *e)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Total > stats[j].Total })
	return stats
}

// AgruparUsoMateriais agrega o consumo por material, maior custo primeiro.
func AgruparUsoMateriais(movs []movimentoestoque.MovimentoEstoque) []UsoMaterial {
	porNome := map[string]*UsoMaterial{}
	for _, m := range movs {
		u, ok := porNome[m.MaterialNome]
		if !ok {
			u = &UsoMaterial{Nome: m.MaterialNome}
			porNome[m.MaterialNome] = u
		}
		u.Quantidade += m.Quantidade
		u.CustoTotal += m.CustoTotal
	}

	usos := make([]UsoMaterial, 0, len(porNome))
	for _, u := range porNome {
		usos = append(usos, *u)
	}
	sort.Slice(usos, func(i, j int) bool { return usos[i].CustoTotal > usos[j].CustoTotal })
	return usos
}
