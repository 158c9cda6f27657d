// internal/meta/service.go
package meta

import (
	"time"

	"github.com/ClinicaLumi/api-clinica/internal/atendimento"
	"gorm.io/gorm"
)

// Service calcula o andamento das metas a partir dos atendimentos realizados.
type Service struct {
	DB      *gorm.DB
	AtdRepo *atendimento.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, AtdRepo: atendimento.NewRepository(db)}
}

// CalcularProgresso deriva o valor atual da meta sobre os atendimentos
// realizados do mês: Faturamento soma valor_final; Pacientes conta
// pacientes distintos.
func (s *Service) CalcularProgresso(m Meta) (Progresso, error) {
	inicio := time.Date(m.Ano, time.Month(m.Mes), 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, 0).Add(-time.Second)

	realizados, err := s.AtdRepo.ListarRealizadosNoPeriodo(inicio, fim)
	if err != nil {
		return Progresso{}, err
	}

	var atual float64
	switch m.Tipo {
	case TipoFaturamento:
		for _, a := range realizados {
			atual += a.ValorFinal
		}
	case TipoPacientes:
		vistos := map[uint]bool{}
		for _, a := range realizados {
			vistos[a.PacienteID] = true
		}
		atual = float64(len(vistos))
	default:
		atual = m.ValorAlvo
	}

	percentual := 0.0
	if m.ValorAlvo > 0 {
		percentual = atual / m.ValorAlvo * 100
		if percentual > 100 {
			percentual = 100
		}
	}

	return Progresso{Meta: m, ValorAtual: atual, Percentual: percentual}, nil
}
