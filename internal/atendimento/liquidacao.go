// internal/atendimento/liquidacao.go
//
// Liquidação: transforma um atendimento preenchido em (a) o registro do
// atendimento, (b) as baixas de estoque dos materiais consumidos e
// (c) as parcelas a receber quando o pagamento é no cartão de crédito.
package atendimento

import (
	"github.com/ClinicaLumi/api-clinica/internal/erros"
	"github.com/ClinicaLumi/api-clinica/internal/material"
	"github.com/ClinicaLumi/api-clinica/internal/movimentoestoque"
	"github.com/ClinicaLumi/api-clinica/internal/parcela"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MotivoUsoEmAtendimento é o motivo gravado nas baixas de estoque da liquidação.
const MotivoUsoEmAtendimento = "Uso em atendimento"

// Liquidador executa a liquidação de um atendimento.
//
// No modo padrão (Atomico == false) cada etapa é uma escrita independente,
// sem transação compartilhada: a falha em uma linha de material é registrada
// no log e não interrompe as linhas seguintes, e escritas já aplicadas não
// são desfeitas. Esse é o comportamento da versão original do sistema.
//
// Com Atomico == true todas as etapas rodam em uma única transação e
// qualquer falha desfaz tudo.
type Liquidador struct {
	DB      *gorm.DB
	Log     *zap.Logger
	Atomico bool
}

func NewLiquidador(db *gorm.DB, log *zap.Logger, atomico bool) *Liquidador {
	if log == nil {
		log = zap.NewNop()
	}
	return &Liquidador{DB: db, Log: log, Atomico: atomico}
}

// Liquidar persiste o atendimento e aplica as consequências (baixas de
// estoque e parcelas). O atendimento retornado carrega o ID gerado.
func (l *Liquidador) Liquidar(atd *Atendimento) (*Atendimento, error) {
	if l.Atomico {
		err := l.DB.Transaction(func(tx *gorm.DB) error {
			return l.executar(tx, atd, true)
		})
		if err != nil {
			return nil, err
		}
		return atd, nil
	}

	if err := l.executar(l.DB, atd, false); err != nil {
		return nil, err
	}
	return atd, nil
}

// executar roda as quatro etapas da liquidação na ordem fixa:
// atendimento → laço de estoque → parcelas. Em modo estrito qualquer
// falha aborta; caso contrário falhas parciais apenas geram log.
func (l *Liquidador) executar(db *gorm.DB, atd *Atendimento, estrito bool) error {
	// 1) registro do atendimento; falha aqui aborta a operação inteira
	if err := db.Create(atd).Error; err != nil {
		return &erros.ErroPersistencia{Colecao: "atendimentos", Err: err}
	}

	// 2) baixa de estoque, uma linha por vez, na ordem da lista
	for _, item := range atd.Materiais {
		if err := l.baixarEstoque(db, atd, item); err != nil {
			if estrito {
				return err
			}
			l.Log.Warn("falha parcial na baixa de estoque",
				zap.Uint("atendimentoId", atd.ID),
				zap.Uint("materialId", item.MaterialID),
				zap.Error(err))
		}
	}

	// 3) parcelas, apenas para cartão de crédito parcelado
	if MetodoParcelavel(atd.MetodoPagamento) && atd.Parcelas > 1 {
		if err := l.gerarParcelas(db, atd); err != nil {
			if estrito {
				return err
			}
			l.Log.Warn("falha parcial na geração de parcelas",
				zap.Uint("atendimentoId", atd.ID),
				zap.Error(err))
		}
	}

	return nil
}

// baixarEstoque processa uma linha de material: lê o saldo atual, grava a
// linha do histórico e atualiza o material. Material inexistente é
// ignorado em silêncio; o saldo pode ficar negativo.
func (l *Liquidador) baixarEstoque(db *gorm.DB, atd *Atendimento, item MaterialItem) error {
	matRepo := material.NewRepository(db)

	mat, err := matRepo.BuscarPorID(item.MaterialID)
	if err != nil {
		if erros.NaoEncontrado(err) {
			l.Log.Debug("material ausente, linha ignorada",
				zap.Uint("atendimentoId", atd.ID),
				zap.Uint("materialId", item.MaterialID))
			return nil
		}
		return err
	}

	anterior := mat.QuantidadeEstoque
	novo := anterior - item.Quantidade

	mov := &movimentoestoque.MovimentoEstoque{
		MaterialID:      mat.ID,
		MaterialNome:    item.Nome,
		Tipo:            movimentoestoque.TipoSaida,
		Quantidade:      item.Quantidade,
		EstoqueAnterior: anterior,
		EstoqueNovo:     novo,
		CustoUnitario:   item.CustoUnitario,
		CustoTotal:      item.CustoUnitario * item.Quantidade,
		Motivo:          MotivoUsoEmAtendimento,
		PacienteNome:    atd.PacienteNome,
		AtendimentoID:   &atd.ID,
		Data:            atd.Data,
	}
	if err := movimentoestoque.NewRepository(db).Criar(mov); err != nil {
		return &erros.ErroPersistencia{Colecao: "movimentos_estoque", Err: err}
	}

	if err := matRepo.AtualizarEstoque(mat.ID, novo); err != nil {
		return &erros.ErroPersistencia{Colecao: "materiais", Err: err}
	}

	return nil
}

// gerarParcelas cria N parcelas com vencimento mensal a partir da data do
// atendimento. O valor é sempre rederivado de valor_final / parcelas.
// Cartão de crédito é tratado como recebimento garantido: toda parcela
// nasce recebida, com data de recebimento igual ao vencimento.
func (l *Liquidador) gerarParcelas(db *gorm.DB, atd *Atendimento) error {
	valor := atd.ValorFinal / float64(atd.Parcelas)

	parcelas := make([]*parcela.Parcela, 0, atd.Parcelas)
	for i := 0; i < atd.Parcelas; i++ {
		vencimento := atd.Data.AddDate(0, i, 0)
		parcelas = append(parcelas, &parcela.Parcela{
			AtendimentoID:   atd.ID,
			PacienteNome:    atd.PacienteNome,
			Numero:          i + 1,
			TotalParcelas:   atd.Parcelas,
			Valor:           valor,
			DataVencimento:  vencimento,
			Recebida:        true,
			DataRecebimento: &vencimento,
		})
	}

	if err := parcela.NewRepository(db).CriarEmLote(parcelas); err != nil {
		return &erros.ErroPersistencia{Colecao: "parcelas", Err: err}
	}
	return nil
}
