// internal/notificacao/webhook.go
package notificacao

import (
	"time"

	"github.com/ClinicaLumi/api-clinica/internal/material"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Notificador envia alertas da clínica para um webhook externo.
// Com URL vazia o envio é silenciosamente desativado.
type Notificador struct {
	cliente *resty.Client
	url     string
	log     *zap.Logger
}

func NewNotificador(url string, log *zap.Logger) *Notificador {
	if log == nil {
		log = zap.NewNop()
	}
	cliente := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2)
	return &Notificador{cliente: cliente, url: url, log: log}
}

type alertaEstoque struct {
	Mensagem  string       `json:"mensagem"`
	Materiais []itemAlerta `json:"materiais"`
}

type itemAlerta struct {
	Nome              string  `json:"nome"`
	QuantidadeEstoque float64 `json:"quantidadeEstoque"`
	EstoqueMinimo     float64 `json:"estoqueMinimo"`
	Unidade           string  `json:"unidade"`
}

// EnviarAlertaEstoque publica a lista de materiais abaixo do mínimo.
func (n *Notificador) EnviarAlertaEstoque(materiais []material.Material) {
	if n.url == "" || len(materiais) == 0 {
		return
	}

	itens := make([]itemAlerta, 0, len(materiais))
	for _, m := range materiais {
		itens = append(itens, itemAlerta{
			Nome:              m.Nome,
			QuantidadeEstoque: m.QuantidadeEstoque,
			EstoqueMinimo:     m.EstoqueMinimo,
			Unidade:           m.Unidade,
		})
	}

	payload := alertaEstoque{
		Mensagem:  "Alerta: materiais abaixo do estoque mínimo",
		Materiais: itens,
	}

	resp, err := n.cliente.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(n.url)
	if err != nil {
		n.log.Warn("erro ao enviar webhook de estoque", zap.Error(err))
		return
	}
	if resp.IsError() {
		n.log.Warn("webhook de estoque rejeitado",
			zap.Int("status", resp.StatusCode()))
	}
}
