// internal/notificacao/verificador.go
package notificacao

import (
	"github.com/ClinicaLumi/api-clinica/internal/material"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VerificadorEstoque é o job diário que varre os materiais abaixo do
// mínimo e dispara o alerta.
type VerificadorEstoque struct {
	Repo        *material.Repository
	Notificador *Notificador
	Log         *zap.Logger
}

func NewVerificadorEstoque(db *gorm.DB, notificador *Notificador, log *zap.Logger) *VerificadorEstoque {
	if log == nil {
		log = zap.NewNop()
	}
	return &VerificadorEstoque{
		Repo:        material.NewRepository(db),
		Notificador: notificador,
		Log:         log,
	}
}

// Executar roda uma varredura; pensado para ser agendado via cron.
func (v *VerificadorEstoque) Executar() {
	abaixo, err := v.Repo.ListarAbaixoDoMinimo()
	if err != nil {
		v.Log.Error("erro ao listar materiais abaixo do mínimo", zap.Error(err))
		return
	}
	if len(abaixo) == 0 {
		return
	}

	v.Log.Info("materiais abaixo do estoque mínimo", zap.Int("quantidade", len(abaixo)))
	v.Notificador.EnviarAlertaEstoque(abaixo)
}
