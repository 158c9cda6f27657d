package main

import (
	"net/http"
	"os"

	"github.com/ClinicaLumi/api-clinica/internal/atendimento"
	"github.com/ClinicaLumi/api-clinica/internal/despesa"
	"github.com/ClinicaLumi/api-clinica/internal/logger"
	"github.com/ClinicaLumi/api-clinica/internal/material"
	"github.com/ClinicaLumi/api-clinica/internal/meta"
	"github.com/ClinicaLumi/api-clinica/internal/movimentoestoque"
	"github.com/ClinicaLumi/api-clinica/internal/notificacao"
	"github.com/ClinicaLumi/api-clinica/internal/paciente"
	"github.com/ClinicaLumi/api-clinica/internal/parcela"
	"github.com/ClinicaLumi/api-clinica/internal/procedimento"
	"github.com/ClinicaLumi/api-clinica/internal/relatorio"
	"github.com/ClinicaLumi/api-clinica/internal/usuario"
	"github.com/ClinicaLumi/api-clinica/internal/utils/db"

	"github.com/ClinicaLumi/api-clinica/internal/auth"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&paciente.Paciente{},
		&procedimento.Procedimento{},
		&material.Material{},
		&movimentoestoque.MovimentoEstoque{},
		&atendimento.Atendimento{},
		&parcela.Parcela{},
		&despesa.Despesa{},
		&meta.Meta{},
	); err != nil {
		log.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	if err := usuario.SeedAdmin(database); err != nil {
		log.Fatal("erro ao criar usuário administrador", zap.Error(err))
	}

	liquidacaoAtomica := os.Getenv("LIQUIDACAO_ATOMICA") == "true"

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	pacienteHandler := paciente.NewHandler(database)
	procedimentoHandler := procedimento.NewHandler(database)
	materialHandler := material.NewHandler(database)
	movimentoHandler := movimentoestoque.NewHandler(database)
	atendimentoHandler := atendimento.NewHandler(database, logger.Named(log, "liquidacao"), liquidacaoAtomica)
	parcelaHandler := parcela.NewHandler(database)
	despesaHandler := despesa.NewHandler(database)
	metaHandler := meta.NewHandler(database)
	relatorioHandler := relatorio.NewHandler(database)

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de pacientes
	api.HandleFunc("/pacientes", pacienteHandler.CriarPaciente).Methods("POST")
	api.HandleFunc("/pacientes", pacienteHandler.ListarPacientes).Methods("GET")
	api.HandleFunc("/pacientes/{id}", pacienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/pacientes/{id}", pacienteHandler.AtualizarPaciente).Methods("PUT")
	api.HandleFunc("/pacientes/{id}", pacienteHandler.DeletarPaciente).Methods("DELETE")

	// Rotas de procedimentos
	api.HandleFunc("/procedimentos", procedimentoHandler.CriarProcedimento).Methods("POST")
	api.HandleFunc("/procedimentos", procedimentoHandler.ListarProcedimentos).Methods("GET")
	api.HandleFunc("/procedimentos/{id}", procedimentoHandler.AtualizarProcedimento).Methods("PUT")
	api.HandleFunc("/procedimentos/{id}", procedimentoHandler.DeletarProcedimento).Methods("DELETE")

	// Rotas de materiais e estoque
	api.HandleFunc("/materiais", materialHandler.CriarMaterial).Methods("POST")
	api.HandleFunc("/materiais", materialHandler.ListarMateriais).Methods("GET")
	api.HandleFunc("/materiais/{id}", materialHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/materiais/{id}", materialHandler.AtualizarMaterial).Methods("PUT")
	api.HandleFunc("/materiais/{id}", materialHandler.DeletarMaterial).Methods("DELETE")
	api.HandleFunc("/materiais/{id}/movimentos", movimentoHandler.ListarPorMaterial).Methods("GET")
	api.HandleFunc("/movimentos-estoque", movimentoHandler.RegistrarMovimento).Methods("POST")
	api.HandleFunc("/movimentos-estoque", movimentoHandler.ListarMovimentos).Methods("GET")

	// Rotas de atendimentos
	api.HandleFunc("/atendimentos", atendimentoHandler.CriarAtendimento).Methods("POST")
	api.HandleFunc("/atendimentos", atendimentoHandler.ListarAtendimentos).Methods("GET")
	api.HandleFunc("/atendimentos/resumo", atendimentoHandler.CalcularResumoPreview).Methods("POST")
	api.HandleFunc("/atendimentos/{id}", atendimentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/atendimentos/{id}", atendimentoHandler.AtualizarAtendimento).Methods("PUT")
	api.HandleFunc("/atendimentos/{id}", atendimentoHandler.DeletarAtendimento).Methods("DELETE")
	api.HandleFunc("/atendimentos/{id}/parcelas", parcelaHandler.ListarPorAtendimento).Methods("GET")

	// Rotas de parcelas e despesas
	api.HandleFunc("/parcelas", parcelaHandler.ListarParcelas).Methods("GET")
	api.HandleFunc("/parcelas/{id}/recebimento", parcelaHandler.AlternarRecebimento).Methods("PATCH")
	api.HandleFunc("/despesas", despesaHandler.CriarDespesa).Methods("POST")
	api.HandleFunc("/despesas", despesaHandler.ListarDespesas).Methods("GET")
	api.HandleFunc("/despesas/{id}/pagamento", despesaHandler.AlternarPagamento).Methods("PATCH")
	api.HandleFunc("/despesas/{id}", despesaHandler.DeletarDespesa).Methods("DELETE")

	// Rotas de metas
	api.HandleFunc("/metas", metaHandler.CriarMeta).Methods("POST")
	api.HandleFunc("/metas", metaHandler.ListarMetas).Methods("GET")
	api.HandleFunc("/metas/{id}", metaHandler.DeletarMeta).Methods("DELETE")

	// Rotas de leitura (dashboard e relatórios)
	api.HandleFunc("/dashboard", relatorioHandler.Dashboard).Methods("GET")
	api.HandleFunc("/financeiro/resumo", relatorioHandler.Financeiro).Methods("GET")
	api.HandleFunc("/relatorios", relatorioHandler.Relatorios).Methods("GET")

	// Job diário de alerta de estoque mínimo
	notificador := notificacao.NewNotificador(os.Getenv("ESTOQUE_WEBHOOK_URL"), logger.Named(log, "notificacao"))
	verificador := notificacao.NewVerificadorEstoque(database, notificador, logger.Named(log, "notificacao"))
	c := cron.New()
	if _, err := c.AddFunc("0 8 * * *", verificador.Executar); err != nil {
		log.Fatal("erro ao agendar verificação de estoque", zap.Error(err))
	}
	c.Start()
	defer c.Stop()

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	porta := os.Getenv("APP_PORT")
	if porta == "" {
		porta = "8080"
	}

	log.Info("servidor rodando", zap.String("porta", porta))
	if err := http.ListenAndServe(":"+porta, handler); err != nil {
		log.Fatal("erro no servidor HTTP", zap.Error(err))
	}
}
