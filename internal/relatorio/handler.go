package relatorio

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Handler gerencia as rotas de leitura do dashboard e dos relatórios.
type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

func mesAnoDaQuery(r *http.Request) (int, int, bool) {
	agora := time.Now()
	mes, ano := int(agora.Month()), agora.Year()
	if s := r.URL.Query().Get("mes"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 12 {
			return 0, 0, false
		}
		mes = v
	}
	if s := r.URL.Query().Get("ano"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, false
		}
		ano = v
	}
	return mes, ano, true
}

// Dashboard trata GET /dashboard?mes=&ano= (mês corrente se omitido).
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	mes, ano, ok := mesAnoDaQuery(r)
	if !ok {
		http.Error(w, "Mês ou ano inválido", http.StatusBadRequest)
		return
	}

	d, err := h.Service.DashboardMensal(mes, ano)
	if err != nil {
		http.Error(w, "Erro ao montar dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// Financeiro trata GET /financeiro/resumo?mes=&ano=.
// Com apenas ?ano= o período cobre o ano inteiro.
func (h *Handler) Financeiro(w http.ResponseWriter, r *http.Request) {
	mes, ano, ok := mesAnoDaQuery(r)
	if !ok {
		http.Error(w, "Mês ou ano inválido", http.StatusBadRequest)
		return
	}

	var inicio, fim time.Time
	if r.URL.Query().Get("mes") == "" && r.URL.Query().Get("ano") != "" {
		inicio = time.Date(ano, time.January, 1, 0, 0, 0, 0, time.UTC)
		fim = inicio.AddDate(1, 0, 0).Add(-time.Second)
	} else {
		inicio = time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
		fim = inicio.AddDate(0, 1, 0).Add(-time.Second)
	}

	resumo, err := h.Service.Financeiro(inicio, fim, ano)
	if err != nil {
		http.Error(w, "Erro ao montar resumo financeiro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}

// Relatorios trata GET /relatorios?inicio=2006-01-02&fim=2006-01-02.
func (h *Handler) Relatorios(w http.ResponseWriter, r *http.Request) {
	inicio, errI := time.Parse("2006-01-02", r.URL.Query().Get("inicio"))
	fim, errF := time.Parse("2006-01-02", r.URL.Query().Get("fim"))
	if errI != nil || errF != nil {
		http.Error(w, "Período inválido", http.StatusBadRequest)
		return
	}
	// inclui o dia final inteiro
	fim = fim.Add(24*time.Hour - time.Second)

	rel, err := h.Service.Periodo(inicio, fim)
	if err != nil {
		http.Error(w, "Erro ao montar relatório", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rel)
}
