package parcela

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de parcelas (aba "A Receber" do financeiro).
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// ListarParcelas trata GET /parcelas.
// Aceita ?inicio=2006-01-02&fim=2006-01-02 para filtrar por vencimento.
func (h *Handler) ListarParcelas(w http.ResponseWriter, r *http.Request) {
	inicioStr := r.URL.Query().Get("inicio")
	fimStr := r.URL.Query().Get("fim")

	var (
		parcelas []Parcela
		err      error
	)
	if inicioStr != "" && fimStr != "" {
		inicio, errI := time.Parse("2006-01-02", inicioStr)
		fim, errF := time.Parse("2006-01-02", fimStr)
		if errI != nil || errF != nil {
			http.Error(w, "Período inválido", http.StatusBadRequest)
			return
		}
		parcelas, err = h.Repo.ListarPorPeriodo(inicio, fim)
	} else {
		parcelas, err = h.Repo.ListarTodas()
	}
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcelas)
}

// ListarPorAtendimento trata GET /atendimentos/{id}/parcelas
func (h *Handler) ListarPorAtendimento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do atendimento inválido", http.StatusBadRequest)
		return
	}

	parcelas, err := h.Repo.ListarPorAtendimento(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcelas)
}

// AlternarRecebimento trata PATCH /parcelas/{id}/recebimento.
// Inverte o estado de recebimento; ao marcar, registra a data de hoje.
func (h *Handler) AlternarRecebimento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repo.AtualizarRecebimento(uint(id), !atual.Recebida, time.Now()); err != nil {
		http.Error(w, "Erro ao atualizar recebimento", http.StatusInternalServerError)
		return
	}

	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar parcela atualizada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}
