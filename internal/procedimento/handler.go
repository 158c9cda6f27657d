package procedimento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de procedimentos.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// CriarProcedimento trata POST /procedimentos
func (h *Handler) CriarProcedimento(w http.ResponseWriter, r *http.Request) {
	var p Procedimento
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if p.Nome == "" {
		http.Error(w, "Nome é obrigatório", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Salvar(&p); err != nil {
		http.Error(w, "Erro ao salvar procedimento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// ListarProcedimentos trata GET /procedimentos
func (h *Handler) ListarProcedimentos(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar procedimentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lista)
}

// AtualizarProcedimento trata PUT /procedimentos/{id}
func (h *Handler) AtualizarProcedimento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Procedimento não encontrado", http.StatusNotFound)
		return
	}

	var payload Procedimento
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Nome = payload.Nome
	existente.Categoria = payload.Categoria
	existente.PrecoPadrao = payload.PrecoPadrao
	existente.DuracaoMinutos = payload.DuracaoMinutos

	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "Erro ao atualizar procedimento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DeletarProcedimento trata DELETE /procedimentos/{id}
func (h *Handler) DeletarProcedimento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Remover(uint(id)); err != nil {
		http.Error(w, "Erro ao remover procedimento", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
