package paciente

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de pacientes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// CriarPaciente trata POST /pacientes
func (h *Handler) CriarPaciente(w http.ResponseWriter, r *http.Request) {
	var dto PacienteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.NomeCompleto == "" {
		http.Error(w, "Nome completo é obrigatório", http.StatusBadRequest)
		return
	}

	var p Paciente
	dto.AplicarEm(&p)
	if err := h.Repo.Salvar(&p); err != nil {
		http.Error(w, "Erro ao salvar paciente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// ListarPacientes trata GET /pacientes?busca=
func (h *Handler) ListarPacientes(w http.ResponseWriter, r *http.Request) {
	pacientes, err := h.Repo.ListarTodos(r.URL.Query().Get("busca"))
	if err != nil {
		http.Error(w, "Erro ao buscar pacientes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pacientes)
}

// BuscarPorID trata GET /pacientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Paciente não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// AtualizarPaciente trata PUT /pacientes/{id}
func (h *Handler) AtualizarPaciente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Paciente não encontrado", http.StatusNotFound)
		return
	}

	var dto PacienteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	dto.AplicarEm(p)
	if err := h.Repo.Atualizar(p); err != nil {
		http.Error(w, "Erro ao atualizar paciente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// DeletarPaciente trata DELETE /pacientes/{id}
func (h *Handler) DeletarPaciente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Remover(uint(id)); err != nil {
		http.Error(w, "Erro ao remover paciente", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
