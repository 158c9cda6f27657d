package material

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de materiais.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// CriarMaterial trata POST /materiais
func (h *Handler) CriarMaterial(w http.ResponseWriter, r *http.Request) {
	var m Material
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if m.Nome == "" {
		http.Error(w, "Nome é obrigatório", http.StatusBadRequest)
		return
	}
	if m.Unidade == "" {
		m.Unidade = "un"
	}

	if err := h.Repo.Salvar(&m); err != nil {
		http.Error(w, "Erro ao salvar material", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// ListarMateriais trata GET /materiais
func (h *Handler) ListarMateriais(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar materiais", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lista)
}

// BuscarPorID trata GET /materiais/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Material não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// AtualizarMaterial trata PUT /materiais/{id}
func (h *Handler) AtualizarMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Material não encontrado", http.StatusNotFound)
		return
	}

	var payload Material
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Nome = payload.Nome
	existente.Categoria = payload.Categoria
	existente.Unidade = payload.Unidade
	existente.CustoUnitario = payload.CustoUnitario
	existente.QuantidadeEstoque = payload.QuantidadeEstoque
	existente.EstoqueMinimo = payload.EstoqueMinimo

	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "Erro ao atualizar material", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DeletarMaterial trata DELETE /materiais/{id}
func (h *Handler) DeletarMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Remover(uint(id)); err != nil {
		http.Error(w, "Erro ao remover material", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
