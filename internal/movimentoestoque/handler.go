package movimentoestoque

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ClinicaLumi/api-clinica/internal/material"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas da tela de movimentação manual de estoque.
type Handler struct {
	DB   *gorm.DB
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db)}
}

// DTO usado no POST /movimentos-estoque
type MovimentoDTO struct {
	MaterialID uint    `json:"materialId"`
	Tipo       string  `json:"tipo"`
	Quantidade float64 `json:"quantidade"`
	Motivo     string  `json:"motivo"`
	Data       string  `json:"data"` // "2006-01-02"; vazio assume hoje
}

// RegistrarMovimento trata POST /movimentos-estoque.
// Grava a linha do histórico e o novo saldo do material na mesma transação.
func (h *Handler) RegistrarMovimento(w http.ResponseWriter, r *http.Request) {
	var dto MovimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Tipo != TipoEntrada && dto.Tipo != TipoSaida && dto.Tipo != TipoAjuste {
		http.Error(w, "Tipo inválido. Use 'entrada', 'saida' ou 'ajuste'.", http.StatusBadRequest)
		return
	}

	data := time.Now()
	if dto.Data != "" {
		if t, err := time.Parse("2006-01-02", dto.Data); err == nil {
			data = t
		}
	}

	matRepo := material.NewRepository(h.DB)
	mat, err := matRepo.BuscarPorID(dto.MaterialID)
	if err != nil {
		http.Error(w, "Material não encontrado", http.StatusNotFound)
		return
	}

	anterior := mat.QuantidadeEstoque
	novo := CalcularEstoqueNovo(dto.Tipo, anterior, dto.Quantidade)

	mov := &MovimentoEstoque{
		MaterialID:      mat.ID,
		MaterialNome:    mat.Nome,
		Tipo:            dto.Tipo,
		Quantidade:      dto.Quantidade,
		EstoqueAnterior: anterior,
		EstoqueNovo:     novo,
		CustoUnitario:   mat.CustoUnitario,
		CustoTotal:      mat.CustoUnitario * dto.Quantidade,
		Motivo:          dto.Motivo,
		Data:            data,
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.WithDB(tx).Criar(mov); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao registrar movimento", http.StatusInternalServerError)
		return
	}

	if err := matRepo.WithDB(tx).AtualizarEstoque(mat.ID, novo); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao atualizar estoque do material", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(mov)
}

// ListarMovimentos trata GET /movimentos-estoque
func (h *Handler) ListarMovimentos(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar movimentações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lista)
}

// ListarPorMaterial trata GET /materiais/{id}/movimentos
func (h *Handler) ListarPorMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	lista, err := h.Repo.ListarPorMaterial(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar movimentações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lista)
}
