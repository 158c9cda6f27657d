package despesa

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// DTO usado no POST /despesas
type DespesaDTO struct {
	Descricao      string  `json:"descricao" validate:"required"`
	Categoria      string  `json:"categoria"`
	Valor          float64 `json:"valor" validate:"gte=0"`
	DataVencimento string  `json:"dataVencimento" validate:"required,datetime=2006-01-02"`
}

// Handler gerencia as rotas de despesas.
type Handler struct {
	Repo     *Repository
	validate *validator.Validate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db), validate: validator.New()}
}

// CriarDespesa trata POST /despesas
func (h *Handler) CriarDespesa(w http.ResponseWriter, r *http.Request) {
	var dto DespesaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Campos obrigatórios ausentes ou inválidos", http.StatusBadRequest)
		return
	}

	vencimento, _ := time.Parse("2006-01-02", dto.DataVencimento)
	d := Despesa{
		Descricao:      dto.Descricao,
		Categoria:      dto.Categoria,
		Valor:          dto.Valor,
		DataVencimento: vencimento,
	}

	if err := h.Repo.Salvar(&d); err != nil {
		http.Error(w, "Erro ao salvar despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(d)
}

// ListarDespesas trata GET /despesas (?inicio=&fim= opcional)
func (h *Handler) ListarDespesas(w http.ResponseWriter, r *http.Request) {
	inicioStr := r.URL.Query().Get("inicio")
	fimStr := r.URL.Query().Get("fim")

	var (
		despesas []Despesa
		err      error
	)
	if inicioStr != "" && fimStr != "" {
		inicio, errI := time.Parse("2006-01-02", inicioStr)
		fim, errF := time.Parse("2006-01-02", fimStr)
		if errI != nil || errF != nil {
			http.Error(w, "Período inválido", http.StatusBadRequest)
			return
		}
		despesas, err = h.Repo.ListarPorPeriodo(inicio, fim)
	} else {
		despesas, err = h.Repo.ListarTodas()
	}
	if err != nil {
		http.Error(w, "Erro ao buscar despesas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(despesas)
}

// AlternarPagamento trata PATCH /despesas/{id}/pagamento.
// Inverte o estado de pagamento; ao marcar, registra a data de hoje.
func (h *Handler) AlternarPagamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da despesa inválido", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Despesa não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repo.AtualizarPagamento(uint(id), !atual.Paga, time.Now()); err != nil {
		http.Error(w, "Erro ao atualizar pagamento", http.StatusInternalServerError)
		return
	}

	d, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar despesa atualizada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// DeletarDespesa trata DELETE /despesas/{id}
func (h *Handler) DeletarDespesa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da despesa inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Remover(uint(id)); err != nil {
		http.Error(w, "Erro ao remover despesa", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
