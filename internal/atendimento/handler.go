package atendimento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ClinicaLumi/api-clinica/internal/erros"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

/* ============================== Handler ============================== */

// Handler gerencia as rotas de atendimentos.
type Handler struct {
	Repo       *Repository
	Liquidador *Liquidador
	validate   *validator.Validate
}

func NewHandler(db *gorm.DB, log *zap.Logger, liquidacaoAtomica bool) *Handler {
	return &Handler{
		Repo:       NewRepository(db),
		Liquidador: NewLiquidador(db, log, liquidacaoAtomica),
		validate:   validator.New(),
	}
}

/* ============================== Endpoints ============================== */

// CriarAtendimento trata POST /atendimentos: valida o formulário,
// recalcula os totais e liquida (atendimento + estoque + parcelas).
func (h *Handler) CriarAtendimento(w http.ResponseWriter, r *http.Request) {
	var dto AtendimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Campos obrigatórios ausentes ou inválidos", http.StatusBadRequest)
		return
	}
	if dto.MetodoPagamento != "" && !MetodoValido(dto.MetodoPagamento) {
		http.Error(w, "Método de pagamento inválido", http.StatusBadRequest)
		return
	}

	atd, err := dto.ParaModelo()
	if err != nil {
		http.Error(w, "Data inválida", http.StatusBadRequest)
		return
	}

	criado, err := h.Liquidador.Liquidar(atd)
	if err != nil {
		http.Error(w, "Erro ao registrar atendimento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(criado)
}

// CalcularResumoPreview trata POST /atendimentos/resumo: devolve os totais
// derivados do formulário em andamento, sem persistir nada.
func (h *Handler) CalcularResumoPreview(w http.ResponseWriter, r *http.Request) {
	var dto AtendimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	resumo := CalcularResumo(dto.Procedimentos, dto.Materiais, dto.MetodoPagamento, dto.Desconto, dto.Parcelas)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}

// ListarAtendimentos trata GET /atendimentos.
// Aceita ?mes=1..12&ano=2006 para filtrar pelo mês.
func (h *Handler) ListarAtendimentos(w http.ResponseWriter, r *http.Request) {
	mesStr := r.URL.Query().Get("mes")
	anoStr := r.URL.Query().Get("ano")

	var (
		lista []Atendimento
		err   error
	)
	if mesStr != "" && anoStr != "" {
		mes, errM := strconv.Atoi(mesStr)
		ano, errA := strconv.Atoi(anoStr)
		if errM != nil || errA != nil || mes < 1 || mes > 12 {
			http.Error(w, "Mês ou ano inválido", http.StatusBadRequest)
			return
		}
		inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
		fim := inicio.AddDate(0, 1, 0).Add(-time.Second)
		lista, err = h.Repo.ListarPorPeriodo(inicio, fim)
	} else {
		lista, err = h.Repo.ListarTodos()
	}
	if err != nil {
		http.Error(w, "Erro ao buscar atendimentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lista)
}

// BuscarPorID trata GET /atendimentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	atd, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Atendimento não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atd)
}

// AtualizarAtendimento trata PUT /atendimentos/{id}.
// A edição recalcula os totais mas nunca reexecuta baixas de estoque nem
// geração de parcelas; essas consequências pertencem só ao salvamento
// original.
func (h *Handler) AtualizarAtendimento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Atendimento não encontrado", http.StatusNotFound)
		return
	}

	var dto AtendimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, "Campos obrigatórios ausentes ou inválidos", http.StatusBadRequest)
		return
	}

	atualizado, err := dto.ParaModelo()
	if err != nil {
		http.Error(w, "Data inválida", http.StatusBadRequest)
		return
	}
	atualizado.ID = existente.ID
	atualizado.CreatedAt = existente.CreatedAt

	if err := h.Repo.Atualizar(atualizado); err != nil {
		http.Error(w, "Erro ao atualizar atendimento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizado)
}

// DeletarAtendimento trata DELETE /atendimentos/{id}
func (h *Handler) DeletarAtendimento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Remover(uint(id)); err != nil {
		if erros.NaoEncontrado(err) {
			http.Error(w, "Atendimento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao remover atendimento", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
