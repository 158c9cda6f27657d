package meta

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de metas.
type Handler struct {
	Repo    *Repository
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db), Service: NewService(db)}
}

// CriarMeta trata POST /metas
func (h *Handler) CriarMeta(w http.ResponseWriter, r *http.Request) {
	var m Meta
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if m.Tipo != TipoFaturamento && m.Tipo != TipoPacientes {
		http.Error(w, "Tipo inválido. Use 'Faturamento' ou 'Pacientes'.", http.StatusBadRequest)
		return
	}
	if m.Mes < 1 || m.Mes > 12 {
		http.Error(w, "Mês inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Salvar(&m); err != nil {
		http.Error(w, "Erro ao salvar meta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// ListarMetas trata GET /metas?ano=2006 (ano corrente se omitido),
// já com o progresso calculado de cada meta.
func (h *Handler) ListarMetas(w http.ResponseWriter, r *http.Request) {
	ano := time.Now().Year()
	if s := r.URL.Query().Get("ano"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "Ano inválido", http.StatusBadRequest)
			return
		}
		ano = v
	}

	metas, err := h.Repo.ListarPorAno(ano)
	if err != nil {
		http.Error(w, "Erro ao buscar metas", http.StatusInternalServerError)
		return
	}

	progressos := make([]Progresso, 0, len(metas))
	for _, m := range metas {
		p, err := h.Service.CalcularProgresso(m)
		if err != nil {
			http.Error(w, "Erro ao calcular progresso", http.StatusInternalServerError)
			return
		}
		progressos = append(progressos, p)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(progressos)
}

// DeletarMeta trata DELETE /metas/{id}
func (h *Handler) DeletarMeta(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Remover(uint(id)); err != nil {
		http.Error(w, "Erro ao remover meta", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
