package usuario

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/ClinicaLumi/api-clinica/internal/auth"
	"github.com/ClinicaLumi/api-clinica/internal/utils"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB   *gorm.DB
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db)}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repo.BuscarPorEmail(req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.CheckSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// SeedAdmin garante o usuário administrador inicial a partir do ambiente.
// Não sobrescreve nada se já existir qualquer usuário cadastrado.
func SeedAdmin(db *gorm.DB) error {
	repo := NewRepository(db)
	n, err := repo.Contar()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	senha := os.Getenv("ADMIN_SENHA")
	if email == "" || senha == "" {
		return nil
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		return err
	}
	return repo.Salvar(&Usuario{Nome: "Administrador", Email: email, Senha: hash})
}
