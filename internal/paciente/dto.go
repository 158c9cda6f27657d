// internal/paciente/dto.go
package paciente

import "time"

// PacienteDTO é o payload de criação/edição vindo do painel.
// Datas chegam no formato "2006-01-02".
type PacienteDTO struct {
	NomeCompleto   string `json:"nomeCompleto"`
	Telefone       string `json:"telefone"`
	Email          string `json:"email"`
	DataNascimento string `json:"dataNascimento"`
	Genero         string `json:"genero"`
	CPF            string `json:"cpf"`
	Origem         string `json:"origem"`
	Observacoes    string `json:"observacoes"`
	ProximoRetorno string `json:"proximoRetorno"`
}

func parseData(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// AplicarEm copia os campos do DTO para o modelo.
func (d *PacienteDTO) AplicarEm(p *Paciente) {
	p.NomeCompleto = d.NomeCompleto
	p.Telefone = d.Telefone
	p.Email = d.Email
	p.DataNascimento = parseData(d.DataNascimento)
	p.Genero = d.Genero
	p.CPF = d.CPF
	p.Origem = d.Origem
	p.Observacoes = d.Observacoes
	p.ProximoRetorno = parseData(d.ProximoRetorno)
}
