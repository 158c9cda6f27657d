package utils

import "testing"

func TestHashECheckSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	if err != nil {
		t.Fatalf("HashSenha: %v", err)
	}
	if hash == "segredo123" {
		t.Fatal("hash não pode ser a senha em texto")
	}

	if !CheckSenha(hash, "segredo123") {
		t.Error("senha correta deveria bater com o hash")
	}
	if CheckSenha(hash, "errada") {
		t.Error("senha errada não deveria bater com o hash")
	}
}
