package entity

import "github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/papel"

// Usuario registro do usuário autenticado, como devolvido pelo serviço de
// usuários (ou reconstruído do payload do token quando o corpo vem incompleto).
type Usuario struct {
	ID    string      `json:"id"`
	Nome  string      `json:"nome"`
	Email string      `json:"email"`
	Papel papel.Papel `json:"papel"`
}

// Vazio indica ausência de usuário (sessão inexistente ou ilegível).
func (u Usuario) Vazio() bool {
	return u.ID == "" && u.Email == ""
}
