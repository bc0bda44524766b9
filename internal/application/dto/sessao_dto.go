package dto

import "github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"

// LoginRequest credenciais enviadas ao serviço de usuários.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse sessão aberta: token + usuário resolvido.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// UsuarioResponse usuário da sessão, com o papel já canonicalizado.
type UsuarioResponse struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Papel          string `json:"papel"`
	CaminhoInicial string `json:"caminhoInicial"`
}

// ToUsuarioResponse converte a entidade para o DTO de resposta.
func ToUsuarioResponse(u entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:             u.ID,
		Nome:           u.Nome,
		Email:          u.Email,
		Papel:          string(u.Papel),
		CaminhoInicial: u.Papel.CaminhoInicial(),
	}
}
