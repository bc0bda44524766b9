package dto

// AtualizarPerfilRequest campos editáveis do perfil do usuário da sessão.
type AtualizarPerfilRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// AvatarRequest imagem do avatar como data URL, cacheada localmente
// (sem sincronização com os serviços).
type AvatarRequest struct {
	DataURL string `json:"dataUrl"`
}

// AvatarResponse data URL cacheado do avatar, vazio quando não há.
type AvatarResponse struct {
	DataURL string `json:"dataUrl"`
}
