package http

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/sessao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/papel"
)

// ArmazemAvatar cache local do avatar, fora do ciclo dos serviços.
type ArmazemAvatar interface {
	AvatarDe(usuarioID string) (string, error)
	SalvarAvatar(usuarioID, dataURL string) error
}

// PerfilHandler maneja a página de perfil do usuário da sessão.
type PerfilHandler struct {
	sess    *sessao.Servico
	http    sessao.ClienteHTTP
	avatars ArmazemAvatar
}

// NewPerfilHandler constrói o handler.
func NewPerfilHandler(sess *sessao.Servico, http sessao.ClienteHTTP, avatars ArmazemAvatar) *PerfilHandler {
	return &PerfilHandler{sess: sess, http: http, avatars: avatars}
}

// recursoPerfil resolve o recurso do serviço de usuários onde o perfil do
// papel vive.
func recursoPerfil(p papel.Papel) string {
	switch p {
	case papel.Artista:
		return "artista"
	case papel.CasaShow:
		return "casaDeShow"
	case papel.Administrador:
		return "adm"
	default:
		return "cliente"
	}
}

// Ver godoc
// @Summary      Perfil do usuário da sessão
// @Tags         perfil
// @Produce      json
// @Success      200  {object}  dto.UsuarioResponse
// @Router       /perfil [get]
func (h *PerfilHandler) Ver(c *fiber.Ctx) error {
	u := GetUsuario(c)
	return c.JSON(dto.ToUsuarioResponse(u))
}

// Atualizar godoc
// @Summary      Editar nome e email do perfil
// @Tags         perfil
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AtualizarPerfilRequest  true  "Campos editáveis"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /perfil [put]
func (h *PerfilHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarPerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	in.Nome = strings.TrimSpace(in.Nome)
	in.Email = strings.TrimSpace(in.Email)
	if in.Nome == "" && in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nada para atualizar"})
	}

	u := GetUsuario(c)
	caminho := "/" + recursoPerfil(GetPapel(c)) + "/" + u.ID
	corpo := map[string]string{}
	if in.Nome != "" {
		corpo["nome"] = in.Nome
	}
	if in.Email != "" {
		corpo["email"] = in.Email
	}
	if err := h.http.Fazer(c.UserContext(), http.MethodPatch, caminho, corpo, nil); err != nil {
		return respostaUpstream(c, err, "perfil não encontrado")
	}

	atualizado, err := h.sess.AtualizarUsuario(in.Nome, in.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToUsuarioResponse(atualizado))
}

// Avatar godoc
// @Summary      Avatar cacheado do usuário
// @Tags         perfil
// @Produce      json
// @Success      200  {object}  dto.AvatarResponse
// @Router       /perfil/avatar [get]
func (h *PerfilHandler) Avatar(c *fiber.Ctx) error {
	u := GetUsuario(c)
	dataURL, err := h.avatars.AvatarDe(u.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AvatarResponse{DataURL: dataURL})
}

// SalvarAvatar godoc
// @Summary      Trocar o avatar cacheado
// @Tags         perfil
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AvatarRequest  true  "Imagem como data URL"
// @Success      200   {object}  dto.AvatarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /perfil/avatar [put]
func (h *PerfilHandler) SalvarAvatar(c *fiber.Ctx) error {
	var in dto.AvatarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if !strings.HasPrefix(in.DataURL, "data:image/") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "avatar deve ser um data URL de imagem"})
	}
	u := GetUsuario(c)
	if err := h.avatars.SalvarAvatar(u.ID, in.DataURL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AvatarResponse{DataURL: in.DataURL})
}
