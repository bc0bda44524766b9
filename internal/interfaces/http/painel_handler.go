package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/painel"
)

// PainelHandler maneja os dashboards de cada papel. A autorização já foi
// resolvida pela guarda: quem chega aqui está no caminho do próprio papel.
type PainelHandler struct {
	uc *painel.Servico
}

// NewPainelHandler constrói o handler.
func NewPainelHandler(uc *painel.Servico) *PainelHandler {
	return &PainelHandler{uc: uc}
}

// Artista godoc
// @Summary      Dashboard do artista
// @Tags         painel
// @Produce      json
// @Success      200  {object}  dto.ResumoPainelDTO
// @Router       /dashboard-artista [get]
func (h *PainelHandler) Artista(c *fiber.Ctx) error {
	u := GetUsuario(c)
	return c.JSON(h.uc.ResumoArtista(c.UserContext(), u.ID))
}

// Casa godoc
// @Summary      Dashboard da casa de show
// @Tags         painel
// @Produce      json
// @Success      200  {object}  dto.ResumoPainelDTO
// @Router       /dashboard-casa [get]
func (h *PainelHandler) Casa(c *fiber.Ctx) error {
	u := GetUsuario(c)
	return c.JSON(h.uc.ResumoCasa(c.UserContext(), u.ID))
}

// Admin godoc
// @Summary      Dashboard do administrador
// @Tags         painel
// @Produce      json
// @Success      200  {object}  dto.ResumoAdminDTO
// @Router       /dashboard-admin [get]
func (h *PainelHandler) Admin(c *fiber.Ctx) error {
	return c.JSON(h.uc.ResumoAdmin(c.UserContext()))
}
