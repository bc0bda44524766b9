package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/relatorio"
)

// RelatoriosHandler maneja os relatórios administrativos.
type RelatoriosHandler struct {
	uc *relatorio.Servico
}

// NewRelatoriosHandler constrói o handler.
func NewRelatoriosHandler(uc *relatorio.Servico) *RelatoriosHandler {
	return &RelatoriosHandler{uc: uc}
}

// Ver godoc
// @Summary      Relatório tabular pelo nome
// @Tags         relatorios
// @Produce      json
// @Param        nome  path  string  true  "Nome do relatório"
// @Success      200  {object}  dto.RelatorioDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /relatorios/{nome} [get]
func (h *RelatoriosHandler) Ver(c *fiber.Ctx) error {
	rel, err := h.uc.Obter(c.UserContext(), c.Params("nome"))
	if err != nil {
		return respostaUpstream(c, err, "relatório não encontrado")
	}
	return c.JSON(rel)
}

// PDF godoc
// @Summary      Exportar relatório em PDF
// @Tags         relatorios
// @Produce      application/pdf
// @Param        nome  path  string  true  "Nome do relatório"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /relatorios/{nome}/pdf [get]
func (h *RelatoriosHandler) PDF(c *fiber.Ctx) error {
	nome := c.Params("nome")
	b, err := h.uc.GerarPDF(c.UserContext(), nome)
	if err != nil {
		return respostaUpstream(c, err, "relatório não encontrado")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nome+".pdf"))
	return c.Send(b)
}
