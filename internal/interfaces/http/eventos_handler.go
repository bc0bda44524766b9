package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/eventos"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/paginacao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
)

// EventosHandler maneja a vitrine de eventos.
type EventosHandler struct {
	uc *eventos.Servico
}

// NewEventosHandler constrói o handler.
func NewEventosHandler(uc *eventos.Servico) *EventosHandler {
	return &EventosHandler{uc: uc}
}

// Feed godoc
// @Summary      Vitrine paginada de eventos
// @Tags         eventos
// @Produce      json
// @Param        page      query  int     false  "Página"        default(1)
// @Param        pageSize  query  int     false  "Tamanho"       default(10)
// @Param        search    query  string  false  "Busca livre"
// @Param        sort      query  string  false  "campo:asc|desc"
// @Success      200  {object}  dto.PageResponse[entity.Evento]
// @Failure      502  {object}  dto.ErrorResponse
// @Router       / [get]
func (h *EventosHandler) Feed(c *fiber.Ctx) error {
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de página inválidos"})
	}
	req.DefaultPage()

	e := h.uc.Feed(c.UserContext(), paginacao.Consulta{
		Pagina:    req.Page,
		TamPagina: req.PageSize,
		Busca:     req.Search,
		Ordenacao: req.Sort,
	})
	if e.Erro != "" && len(e.Itens) == 0 {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: e.Erro})
	}
	itens := e.Itens
	if itens == nil {
		itens = []entity.Evento{}
	}
	return c.JSON(dto.PageResponse[entity.Evento]{
		Items:    itens,
		Total:    e.Total,
		Page:     e.Pagina,
		PageSize: e.TamPagina,
	})
}

// Detalhe godoc
// @Summary      Detalhe de um evento com casa e elenco
// @Tags         eventos
// @Produce      json
// @Param        id   path  string  true  "ID do evento"
// @Success      200  {object}  eventos.Detalhe
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /evento/{id} [get]
func (h *EventosHandler) Detalhe(c *fiber.Ctx) error {
	id := c.Params("id")
	d, err := h.uc.Buscar(c.UserContext(), id)
	if err != nil {
		return respostaUpstream(c, err, "evento não encontrado")
	}
	return c.JSON(d)
}
