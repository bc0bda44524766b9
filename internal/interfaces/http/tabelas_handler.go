package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/paginacao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/tabelas"
)

// TabelasHandler maneja a administração bruta dos cadastros. Só o
// administrador chega aqui (a guarda barra os demais papéis).
type TabelasHandler struct {
	uc *tabelas.Servico
}

// NewTabelasHandler constrói o handler.
func NewTabelasHandler(uc *tabelas.Servico) *TabelasHandler {
	return &TabelasHandler{uc: uc}
}

// Catalogo godoc
// @Summary      Catálogo de tabelas administráveis
// @Tags         tabelas
// @Produce      json
// @Success      200  {array}  tabelas.Recurso
// @Router       /tabelas [get]
func (h *TabelasHandler) Catalogo(c *fiber.Ctx) error {
	return c.JSON(h.uc.Recursos())
}

// Listar godoc
// @Summary      Listagem paginada de uma tabela, com filtro local
// @Tags         tabelas
// @Produce      json
// @Param        recurso   path   string  true   "Tabela"
// @Param        page      query  int     false  "Página"   default(1)
// @Param        pageSize  query  int     false  "Tamanho"  default(10)
// @Param        search    query  string  false  "Busca livre"
// @Param        sort      query  string  false  "campo:asc|desc"
// @Success      200  {object}  dto.PageResponse[tabelas.Registro]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tabelas/{recurso} [get]
func (h *TabelasHandler) Listar(c *fiber.Ctx) error {
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de página inválidos"})
	}
	req.DefaultPage()

	e, err := h.uc.Listar(c.UserContext(), c.Params("recurso"), paginacao.Consulta{
		Pagina:    req.Page,
		TamPagina: req.PageSize,
		Busca:     req.Search,
		Ordenacao: req.Sort,
	})
	if err != nil {
		return respostaUpstream(c, err, "tabela desconhecida")
	}
	itens := e.Itens
	if itens == nil {
		itens = []tabelas.Registro{}
	}
	return c.JSON(dto.PageResponse[tabelas.Registro]{
		Items:    itens,
		Total:    e.Total,
		Page:     e.Pagina,
		PageSize: e.TamPagina,
	})
}

// Buscar godoc
// @Summary      Registro de uma tabela pelo id
// @Tags         tabelas
// @Produce      json
// @Param        recurso  path  string  true  "Tabela"
// @Param        id       path  string  true  "ID do registro"
// @Success      200  {object}  tabelas.Registro
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tabelas/{recurso}/{id} [get]
func (h *TabelasHandler) Buscar(c *fiber.Ctx) error {
	reg, err := h.uc.Buscar(c.UserContext(), c.Params("recurso"), c.Params("id"))
	if err != nil {
		return respostaUpstream(c, err, "registro não encontrado")
	}
	return c.JSON(reg)
}

// Criar godoc
// @Summary      Inserir registro numa tabela
// @Tags         tabelas
// @Accept       json
// @Produce      json
// @Param        recurso  path  string           true  "Tabela"
// @Param        body     body  tabelas.Registro  true  "Registro"
// @Success      201  {object}  tabelas.Registro
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /tabelas/{recurso} [post]
func (h *TabelasHandler) Criar(c *fiber.Ctx) error {
	var reg tabelas.Registro
	if err := c.BodyParser(&reg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	criado, err := h.uc.Criar(c.UserContext(), c.Params("recurso"), reg)
	if err != nil {
		return respostaUpstream(c, err, "tabela desconhecida")
	}
	return c.Status(fiber.StatusCreated).JSON(criado)
}

// Atualizar godoc
// @Summary      Substituir registro de uma tabela
// @Tags         tabelas
// @Accept       json
// @Produce      json
// @Param        recurso  path  string           true  "Tabela"
// @Param        id       path  string           true  "ID do registro"
// @Param        body     body  tabelas.Registro  true  "Registro"
// @Success      200  {object}  tabelas.Registro
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tabelas/{recurso}/{id} [put]
func (h *TabelasHandler) Atualizar(c *fiber.Ctx) error {
	var reg tabelas.Registro
	if err := c.BodyParser(&reg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	atualizado, err := h.uc.Atualizar(c.UserContext(), c.Params("recurso"), c.Params("id"), reg)
	if err != nil {
		return respostaUpstream(c, err, "registro não encontrado")
	}
	return c.JSON(atualizado)
}

// Excluir godoc
// @Summary      Remover registro de uma tabela
// @Tags         tabelas
// @Param        recurso  path  string  true  "Tabela"
// @Param        id       path  string  true  "ID do registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tabelas/{recurso}/{id} [delete]
func (h *TabelasHandler) Excluir(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.UserContext(), c.Params("recurso"), c.Params("id")); err != nil {
		return respostaUpstream(c, err, "registro não encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
