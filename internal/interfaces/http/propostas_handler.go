package http

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/paginacao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/propostas"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/papel"
)

// PropostasHandler maneja a caixa de propostas do artista e da casa de show.
type PropostasHandler struct {
	uc    *propostas.Servico
	http  propostas.ClienteHTTP
	cache paginacao.Cache
}

// NewPropostasHandler constrói o handler. O cache é por tupla de consulta,
// compartilhado entre as listagens.
func NewPropostasHandler(uc *propostas.Servico, http propostas.ClienteHTTP, cache paginacao.Cache) *PropostasHandler {
	return &PropostasHandler{uc: uc, http: http, cache: cache}
}

// recursoDe resolve o recurso de propostas visível para o papel da sessão.
func recursoDe(p papel.Papel) (string, bool) {
	switch p {
	case papel.Artista:
		return propostas.RecursoArtista, true
	case papel.CasaShow:
		return propostas.RecursoCasa, true
	default:
		return "", false
	}
}

// Listar godoc
// @Summary      Caixa de propostas do papel da sessão
// @Tags         propostas
// @Produce      json
// @Param        page      query  int     false  "Página"   default(1)
// @Param        pageSize  query  int     false  "Tamanho"  default(10)
// @Param        search    query  string  false  "Busca livre"
// @Success      200  {object}  dto.PageResponse[entity.Proposta]
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /propostas [get]
func (h *PropostasHandler) Listar(c *fiber.Ctx) error {
	recurso, ok := recursoDe(GetPapel(c))
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem caixa de propostas"})
	}
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de página inválidos"})
	}
	req.DefaultPage()

	prov := paginacao.NovoRemoto(h.buscador(recurso), cachePrefixado{prefixo: recurso + ":", interno: h.cache})
	prov.Consultar(c.UserContext(), paginacao.Consulta{
		Pagina:    req.Page,
		TamPagina: req.PageSize,
		Busca:     req.Search,
		Ordenacao: req.Sort,
	})
	e := prov.Estado()
	if e.Erro != "" && len(e.Itens) == 0 {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: e.Erro})
	}
	itens := e.Itens
	if itens == nil {
		itens = []entity.Proposta{}
	}
	return c.JSON(dto.PageResponse[entity.Proposta]{
		Items:    itens,
		Total:    e.Total,
		Page:     e.Pagina,
		PageSize: e.TamPagina,
	})
}

// cachePrefixado isola as chaves por recurso para a caixa do artista e a da
// casa não se misturarem no mesmo cache.
type cachePrefixado struct {
	prefixo string
	interno paginacao.Cache
}

func (p cachePrefixado) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return p.interno.Get(ctx, p.prefixo+key, dest)
}

func (p cachePrefixado) Set(ctx context.Context, key string, val interface{}, ttlSecs int) error {
	return p.interno.Set(ctx, p.prefixo+key, val, ttlSecs)
}

func (p cachePrefixado) Delete(ctx context.Context, key string) error {
	return p.interno.Delete(ctx, p.prefixo+key)
}

// buscador monta o Buscador do recurso de propostas do papel.
func (h *PropostasHandler) buscador(recurso string) paginacao.Buscador[entity.Proposta] {
	return func(ctx context.Context, cons paginacao.Consulta) (paginacao.Janela[entity.Proposta], error) {
		q := url.Values{}
		q.Set("page", strconv.Itoa(cons.Pagina))
		q.Set("pageSize", strconv.Itoa(cons.TamPagina))
		if cons.Busca != "" {
			q.Set("search", cons.Busca)
		}
		if cons.Ordenacao != "" {
			q.Set("sort", cons.Ordenacao)
		}
		var resp struct {
			Items []entity.Proposta `json:"items"`
			Total int               `json:"total"`
		}
		if err := h.http.Fazer(ctx, http.MethodGet, "/"+recurso+"?"+q.Encode(), nil, &resp); err != nil {
			return paginacao.Janela[entity.Proposta]{}, err
		}
		return paginacao.Janela[entity.Proposta]{Itens: resp.Items, Total: resp.Total}, nil
	}
}

// Criar godoc
// @Summary      Abrir proposta
// @Tags         propostas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarPropostaRequest  true  "Dados da proposta"
// @Success      201   {object}  entity.Proposta
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /propostas [post]
func (h *PropostasHandler) Criar(c *fiber.Ctx) error {
	recurso, ok := recursoDe(GetPapel(c))
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem caixa de propostas"})
	}
	var in dto.CriarPropostaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	criada, err := h.uc.Criar(c.UserContext(), recurso, in)
	if err != nil {
		return respostaUpstream(c, err, "proposta não encontrada")
	}
	h.invalidarCaixa(c, recurso)
	return c.Status(fiber.StatusCreated).JSON(criada)
}

// Decidir godoc
// @Summary      Aceitar ou recusar uma proposta
// @Tags         propostas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da proposta"
// @Param        body  body  dto.DecisaoPropostaRequest  true  "ACEITA ou RECUSADA"
// @Success      200   {object}  entity.Proposta
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /propostas/{id}/decisao [put]
func (h *PropostasHandler) Decidir(c *fiber.Ctx) error {
	recurso, ok := recursoDe(GetPapel(c))
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem caixa de propostas"})
	}
	var in dto.DecisaoPropostaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	p, err := h.uc.Decidir(c.UserContext(), recurso, c.Params("id"), in.Status)
	if err != nil {
		return respostaUpstream(c, err, "proposta não encontrada")
	}
	h.invalidarCaixa(c, recurso)
	return c.JSON(p)
}

// invalidarCaixa descarta a janela cacheada da primeira página depois de uma
// mutação, para a caixa reabrir refletindo o estado novo. As demais tuplas
// ficam até vencer; falha de invalidação é ignorada.
func (h *PropostasHandler) invalidarCaixa(c *fiber.Ctx, recurso string) {
	padrao := paginacao.Consulta{Pagina: 1, TamPagina: 10}
	_ = h.cache.Delete(c.UserContext(), recurso+":"+padrao.Chave())
}
