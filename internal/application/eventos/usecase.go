// Package eventos expõe a vitrine de shows: listagem paginada com cache por
// tupla de consulta e o detalhe de um evento enriquecido com a casa de show e
// o elenco confirmado.
package eventos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/paginacao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/pkg/logger"
)

// ClienteHTTP contrato mínimo do cliente upstream.
type ClienteHTTP interface {
	Fazer(ctx context.Context, metodo, caminho string, corpo, saida interface{}) error
}

// Servico caso de uso da vitrine de eventos.
type Servico struct {
	http  ClienteHTTP
	cache paginacao.Cache
	log   *logger.Logger
}

// NovoServico constrói o caso de uso. O cache é compartilhado entre as
// consultas do feed e vive enquanto o processo viver.
func NovoServico(http ClienteHTTP, cache paginacao.Cache, log *logger.Logger) *Servico {
	return &Servico{http: http, cache: cache, log: log}
}

// Detalhe evento com os agregados que a página de detalhe mostra. Casa e
// elenco são enriquecimentos: falha neles não derruba o detalhe.
type Detalhe struct {
	Evento   entity.Evento      `json:"evento"`
	Casa     *entity.CasaDeShow `json:"casaDeShow,omitempty"`
	Artistas []entity.Artista   `json:"artistas"`
}

// Feed consulta a janela da vitrine. Erros de busca não propagam: ficam em
// Estado.Erro, e a janela anterior da tupla (se cacheada) continua servível.
func (s *Servico) Feed(ctx context.Context, c paginacao.Consulta) paginacao.Estado[entity.Evento] {
	prov := paginacao.NovoRemoto(s.buscarJanela, s.cache)
	prov.Consultar(ctx, c)
	return prov.Estado()
}

func (s *Servico) buscarJanela(ctx context.Context, c paginacao.Consulta) (paginacao.Janela[entity.Evento], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(c.Pagina))
	q.Set("pageSize", strconv.Itoa(c.TamPagina))
	if c.Busca != "" {
		q.Set("search", c.Busca)
	}
	if c.Ordenacao != "" {
		q.Set("sort", c.Ordenacao)
	}
	var resp struct {
		Items []entity.Evento `json:"items"`
		Total int             `json:"total"`
	}
	if err := s.http.Fazer(ctx, http.MethodGet, "/evento?"+q.Encode(), nil, &resp); err != nil {
		return paginacao.Janela[entity.Evento]{}, fmt.Errorf("buscar eventos: %w", err)
	}
	return paginacao.Janela[entity.Evento]{Itens: resp.Items, Total: resp.Total}, nil
}

// Buscar devolve o detalhe de um evento.
func (s *Servico) Buscar(ctx context.Context, id string) (*Detalhe, error) {
	var ev entity.Evento
	if err := s.http.Fazer(ctx, http.MethodGet, "/evento/"+id, nil, &ev); err != nil {
		return nil, err
	}
	d := &Detalhe{Evento: ev, Artistas: []entity.Artista{}}

	if ev.CasaDeShowID != "" {
		var casa entity.CasaDeShow
		if err := s.http.Fazer(ctx, http.MethodGet, "/casaDeShow/"+ev.CasaDeShowID, nil, &casa); err != nil {
			s.log.Warn().Err(err).Str("evento", id).Msg("casa de show do evento indisponível")
		} else {
			d.Casa = &casa
		}
	}

	var vinculos []struct {
		ArtistaID string `json:"artistaId"`
	}
	if err := s.http.Fazer(ctx, http.MethodGet, "/eventoArtista?eventoId="+url.QueryEscape(id), nil, &vinculos); err != nil {
		s.log.Warn().Err(err).Str("evento", id).Msg("elenco do evento indisponível")
		return d, nil
	}
	for _, v := range vinculos {
		var a entity.Artista
		if err := s.http.Fazer(ctx, http.MethodGet, "/artista/"+v.ArtistaID, nil, &a); err != nil {
			s.log.Warn().Err(err).Str("artista", v.ArtistaID).Msg("artista do elenco indisponível")
			continue
		}
		d.Artistas = append(d.Artistas, a)
	}
	return d, nil
}
