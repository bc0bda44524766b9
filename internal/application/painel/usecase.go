// Package painel monta os agregados dos dashboards de cada papel. As
// consultas de contagem são independentes e vão em paralelo; falha individual
// é capturada por consulta e rebaixada para zero/vazio em vez de derrubar o
// painel inteiro (tolerância deliberada a falha parcial).
package painel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/pkg/logger"
)

// ClienteHTTP contrato mínimo do cliente upstream para as consultas do painel.
type ClienteHTTP interface {
	Fazer(ctx context.Context, metodo, caminho string, corpo, saida interface{}) error
}

// Servico caso de uso dos dashboards.
type Servico struct {
	http ClienteHTTP
	log  *logger.Logger
}

// NovoServico constrói o caso de uso.
func NovoServico(http ClienteHTTP, log *logger.Logger) *Servico {
	return &Servico{http: http, log: log}
}

// listaUpstream forma paginada padrão das listagens dos serviços.
type listaUpstream struct {
	Items []entity.Proposta `json:"items"`
	Total int               `json:"total"`
}

// contar devolve o total de um recurso; falha conta zero.
func (s *Servico) contar(ctx context.Context, caminho string) int {
	var resp struct {
		Total int `json:"total"`
	}
	if err := s.http.Fazer(ctx, http.MethodGet, caminho, nil, &resp); err != nil {
		s.log.Warn().Err(err).Str("caminho", caminho).Msg("contagem do painel falhou, assumindo zero")
		return 0
	}
	return resp.Total
}

// propostas devolve a lista filtrada; falha conta lista vazia.
func (s *Servico) propostas(ctx context.Context, caminho string) listaUpstream {
	var resp listaUpstream
	if err := s.http.Fazer(ctx, http.MethodGet, caminho, nil, &resp); err != nil {
		s.log.Warn().Err(err).Str("caminho", caminho).Msg("listagem do painel falhou, assumindo vazia")
		return listaUpstream{}
	}
	return resp
}

// ResumoArtista monta o painel do artista: eventos agendados e propostas
// recebidas por status, mais o cachê somado das aceitas.
//
// Quatro consultas em paralelo, joined antes de montar o DTO.
func (s *Servico) ResumoArtista(ctx context.Context, artistaID string) dto.ResumoPainelDTO {
	eventosCh := make(chan int, 1)
	pendentesCh := make(chan int, 1)
	recusadasCh := make(chan int, 1)
	aceitasCh := make(chan listaUpstream, 1)

	go func() {
		eventosCh <- s.contar(ctx, "/eventoArtista?artistaId="+artistaID)
	}()
	go func() {
		pendentesCh <- s.contar(ctx, fmt.Sprintf("/propostaCasa?artistaId=%s&status=%s", artistaID, entity.PropostaPendente))
	}()
	go func() {
		recusadasCh <- s.contar(ctx, fmt.Sprintf("/propostaCasa?artistaId=%s&status=%s", artistaID, entity.PropostaRecusada))
	}()
	go func() {
		aceitasCh <- s.propostas(ctx, fmt.Sprintf("/propostaCasa?artistaId=%s&status=%s", artistaID, entity.PropostaAceita))
	}()

	aceitas := <-aceitasCh
	resumo := dto.ResumoPainelDTO{
		Eventos:            <-eventosCh,
		PropostasPendentes: <-pendentesCh,
		PropostasRecusadas: <-recusadasCh,
		PropostasAceitas:   aceitas.Total,
		CacheTotal:         somaCache(aceitas.Items),
	}
	return resumo
}

// ResumoCasa monta o painel da casa de show, espelho do painel do artista.
func (s *Servico) ResumoCasa(ctx context.Context, casaID string) dto.ResumoPainelDTO {
	eventosCh := make(chan int, 1)
	pendentesCh := make(chan int, 1)
	recusadasCh := make(chan int, 1)
	aceitasCh := make(chan listaUpstream, 1)

	go func() {
		eventosCh <- s.contar(ctx, "/evento?casaDeShowId="+casaID)
	}()
	go func() {
		pendentesCh <- s.contar(ctx, fmt.Sprintf("/propostaArtista?casaDeShowId=%s&status=%s", casaID, entity.PropostaPendente))
	}()
	go func() {
		recusadasCh <- s.contar(ctx, fmt.Sprintf("/propostaArtista?casaDeShowId=%s&status=%s", casaID, entity.PropostaRecusada))
	}()
	go func() {
		aceitasCh <- s.propostas(ctx, fmt.Sprintf("/propostaArtista?casaDeShowId=%s&status=%s", casaID, entity.PropostaAceita))
	}()

	aceitas := <-aceitasCh
	return dto.ResumoPainelDTO{
		Eventos:            <-eventosCh,
		PropostasPendentes: <-pendentesCh,
		PropostasRecusadas: <-recusadasCh,
		PropostasAceitas:   aceitas.Total,
		CacheTotal:         somaCache(aceitas.Items),
	}
}

// ResumoAdmin monta o painel do administrador: as quatro contagens globais da
// plataforma, em paralelo.
func (s *Servico) ResumoAdmin(ctx context.Context) dto.ResumoAdminDTO {
	clientesCh := make(chan int, 1)
	artistasCh := make(chan int, 1)
	casasCh := make(chan int, 1)
	eventosCh := make(chan int, 1)

	go func() { clientesCh <- s.contar(ctx, "/cliente") }()
	go func() { artistasCh <- s.contar(ctx, "/artista") }()
	go func() { casasCh <- s.contar(ctx, "/casaDeShow") }()
	go func() { eventosCh <- s.contar(ctx, "/evento") }()

	return dto.ResumoAdminDTO{
		Clientes:    <-clientesCh,
		Artistas:    <-artistasCh,
		CasasDeShow: <-casasCh,
		Eventos:     <-eventosCh,
	}
}

func somaCache(propostas []entity.Proposta) decimal.Decimal {
	total := decimal.Zero
	for _, p := range propostas {
		total = total.Add(p.Cache)
	}
	return total.Round(2)
}
