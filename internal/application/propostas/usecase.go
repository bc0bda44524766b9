// Package propostas implementa o ciclo de vida das propostas entre casas de
// show e artistas. A decisão (aceitar/recusar) é um comando em dois passos no
// serviço de eventos; quando o segundo passo falha, o status anterior é
// restaurado para não deixar a proposta em estado intermediário.
package propostas

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/pkg/logger"
)

// Recursos de proposta expostos pelo serviço de eventos, por papel de origem.
const (
	RecursoArtista = "propostaArtista"
	RecursoCasa    = "propostaCasa"
)

// ClienteHTTP contrato mínimo do cliente upstream usado pelo caso de uso.
type ClienteHTTP interface {
	Fazer(ctx context.Context, metodo, caminho string, corpo, saida interface{}) error
}

// Servico caso de uso de propostas.
type Servico struct {
	http ClienteHTTP
	log  *logger.Logger

	// restaurar controla a compensação: quando o vínculo evento↔artista
	// falha após a proposta já ter sido marcada como aceita, o status
	// anterior é reposto. Ligado por padrão.
	restaurar bool
}

// NovoServico constrói o caso de uso com compensação ligada.
func NovoServico(http ClienteHTTP, log *logger.Logger) *Servico {
	return &Servico{http: http, log: log, restaurar: true}
}

// SemRestauracao desliga a compensação em caso de falha parcial.
func (s *Servico) SemRestauracao() *Servico {
	s.restaurar = false
	return s
}

func validarRecurso(recurso string) error {
	if recurso != RecursoArtista && recurso != RecursoCasa {
		return fmt.Errorf("%w: recurso de proposta desconhecido %q", domain.ErrEntradaInvalida, recurso)
	}
	return nil
}

// Criar abre uma proposta no recurso indicado.
func (s *Servico) Criar(ctx context.Context, recurso string, in dto.CriarPropostaRequest) (*entity.Proposta, error) {
	if err := validarRecurso(recurso); err != nil {
		return nil, err
	}
	if in.EventoID == "" || in.ArtistaID == "" {
		return nil, fmt.Errorf("%w: eventoId e artistaId são obrigatórios", domain.ErrEntradaInvalida)
	}
	corpo := map[string]interface{}{
		"eventoId":     in.EventoID,
		"artistaId":    in.ArtistaID,
		"casaDeShowId": in.CasaID,
		"cache":        in.Cache,
		"status":       entity.PropostaPendente,
	}
	var criada entity.Proposta
	if err := s.http.Fazer(ctx, http.MethodPost, "/"+recurso, corpo, &criada); err != nil {
		return nil, fmt.Errorf("criar proposta: %w", err)
	}
	return &criada, nil
}

// Buscar devolve uma proposta pelo id.
func (s *Servico) Buscar(ctx context.Context, recurso, id string) (*entity.Proposta, error) {
	if err := validarRecurso(recurso); err != nil {
		return nil, err
	}
	var p entity.Proposta
	if err := s.http.Fazer(ctx, http.MethodGet, "/"+recurso+"/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Decidir aceita ou recusa uma proposta. Aceitar também cria o vínculo
// evento↔artista no serviço de eventos; se o vínculo falhar, o status
// anterior da proposta é restaurado (quando a compensação está ligada) e o
// erro original é devolvido.
func (s *Servico) Decidir(ctx context.Context, recurso, id, status string) (*entity.Proposta, error) {
	if err := validarRecurso(recurso); err != nil {
		return nil, err
	}
	if status != entity.PropostaAceita && status != entity.PropostaRecusada {
		return nil, fmt.Errorf("%w: status de decisão deve ser %s ou %s", domain.ErrEntradaInvalida, entity.PropostaAceita, entity.PropostaRecusada)
	}

	caminho := "/" + recurso + "/" + id
	anterior, err := s.Buscar(ctx, recurso, id)
	if err != nil {
		return nil, fmt.Errorf("buscar proposta %s: %w", id, err)
	}

	atual := *anterior
	atual.Status = status
	if err := s.http.Fazer(ctx, http.MethodPut, caminho, atual, nil); err != nil {
		return nil, fmt.Errorf("atualizar proposta %s: %w", id, err)
	}

	if status == entity.PropostaAceita {
		vinculo := map[string]string{
			"eventoId":  anterior.EventoID,
			"artistaId": anterior.ArtistaID,
		}
		if err := s.http.Fazer(ctx, http.MethodPost, "/eventoArtista", vinculo, nil); err != nil {
			if s.restaurar {
				if errR := s.http.Fazer(ctx, http.MethodPut, caminho, *anterior, nil); errR != nil {
					s.log.Error().Err(errR).Str("proposta", id).Msg("restauração da proposta falhou após erro no vínculo")
				} else {
					s.log.Warn().Str("proposta", id).Msg("vínculo evento-artista falhou, status da proposta restaurado")
				}
			}
			return nil, fmt.Errorf("vincular artista ao evento: %w", err)
		}
	}
	return &atual, nil
}
