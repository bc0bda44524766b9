package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de uma proposta entre casa de show e artista.
const (
	PropostaPendente   = "PENDENTE"
	PropostaDisponivel = "DISPONIVEL"
	PropostaAceita     = "ACEITA"
	PropostaRecusada   = "RECUSADA"
)

// Proposta oferta entre uma casa de show e um artista para um evento
// específico, com o cachê ofertado. O sentido (casa→artista ou artista→casa)
// é dado pelo recurso de origem no serviço de eventos.
type Proposta struct {
	ID        string          `json:"id"`
	EventoID  string          `json:"eventoId"`
	ArtistaID string          `json:"artistaId"`
	CasaID    string          `json:"casaDeShowId"`
	Cache     decimal.Decimal `json:"cache"`
	Status    string          `json:"status"`
	CriadaEm  time.Time       `json:"criadaEm"`
}
