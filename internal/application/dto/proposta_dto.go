package dto

import "github.com/shopspring/decimal"

// CriarPropostaRequest abertura de proposta entre casa de show e artista.
type CriarPropostaRequest struct {
	EventoID  string          `json:"eventoId"`
	ArtistaID string          `json:"artistaId"`
	CasaID    string          `json:"casaDeShowId"`
	Cache     decimal.Decimal `json:"cache"`
}

// DecisaoPropostaRequest aceitar/recusar (artista) ou aprovar/rejeitar (casa).
type DecisaoPropostaRequest struct {
	Status string `json:"status"` // ACEITA | RECUSADA
}
