package entity

import "time"

// Evento show agendado em uma casa de show, como devolvido pelo serviço de eventos.
type Evento struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Descricao    string    `json:"descricao"`
	Data         time.Time `json:"data"`
	CasaDeShowID string    `json:"casaDeShowId"`
	Genero       string    `json:"genero"`
	Imagem       string    `json:"imagem,omitempty"`
}
