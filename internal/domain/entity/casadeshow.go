package entity

// CasaDeShow estabelecimento que sedia eventos.
type CasaDeShow struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Endereco   string `json:"endereco"`
	Cidade     string `json:"cidade"`
	Capacidade int    `json:"capacidade"`
}
