package dto

import "github.com/shopspring/decimal"

// ResumoPainelDTO agregados exibidos no dashboard de cada papel. Falha em
// qualquer consulta individual vira zero no campo correspondente, nunca erro
// do painel inteiro.
type ResumoPainelDTO struct {
	Eventos            int             `json:"eventos"`
	PropostasPendentes int             `json:"propostasPendentes"`
	PropostasAceitas   int             `json:"propostasAceitas"`
	PropostasRecusadas int             `json:"propostasRecusadas"`
	CacheTotal         decimal.Decimal `json:"cacheTotal"`
}

// ResumoAdminDTO agregados do painel do administrador.
type ResumoAdminDTO struct {
	Clientes    int `json:"clientes"`
	Artistas    int `json:"artistas"`
	CasasDeShow int `json:"casasDeShow"`
	Eventos     int `json:"eventos"`
}
