package dto

import "time"

// RelatorioDTO relatório tabular devolvido pelo serviço de relatórios.
// O serviço é somente leitura; o gateway apenas repassa e, quando pedido,
// exporta em PDF.
type RelatorioDTO struct {
	Nome     string     `json:"nome"`
	Titulo   string     `json:"titulo"`
	Colunas  []string   `json:"colunas"`
	Linhas   [][]string `json:"linhas"`
	GeradoEm time.Time  `json:"geradoEm"`
}
