// Package pdf implementa a exportação dos relatórios administrativos em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Night Out + título do relatório                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: cabeçalho de colunas + linhas                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: data/hora de geração                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/relatorio"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 40, Green: 20, Blue: 90}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// maxColunas limite de colunas na grade de 12 do Maroto.
const maxColunas = 6

// MarotoRelatorio implementa relatorio.GeradorPDF usando Maroto v2.
type MarotoRelatorio struct{}

var _ relatorio.GeradorPDF = (*MarotoRelatorio)(nil)

// NovoMarotoRelatorio constrói o gerador.
func NovoMarotoRelatorio() *MarotoRelatorio { return &MarotoRelatorio{} }

// GerarRelatorioPDF gera o PDF e devolve seus bytes.
func (g *MarotoRelatorio) GerarRelatorioPDF(_ context.Context, r dto.RelatorioDTO) ([]byte, error) {
	if len(r.Colunas) == 0 {
		return nil, fmt.Errorf("pdf: relatório %q sem colunas", r.Nome)
	}
	if len(r.Colunas) > maxColunas {
		return nil, fmt.Errorf("pdf: relatório %q com %d colunas (máx %d)", r.Nome, len(r.Colunas), maxColunas)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Night Out - "+r.Titulo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalho(r))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(cabecalhoTabela(r.Colunas))
	for _, linha := range r.Linhas {
		m.AddRows(linhaTabela(r.Colunas, linha))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}))
	m.AddRows(rodape(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func cabecalho(r dto.RelatorioDTO) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Night Out", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New("Relatórios administrativos", props.Text{
				Size: 8, Top: 9, Color: corCinza,
			}),
		),
		col.New(6).Add(
			text.New(r.Titulo, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 4,
			}),
		),
	)
}

func cabecalhoTabela(colunas []string) core.Row {
	largura := 12 / len(colunas)
	linha := row.New(8)
	for _, nome := range colunas {
		linha.Add(col.New(largura).Add(
			text.New(nome, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Color: corPrimaria}),
		))
	}
	return linha
}

func linhaTabela(colunas, valores []string) core.Row {
	largura := 12 / len(colunas)
	linha := row.New(6)
	for i := range colunas {
		valor := ""
		if i < len(valores) {
			valor = valores[i]
		}
		linha.Add(col.New(largura).Add(
			text.New(valor, props.Text{Size: 8, Top: 1}),
		))
	}
	return linha
}

func rodape(r dto.RelatorioDTO) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(
				fmt.Sprintf("Gerado em %s - %d registro(s)", r.GeradoEm.Format("02/01/2006 15:04"), len(r.Linhas)),
				props.Text{Size: 7, Color: corCinza, Top: 2},
			),
		),
	)
}
