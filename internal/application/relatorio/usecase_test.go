package relatorio

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
)

type clienteFake struct {
	resposta interface{}
	erro     error
	caminhos []string
}

func (f *clienteFake) Fazer(_ context.Context, _, caminho string, _, saida interface{}) error {
	f.caminhos = append(f.caminhos, caminho)
	if f.erro != nil {
		return f.erro
	}
	b, _ := json.Marshal(f.resposta)
	return json.Unmarshal(b, saida)
}

type pdfFake struct {
	recebido dto.RelatorioDTO
}

func (p *pdfFake) GerarRelatorioPDF(_ context.Context, r dto.RelatorioDTO) ([]byte, error) {
	p.recebido = r
	return []byte("%PDF"), nil
}

func TestObterPreencheNomeEData(t *testing.T) {
	fake := &clienteFake{resposta: dto.RelatorioDTO{
		Titulo:  "Eventos por casa",
		Colunas: []string{"Casa", "Eventos"},
		Linhas:  [][]string{{"Armazém", "4"}},
	}}
	svc := NovoServico(fake, &pdfFake{})

	r, err := svc.Obter(context.Background(), "eventos-por-casa")
	require.NoError(t, err)
	assert.Equal(t, "eventos-por-casa", r.Nome)
	assert.False(t, r.GeradoEm.IsZero(), "relatório sem data ganha a data de geração")
	assert.Equal(t, []string{"/relatorios/eventos-por-casa"}, fake.caminhos)
}

func TestGerarPDFUsaORelatorioObtido(t *testing.T) {
	fake := &clienteFake{resposta: dto.RelatorioDTO{Titulo: "Cachês pagos"}}
	pdf := &pdfFake{}
	svc := NovoServico(fake, pdf)

	b, err := svc.GerarPDF(context.Background(), "caches")
	require.NoError(t, err)
	assert.NotEmpty(t, b)
	assert.Equal(t, "Cachês pagos", pdf.recebido.Titulo)
}

func TestGerarPDFPropagaFalhaDoServico(t *testing.T) {
	fake := &clienteFake{erro: errors.New("relatórios fora do ar")}
	svc := NovoServico(fake, &pdfFake{})

	_, err := svc.GerarPDF(context.Background(), "caches")
	assert.Error(t, err)
}
