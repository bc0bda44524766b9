// Package relatorio expõe os relatórios administrativos: leitura direta do
// serviço de relatórios e exportação em PDF.
package relatorio

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
)

// ClienteHTTP contrato mínimo do cliente upstream.
type ClienteHTTP interface {
	Fazer(ctx context.Context, metodo, caminho string, corpo, saida interface{}) error
}

// GeradorPDF renderiza um relatório tabular em PDF. Implementado em
// infrastructure/pdf com Maroto.
type GeradorPDF interface {
	GerarRelatorioPDF(ctx context.Context, r dto.RelatorioDTO) ([]byte, error)
}

// Servico caso de uso de relatórios.
type Servico struct {
	http ClienteHTTP
	pdf  GeradorPDF
}

// NovoServico constrói o caso de uso.
func NovoServico(http ClienteHTTP, pdf GeradorPDF) *Servico {
	return &Servico{http: http, pdf: pdf}
}

// Obter busca o relatório nomeado no serviço de relatórios.
func (s *Servico) Obter(ctx context.Context, nome string) (dto.RelatorioDTO, error) {
	var r dto.RelatorioDTO
	if err := s.http.Fazer(ctx, http.MethodGet, "/relatorios/"+nome, nil, &r); err != nil {
		return dto.RelatorioDTO{}, fmt.Errorf("relatorio %q: %w", nome, err)
	}
	r.Nome = nome
	if r.GeradoEm.IsZero() {
		r.GeradoEm = time.Now()
	}
	return r, nil
}

// GerarPDF busca o relatório e devolve os bytes do PDF.
func (s *Servico) GerarPDF(ctx context.Context, nome string) ([]byte, error) {
	r, err := s.Obter(ctx, nome)
	if err != nil {
		return nil, err
	}
	return s.pdf.GerarRelatorioPDF(ctx, r)
}
