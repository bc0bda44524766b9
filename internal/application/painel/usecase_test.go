package painel_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/painel"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/pkg/logger"
)

// clienteFake responde por caminho; caminhos ausentes do mapa devolvem erro,
// simulando um serviço indisponível.
type clienteFake struct {
	mu        sync.Mutex
	respostas map[string]string // sufixo do caminho -> corpo JSON
	chamadas  []string
}

func (c *clienteFake) Fazer(_ context.Context, _, caminho string, _, saida interface{}) error {
	c.mu.Lock()
	c.chamadas = append(c.chamadas, caminho)
	c.mu.Unlock()
	for sufixo, corpo := range c.respostas {
		if strings.Contains(caminho, sufixo) {
			return jsonEm(corpo, saida)
		}
	}
	return fmt.Errorf("serviço indisponível")
}

func jsonEm(corpo string, saida interface{}) error {
	return json.Unmarshal([]byte(corpo), saida)
}

func novoServico(respostas map[string]string) (*painel.Servico, *clienteFake) {
	fake := &clienteFake{respostas: respostas}
	return painel.NovoServico(fake, logger.New(logger.Config{Env: "test", Level: "error"})), fake
}

func TestResumoAdmin_QuatroContagensEmParalelo(t *testing.T) {
	svc, fake := novoServico(map[string]string{
		"/cliente":    `{"total": 120}`,
		"/artista":    `{"total": 34}`,
		"/casaDeShow": `{"total": 12}`,
		"/evento":     `{"total": 56}`,
	})

	resumo := svc.ResumoAdmin(context.Background())
	assert.Equal(t, 120, resumo.Clientes)
	assert.Equal(t, 34, resumo.Artistas)
	assert.Equal(t, 12, resumo.CasasDeShow)
	assert.Equal(t, 56, resumo.Eventos)
	assert.Len(t, fake.chamadas, 4)
}

// Falha em uma das consultas não derruba o painel: o campo vem zerado e os
// demais preservados.
func TestResumoAdmin_FalhaParcialViraZero(t *testing.T) {
	svc, _ := novoServico(map[string]string{
		"/cliente": `{"total": 10}`,
		"/artista": `{"total": 5}`,
		"/evento":  `{"total": 7}`,
		// /casaDeShow ausente: erro → zero
	})

	resumo := svc.ResumoAdmin(context.Background())
	assert.Equal(t, 10, resumo.Clientes)
	assert.Equal(t, 0, resumo.CasasDeShow, "consulta com falha rebaixa para zero")
	assert.Equal(t, 7, resumo.Eventos)
}

func TestResumoArtista_SomaCacheDasAceitas(t *testing.T) {
	svc, _ := novoServico(map[string]string{
		"/eventoArtista":    `{"total": 3}`,
		"status=PENDENTE":   `{"total": 2}`,
		"status=RECUSADA":   `{"total": 1}`,
		"status=ACEITA":     `{"total": 2, "items": [{"cache": "1500.50"}, {"cache": "2000"}]}`,
	})

	resumo := svc.ResumoArtista(context.Background(), "art-1")
	assert.Equal(t, 3, resumo.Eventos)
	assert.Equal(t, 2, resumo.PropostasPendentes)
	assert.Equal(t, 1, resumo.PropostasRecusadas)
	assert.Equal(t, 2, resumo.PropostasAceitas)
	assert.True(t, resumo.CacheTotal.Equal(decimal.RequireFromString("3500.50")),
		"cachê total deve somar as propostas aceitas, obtido %s", resumo.CacheTotal)
}

func TestResumoCasa_TudoIndisponivelZerado(t *testing.T) {
	svc, _ := novoServico(map[string]string{})
	resumo := svc.ResumoCasa(context.Background(), "casa-1")
	assert.Zero(t, resumo.Eventos)
	assert.Zero(t, resumo.PropostasAceitas)
	assert.True(t, resumo.CacheTotal.IsZero())
}
