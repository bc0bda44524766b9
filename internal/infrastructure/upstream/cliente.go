// Package upstream implementa o cliente HTTP autenticado para os três
// microsserviços do Night Out. A resolução de qual serviço atende cada
// caminho é por prefixo: eventos/propostas vão para o serviço de eventos,
// relatórios para o de relatórios, e o restante (auth + cadastros) para o
// serviço de usuários.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/pkg/logger"
)

// Erro falha de uma chamada upstream, com o status HTTP anexado para o
// chamador decidir como degradar.
type Erro struct {
	Status   int
	Mensagem string
}

func (e *Erro) Error() string {
	return fmt.Sprintf("upstream: %s (status %d)", e.Mensagem, e.Status)
}

// FonteToken fornece o token bearer da sessão corrente, se houver.
// Implementada pelo armazém de sessão; vazio significa requisição anônima.
type FonteToken interface {
	Token() string
}

// Config endereços e credencial estática dos serviços.
type Config struct {
	UsuariosURL   string
	EventosURL    string
	RelatoriosURL string
	APIKey        string
}

// Cliente cliente HTTP para os serviços do Night Out. Sem retries: toda falha
// sobe para o chamador, que decide entre repetir ou degradar.
type Cliente struct {
	cfg   Config
	http  *http.Client
	fonte FonteToken
	log   *logger.Logger
}

// prefixos do serviço de eventos. /evento cobre também /eventoArtista.
var prefixosEventos = []string{"/evento", "/propostaArtista", "/propostaCasa"}

// NovoCliente constrói o cliente com timeout de rede próprio; os handlers
// impõem prazos adicionais via contexto.
func NovoCliente(cfg Config, fonte FonteToken, log *logger.Logger) *Cliente {
	return &Cliente{
		cfg:   cfg,
		http:  &http.Client{Timeout: 15 * time.Second},
		fonte: fonte,
		log:   log,
	}
}

// baseURL resolve o serviço de destino pelo prefixo do caminho.
func (c *Cliente) baseURL(caminho string) string {
	for _, p := range prefixosEventos {
		if strings.HasPrefix(caminho, p) {
			return c.cfg.EventosURL
		}
	}
	if strings.HasPrefix(caminho, "/relatorios") {
		return c.cfg.RelatoriosURL
	}
	return c.cfg.UsuariosURL
}

// Fazer executa a chamada sem cabeçalhos extras. Ver FazerComCabecalhos.
func (c *Cliente) Fazer(ctx context.Context, metodo, caminho string, corpo, saida interface{}) error {
	return c.FazerComCabecalhos(ctx, metodo, caminho, corpo, saida, nil)
}

// FazerComCabecalhos executa uma chamada autenticada contra o serviço dono do
// caminho:
//   - x-api-key sempre presente; Authorization: Bearer <token> quando a sessão
//     tem token; cabeçalhos do chamador são mesclados sem sobrescrever esses dois;
//   - não-2xx: o corpo JSON é inspecionado por uma mensagem e o status HTTP vai
//     anexado no *Erro devolvido;
//   - 2xx: JSON decodificado em saida; corpo vazio/204 deixa saida intacta;
//     content-type não JSON é devolvido como texto cru (saida *string).
func (c *Cliente) FazerComCabecalhos(ctx context.Context, metodo, caminho string, corpo, saida interface{}, cabecalhos map[string]string) error {
	var body io.Reader
	if corpo != nil {
		b, err := json.Marshal(corpo)
		if err != nil {
			return fmt.Errorf("upstream: serializar corpo: %w", err)
		}
		body = bytes.NewReader(b)
	}

	url := c.baseURL(caminho) + caminho
	req, err := http.NewRequestWithContext(ctx, metodo, url, body)
	if err != nil {
		return fmt.Errorf("upstream: montar requisição: %w", err)
	}

	for k, v := range cabecalhos {
		// Authorization e x-api-key são do gateway, não do chamador
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "x-api-key") {
			continue
		}
		req.Header.Set(k, v)
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)
	if corpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.fonte.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: %s %s: %w", metodo, caminho, err)
	}
	defer resp.Body.Close()

	dados, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("upstream: ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Erro{Status: resp.StatusCode, Mensagem: mensagemDeErro(dados)}
	}

	if saida == nil || len(dados) == 0 || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "json") {
		if s, ok := saida.(*string); ok {
			*s = string(dados)
			return nil
		}
		return fmt.Errorf("upstream: resposta não JSON (%s) para destino tipado", ct)
	}

	if err := json.Unmarshal(dados, saida); err != nil {
		return fmt.Errorf("upstream: decodificar resposta: %w", err)
	}
	return nil
}

// mensagemDeErro tenta extrair a mensagem do corpo JSON de erro; cai num
// genérico quando o corpo não é interpretável.
func mensagemDeErro(dados []byte) string {
	var corpo map[string]interface{}
	if err := json.Unmarshal(dados, &corpo); err == nil {
		for _, k := range []string{"message", "mensagem", "error", "erro"} {
			if v, ok := corpo[k].(string); ok && v != "" {
				return v
			}
		}
	}
	return "requisição falhou"
}
