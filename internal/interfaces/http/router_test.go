package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	netHTTP "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/eventos"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/painel"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/propostas"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/relatorio"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/rotas"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/sessao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/tabelas"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/papel"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/infrastructure/cache"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/pkg/logger"
)

// armazemFake sessão e avatares em memória.
type armazemFake struct {
	sess    entity.Sessao
	avatars map[string]string
}

func novoArmazemFake() *armazemFake {
	return &armazemFake{avatars: map[string]string{}}
}

func (a *armazemFake) Carregar() (entity.Sessao, error) { return a.sess, nil }
func (a *armazemFake) Salvar(s entity.Sessao) error     { a.sess = s; return nil }
func (a *armazemFake) Limpar() error                    { a.sess = entity.Sessao{}; return nil }
func (a *armazemFake) AvatarDe(id string) (string, error) {
	return a.avatars[id], nil
}
func (a *armazemFake) SalvarAvatar(id, dataURL string) error {
	a.avatars[id] = dataURL
	return nil
}

// upstreamFake resolve por "METODO caminho" exato e cai para prefixo.
type upstreamFake struct {
	respostas map[string]interface{}
	erros     map[string]error
}

func novoUpstreamFake() *upstreamFake {
	return &upstreamFake{respostas: map[string]interface{}{}, erros: map[string]error{}}
}

func (f *upstreamFake) Fazer(_ context.Context, metodo, caminho string, _, saida interface{}) error {
	chave := metodo + " " + caminho
	if err, ok := f.erros[chave]; ok {
		return err
	}
	if resp, ok := f.respostas[chave]; ok {
		return decodificar(resp, saida)
	}
	for prefixo, err := range f.erros {
		if strings.HasPrefix(chave, prefixo) {
			return err
		}
	}
	for prefixo, resp := range f.respostas {
		if strings.HasPrefix(chave, prefixo) {
			return decodificar(resp, saida)
		}
	}
	return nil
}

func decodificar(resp, saida interface{}) error {
	if saida == nil {
		return nil
	}
	b, _ := json.Marshal(resp)
	return json.Unmarshal(b, saida)
}

type pdfFake struct{}

func (pdfFake) GerarRelatorioPDF(_ context.Context, _ dto.RelatorioDTO) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// novaAppTeste monta o gateway completo sobre os fakes.
func novaAppTeste(t *testing.T, armazem *armazemFake, up *upstreamFake) *fiber.App {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	guarda, err := rotas.NovaGuarda()
	require.NoError(t, err)

	app := fiber.New()
	Router(app, RouterDeps{
		SessaoUC:       sessao.NovoServico(up, armazem, log),
		EventosUC:      eventos.NovoServico(up, cache.NovaMemoria(), log),
		PropostasUC:    propostas.NovoServico(up, log),
		PainelUC:       painel.NovoServico(up, log),
		TabelasUC:      tabelas.NovoServico(up),
		RelatorioUC:    relatorio.NovoServico(up, pdfFake{}),
		Guarda:         guarda,
		Upstream:       up,
		CachePropostas: cache.NovaMemoria(),
		Avatars:        armazem,
	})
	return app
}

func abrirSessao(a *armazemFake, p papel.Papel) {
	a.sess = entity.Sessao{
		Token:   "tok-teste",
		Usuario: entity.Usuario{ID: "7", Nome: "Teste", Email: "t@nightout.com", Papel: p},
	}
}

func fazer(t *testing.T, app *fiber.App, metodo, alvo string, corpo interface{}) *netHTTP.Response {
	t.Helper()
	var body io.Reader
	if corpo != nil {
		b, err := json.Marshal(corpo)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(metodo, alvo, body)
	if corpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func corpoJSON(t *testing.T, resp *netHTTP.Response, dest interface{}) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, dest))
}

func TestSemSessaoPaginaPrivadaRedirecionaParaLogin(t *testing.T) {
	app := novaAppTeste(t, novoArmazemFake(), novoUpstreamFake())

	for _, alvo := range []string{"/", "/perfil", "/dashboard-admin", "/tabelas"} {
		resp := fazer(t, app, "GET", alvo, nil)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, alvo)
		assert.Equal(t, "/login", resp.Header.Get("Location"), alvo)
	}
}

func TestSemSessaoPaginaPublicaServe(t *testing.T) {
	app := novaAppTeste(t, novoArmazemFake(), novoUpstreamFake())
	resp := fazer(t, app, "GET", "/login", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestComSessaoPaginaPublicaRedirecionaParaInicial(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Artista)
	app := novaAppTeste(t, armazem, novoUpstreamFake())

	resp := fazer(t, app, "GET", "/login", nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard-artista", resp.Header.Get("Location"))
}

func TestComSessaoCaminhoDeOutroPapelRedireciona(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Artista)
	app := novaAppTeste(t, armazem, novoUpstreamFake())

	resp := fazer(t, app, "GET", "/dashboard-casa", nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard-artista", resp.Header.Get("Location"))
}

func TestLoginAbreSessaoEResolvePapel(t *testing.T) {
	armazem := novoArmazemFake()
	up := novoUpstreamFake()
	up.respostas["POST /auth/login"] = map[string]interface{}{
		"token": "abc.def.ghi",
		"id":    "3",
		"nome":  "Banda Mar Aberto",
		"tipo":  "Músico",
	}
	app := novaAppTeste(t, armazem, up)

	resp := fazer(t, app, "POST", "/login", dto.LoginRequest{Email: "b@m.com", Senha: "x"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	corpoJSON(t, resp, &out)
	assert.Equal(t, "ARTISTA", out.Usuario.Papel, "sinônimo acentuado resolve para o papel canônico")
	assert.Equal(t, "/dashboard-artista", out.Usuario.CaminhoInicial)
	assert.True(t, armazem.sess.Autenticada(), "sessão deve ficar persistida")
}

func TestLoginCredenciaisInvalidasNaoDerrubaSessaoExistente(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Cliente)
	up := novoUpstreamFake()
	up.erros["POST /auth/login"] = assert.AnError
	app := novaAppTeste(t, armazem, up)

	resp := fazer(t, app, "POST", "/login", dto.LoginRequest{Email: "b@m.com", Senha: "errada"})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.True(t, armazem.sess.Autenticada(), "falha de login preserva a sessão anterior")
}

func TestLogoutLimpaSessao(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Cliente)
	app := novaAppTeste(t, armazem, novoUpstreamFake())

	resp := fazer(t, app, "POST", "/logout", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.False(t, armazem.sess.Autenticada())

	resp = fazer(t, app, "GET", "/", nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestMeSemSessaoDevolve401(t *testing.T) {
	app := novaAppTeste(t, novoArmazemFake(), novoUpstreamFake())
	resp := fazer(t, app, "GET", "/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestFeedPaginadoParaCliente(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Cliente)
	up := novoUpstreamFake()
	up.respostas["GET /evento?"] = map[string]interface{}{
		"items": []entity.Evento{{ID: "1", Nome: "Noite do Forró"}},
		"total": 13,
	}
	app := novaAppTeste(t, armazem, up)

	resp := fazer(t, app, "GET", "/?page=2&pageSize=5", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.PageResponse[entity.Evento]
	corpoJSON(t, resp, &out)
	assert.Equal(t, 13, out.Total)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 5, out.PageSize)
}

func TestCaixaDePropostasDoArtista(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Artista)
	up := novoUpstreamFake()
	up.respostas["GET /propostaArtista?"] = map[string]interface{}{
		"items": []entity.Proposta{{ID: "5", Status: entity.PropostaPendente}},
		"total": 1,
	}
	app := novaAppTeste(t, armazem, up)

	resp := fazer(t, app, "GET", "/propostas", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.PageResponse[entity.Proposta]
	corpoJSON(t, resp, &out)
	require.Len(t, out.Items, 1)
	assert.Equal(t, entity.PropostaPendente, out.Items[0].Status)
}

func TestDecidirPropostaAceita(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Artista)
	up := novoUpstreamFake()
	up.respostas["GET /propostaArtista/5"] = entity.Proposta{
		ID: "5", EventoID: "9", ArtistaID: "3", Status: entity.PropostaPendente,
	}
	app := novaAppTeste(t, armazem, up)

	resp := fazer(t, app, "PUT", "/propostas/5/decisao", dto.DecisaoPropostaRequest{Status: entity.PropostaAceita})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out entity.Proposta
	corpoJSON(t, resp, &out)
	assert.Equal(t, entity.PropostaAceita, out.Status)
}

func TestClienteNaoTemCaixaDePropostas(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Cliente)
	app := novaAppTeste(t, armazem, novoUpstreamFake())

	// "/propostas" não está no conjunto do cliente: a guarda redireciona
	resp := fazer(t, app, "GET", "/propostas", nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestTabelasSomenteAdmin(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Administrador)
	up := novoUpstreamFake()
	up.respostas["GET /artista"] = []map[string]interface{}{
		{"id": "1", "nome": "Zeca"},
		{"id": "2", "nome": "Ana"},
	}
	app := novaAppTeste(t, armazem, up)

	resp := fazer(t, app, "GET", "/tabelas/artista?sort=nome:asc", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.PageResponse[map[string]interface{}]
	corpoJSON(t, resp, &out)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Ana", out.Items[0]["nome"])
}

func TestTabelaDesconhecidaDevolve404(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Administrador)
	app := novaAppTeste(t, armazem, novoUpstreamFake())

	resp := fazer(t, app, "GET", "/tabelas/segredos", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPerfilAtualizaSessaoLocal(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Cliente)
	app := novaAppTeste(t, armazem, novoUpstreamFake())

	resp := fazer(t, app, "PUT", "/perfil", dto.AtualizarPerfilRequest{Nome: "Novo Nome"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Novo Nome", armazem.sess.Usuario.Nome, "edição aceita reflete na sessão persistida")
}

func TestAvatarCacheLocal(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Cliente)
	app := novaAppTeste(t, armazem, novoUpstreamFake())

	resp := fazer(t, app, "PUT", "/perfil/avatar", dto.AvatarRequest{DataURL: "data:image/png;base64,AAA"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = fazer(t, app, "GET", "/perfil/avatar", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.AvatarResponse
	corpoJSON(t, resp, &out)
	assert.Equal(t, "data:image/png;base64,AAA", out.DataURL)
}

func TestAvatarRejeitaDataURLNaoImagem(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Cliente)
	app := novaAppTeste(t, armazem, novoUpstreamFake())

	resp := fazer(t, app, "PUT", "/perfil/avatar", dto.AvatarRequest{DataURL: "javascript:alert(1)"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRelatorioPDF(t *testing.T) {
	armazem := novoArmazemFake()
	abrirSessao(armazem, papel.Administrador)
	up := novoUpstreamFake()
	up.respostas["GET /relatorios/eventos-por-casa"] = dto.RelatorioDTO{
		Titulo:  "Eventos por casa",
		Colunas: []string{"Casa", "Eventos"},
		Linhas:  [][]string{{"Armazém", "4"}},
	}
	app := novaAppTeste(t, armazem, up)

	resp := fazer(t, app, "GET", "/relatorios/eventos-por-casa/pdf", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestRequestIDPropagado(t *testing.T) {
	app := novaAppTeste(t, novoArmazemFake(), novoUpstreamFake())

	req := httptest.NewRequest("GET", "/login", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "rid-1", resp.Header.Get("X-Request-ID"))

	resp = fazer(t, app, "GET", "/login", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"), "sem header o gateway gera um id")
}
