package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/eventos"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/paginacao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/painel"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/propostas"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/relatorio"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/rotas"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/sessao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/tabelas"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	SessaoUC    *sessao.Servico
	EventosUC   *eventos.Servico
	PropostasUC *propostas.Servico
	PainelUC    *painel.Servico
	TabelasUC   *tabelas.Servico
	RelatorioUC *relatorio.Servico
	Guarda      *rotas.Guarda

	// Upstream atende os repasses diretos (registro, edição de perfil).
	Upstream sessao.ClienteHTTP
	// CachePropostas guarda as janelas da caixa de propostas.
	CachePropostas paginacao.Cache
	// Avatars cache local de avatar.
	Avatars ArmazemAvatar
}

// Router registra as rotas do gateway. As rotas de sessão ficam fora da
// guarda (logout e identidade precisam funcionar em qualquer estado); todas
// as páginas passam pela guarda, que redireciona em vez de responder 403.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())

	sessaoHandler := NewSessaoHandler(deps.SessaoUC, deps.Upstream)
	app.Post("/login", sessaoHandler.Login)
	app.Post("/register", sessaoHandler.Registro)
	app.Post("/logout", sessaoHandler.Logout)
	app.Get("/me", sessaoHandler.Me)

	// aliases no prefixo /auth, espelhando o serviço de usuários
	app.Post("/auth/login", sessaoHandler.Login)
	app.Post("/auth/register", sessaoHandler.Registro)
	app.Post("/auth/logout", sessaoHandler.Logout)

	paginas := app.Group("/", GuardaMiddleware(deps.Guarda, deps.SessaoUC))

	// Públicas
	paginas.Get("/login", sessaoHandler.PaginaLogin)
	paginas.Get("/register", sessaoHandler.PaginaRegistro)

	// Vitrine (cliente) e detalhe de evento (todos os papéis)
	eventosHandler := NewEventosHandler(deps.EventosUC)
	paginas.Get("/", eventosHandler.Feed)
	paginas.Get("/evento/:id", eventosHandler.Detalhe)

	// Dashboards
	painelHandler := NewPainelHandler(deps.PainelUC)
	paginas.Get("/dashboard-artista", painelHandler.Artista)
	paginas.Get("/dashboard-casa", painelHandler.Casa)
	paginas.Get("/dashboard-admin", painelHandler.Admin)

	// Caixa de propostas (artista e casa)
	propostasHandler := NewPropostasHandler(deps.PropostasUC, deps.Upstream, deps.CachePropostas)
	paginas.Get("/propostas", propostasHandler.Listar)
	paginas.Post("/propostas", propostasHandler.Criar)
	paginas.Put("/propostas/:id/decisao", propostasHandler.Decidir)

	// Perfil
	perfilHandler := NewPerfilHandler(deps.SessaoUC, deps.Upstream, deps.Avatars)
	paginas.Get("/perfil", perfilHandler.Ver)
	paginas.Put("/perfil", perfilHandler.Atualizar)
	paginas.Get("/perfil/avatar", perfilHandler.Avatar)
	paginas.Put("/perfil/avatar", perfilHandler.SalvarAvatar)

	// Administração
	tabelasHandler := NewTabelasHandler(deps.TabelasUC)
	paginas.Get("/tabelas", tabelasHandler.Catalogo)
	paginas.Get("/tabelas/:recurso", tabelasHandler.Listar)
	paginas.Post("/tabelas/:recurso", tabelasHandler.Criar)
	paginas.Get("/tabelas/:recurso/:id", tabelasHandler.Buscar)
	paginas.Put("/tabelas/:recurso/:id", tabelasHandler.Atualizar)
	paginas.Delete("/tabelas/:recurso/:id", tabelasHandler.Excluir)

	relatoriosHandler := NewRelatoriosHandler(deps.RelatorioUC)
	paginas.Get("/relatorios/:nome", relatoriosHandler.Ver)
	paginas.Get("/relatorios/:nome/pdf", relatoriosHandler.PDF)
}
