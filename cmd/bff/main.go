package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/eventos"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/paginacao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/painel"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/propostas"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/relatorio"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/rotas"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/sessao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/tabelas"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/infrastructure/armazem"
	infracache "github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/infrastructure/cache"
	infrapdf "github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/infrastructure/pdf"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/infrastructure/upstream"
	httpRouter "github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/interfaces/http"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/pkg/config"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando gateway")

	loja, err := armazem.Abrir(cfg.Sessao.ArquivoDB)
	if err != nil {
		log.Fatal().Err(err).Str("arquivo", cfg.Sessao.ArquivoDB).Msg("abrir armazém de sessão")
	}
	defer loja.Fechar()

	cliente := upstream.NovoCliente(upstream.Config{
		UsuariosURL:   cfg.Servicos.UsuariosURL,
		EventosURL:    cfg.Servicos.EventosURL,
		RelatoriosURL: cfg.Servicos.RelatoriosURL,
		APIKey:        cfg.Servicos.APIKey,
	}, loja, log)

	// Cache das janelas remotas: memória por padrão, redis quando há mais de
	// uma réplica do gateway.
	var cachePaginas paginacao.Cache
	switch cfg.Cache.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr, DB: cfg.Cache.RedisDB})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("conexão ao redis")
		}
		cachePaginas = infracache.NovoRedis(rdb)
	default:
		cachePaginas = infracache.NovaMemoria()
	}

	guarda, err := rotas.NovaGuarda()
	if err != nil {
		log.Fatal().Err(err).Msg("compilar guarda de rotas")
	}

	sessaoUC := sessao.NovoServico(cliente, loja, log)
	eventosUC := eventos.NovoServico(cliente, cachePaginas, log)
	propostasUC := propostas.NovoServico(cliente, log)
	painelUC := painel.NovoServico(cliente, log)
	tabelasUC := tabelas.NovoServico(cliente)
	relatorioUC := relatorio.NovoServico(cliente, infrapdf.NovoMarotoRelatorio())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Night Out BFF",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessaoUC:       sessaoUC,
		EventosUC:      eventosUC,
		PropostasUC:    propostasUC,
		PainelUC:       painelUC,
		TabelasUC:      tabelasUC,
		RelatorioUC:    relatorioUC,
		Guarda:         guarda,
		Upstream:       cliente,
		CachePropostas: cachePaginas,
		Avatars:        loja,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("gateway parado")
}
