package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Servicos ServicosConfig
	Sessao   SessaoConfig
	Cache    CacheConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ServicosConfig endereços dos três microsserviços do Night Out e a API key
// estática exigida por todos eles no header x-api-key.
type ServicosConfig struct {
	UsuariosURL   string // serviço de usuários (auth + cadastros): base padrão
	EventosURL    string // serviço de eventos e propostas
	RelatoriosURL string // serviço de relatórios (somente leitura)
	APIKey        string
}

// SessaoConfig configuração da sessão persistida localmente.
type SessaoConfig struct {
	ArquivoDB string // caminho do sqlite que guarda sessão e avatares
}

// CacheConfig backend do cache de paginação remota.
// Backend "memory" (padrão, escopo do processo) ou "redis".
type CacheConfig struct {
	Backend   string
	RedisAddr string
	RedisDB   int
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, USERS_API_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existe

	// Também tenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "night-out-bff"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Servicos: ServicosConfig{
			UsuariosURL:   getString(v, "USERS_API_URL", "http://localhost:3001"),
			EventosURL:    getString(v, "EVENTS_API_URL", "http://localhost:3002"),
			RelatoriosURL: getString(v, "REPORTS_API_URL", "http://localhost:3003"),
			APIKey:        getString(v, "API_KEY", ""),
		},
		Sessao: SessaoConfig{
			ArquivoDB: getString(v, "SESSION_DB_PATH", "nightout.db"),
		},
		Cache: CacheConfig{
			Backend:   getString(v, "CACHE_BACKEND", "memory"),
			RedisAddr: getString(v, "REDIS_ADDR", "localhost:6379"),
			RedisDB:   getInt(v, "REDIS_DB", 0),
		},
	}

	if cfg.Servicos.APIKey == "" {
		return nil, fmt.Errorf("config: API_KEY é obrigatória (header x-api-key dos serviços)")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
