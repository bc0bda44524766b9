// Package papel centraliza o tipo de usuário do Night Out e a sua
// canonicalização. Os serviços devolvem o papel como texto livre (acentuado,
// caixa mista, sinônimos como "USUÁRIO" ou "ESTABELECIMENTO"), e toda decisão
// de rota, menu e permissão precisa resolver esse texto para o MESMO valor.
// Por isso a normalização vive aqui, num único lugar, e é importada por todos
// os pontos de consulta.
package papel

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Papel tipo de usuário canônico.
type Papel string

const (
	Cliente       Papel = "CLIENTE"
	Artista       Papel = "ARTISTA"
	CasaShow      Papel = "CASASHOW"
	Administrador Papel = "ADMINISTRADOR"
)

// Todos os papéis reconhecidos, na ordem de exibição.
var Todos = []Papel{Cliente, Artista, CasaShow, Administrador}

// sinonimos mapeia variantes já canonicalizadas (sem acento, maiúsculas) para o
// papel correspondente. Valores fora da tabela caem no padrão Cliente.
var sinonimos = map[string]Papel{
	"CLIENTE":         Cliente,
	"USUARIO":         Cliente,
	"USER":            Cliente,
	"ARTISTA":         Artista,
	"MUSICO":          Artista,
	"CASASHOW":        CasaShow,
	"CASA DE SHOW":    CasaShow,
	"CASA_DE_SHOW":    CasaShow,
	"CASADESHOW":      CasaShow,
	"ESTABELECIMENTO": CasaShow,
	"ADMINISTRADOR":   Administrador,
	"ADMIN":           Administrador,
	"ADM":             Administrador,
}

// removeAcentos decompõe em NFD e descarta as marcas combinantes (Mn).
var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar converte um tipo de usuário em texto livre para o papel canônico.
// Total: nunca retorna erro nem valor fora do conjunto; entradas vazias ou não
// reconhecidas resolvem para Cliente.
func Normalizar(tipo string) Papel {
	s, _, err := transform.String(removeAcentos, strings.TrimSpace(tipo))
	if err != nil {
		// transform só falha com entradas inválidas em UTF-8; ainda assim o
		// contrato é total, então seguimos com o texto original.
		s = strings.TrimSpace(tipo)
	}
	s = strings.ToUpper(s)
	if p, ok := sinonimos[s]; ok {
		return p
	}
	return Cliente
}

// CaminhoInicial devolve a rota de destino do papel após autenticação.
func (p Papel) CaminhoInicial() string {
	switch p {
	case Artista:
		return "/dashboard-artista"
	case CasaShow:
		return "/dashboard-casa"
	case Administrador:
		return "/dashboard-admin"
	default:
		return "/"
	}
}

// CaminhosPermitidos devolve os padrões de rota visíveis para o papel.
// O caminho inicial do papel está sempre incluído no conjunto.
func (p Papel) CaminhosPermitidos() []string {
	switch p {
	case Artista:
		return []string{
			"/dashboard-artista", "/evento/:id", "/propostas",
			"/propostas/:id/decisao", "/perfil", "/perfil/avatar",
		}
	case CasaShow:
		return []string{
			"/dashboard-casa", "/evento/:id", "/propostas",
			"/propostas/:id/decisao", "/perfil", "/perfil/avatar",
		}
	case Administrador:
		return []string{
			"/dashboard-admin", "/tabelas", "/tabelas/:recurso",
			"/tabelas/:recurso/:id", "/relatorios/:nome",
			"/relatorios/:nome/pdf", "/evento/:id", "/perfil", "/perfil/avatar",
		}
	default:
		return []string{"/", "/evento/:id", "/perfil", "/perfil/avatar"}
	}
}

// CaminhosPublicos rotas acessíveis sem sessão.
func CaminhosPublicos() []string {
	return []string{"/login", "/register"}
}

// CaminhoLogin rota de autenticação, destino de quem não tem sessão.
const CaminhoLogin = "/login"
