package rotas

import (
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/papel"
)

// Decisao resultado da avaliação da guarda para um caminho.
// Permitir e RedirecionarPara são mutuamente exclusivos.
type Decisao struct {
	Permitir         bool
	RedirecionarPara string
}

// Guarda aplica a política de navegação por papel. Todos os conjuntos de
// padrões (públicos e permitidos por papel) são compilados na construção.
//
// Regras, reavaliadas a cada requisição (invariante contínua, não redireciono
// único):
//  1. sem sessão + caminho não público        → login
//  2. com sessão + caminho público            → caminho inicial do papel
//  3. com sessão + caminho fora do conjunto   → caminho inicial do papel
type Guarda struct {
	publicos   []rotaCompilada
	permitidos map[papel.Papel][]rotaCompilada
}

// NovaGuarda compila os conjuntos de caminhos de todos os papéis.
// A tabela papel→caminhos vem do pacote papel; falha de compilação aqui é um
// erro de programa (padrão inválido declarado), não condição de runtime.
func NovaGuarda() (*Guarda, error) {
	g := &Guarda{permitidos: make(map[papel.Papel][]rotaCompilada)}
	for _, p := range papel.CaminhosPublicos() {
		rc, err := compilar(Rota{Padrao: p})
		if err != nil {
			return nil, err
		}
		g.publicos = append(g.publicos, rc)
	}
	for _, pp := range papel.Todos {
		for _, caminho := range pp.CaminhosPermitidos() {
			rc, err := compilar(Rota{Padrao: caminho})
			if err != nil {
				return nil, err
			}
			g.permitidos[pp] = append(g.permitidos[pp], rc)
		}
	}
	return g, nil
}

// Avaliar decide se o caminho pode ser servido para o estado (autenticado,
// papel) atual. Nunca erra: a guarda só permite ou redireciona.
func (g *Guarda) Avaliar(autenticado bool, p papel.Papel, caminho string) Decisao {
	publico := casaAlgum(g.publicos, caminho)

	if !autenticado {
		if publico {
			return Decisao{Permitir: true}
		}
		return Decisao{RedirecionarPara: papel.CaminhoLogin}
	}

	if publico {
		return Decisao{RedirecionarPara: p.CaminhoInicial()}
	}

	if casaAlgum(g.permitidos[p], caminho) {
		return Decisao{Permitir: true}
	}
	return Decisao{RedirecionarPara: p.CaminhoInicial()}
}

func casaAlgum(rcs []rotaCompilada, caminho string) bool {
	for _, rc := range rcs {
		if rc.re.MatchString(caminho) {
			return true
		}
	}
	return false
}
