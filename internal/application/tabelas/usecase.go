// Package tabelas é a administração bruta dos cadastros: o serviço upstream é
// tratado como fonte completa, a coleção inteira é trazida e a filtragem, a
// ordenação e o fatiamento acontecem localmente no gateway. Só os recursos da
// lista branca são alcançáveis.
package tabelas

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/paginacao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain"
)

// recursos administráveis, na ordem do menu. A chave é o segmento da URL e o
// valor o rótulo de exibição.
var recursos = []Recurso{
	{Nome: "cliente", Rotulo: "Clientes"},
	{Nome: "artista", Rotulo: "Artistas"},
	{Nome: "casaDeShow", Rotulo: "Casas de Show"},
	{Nome: "evento", Rotulo: "Eventos"},
	{Nome: "usuarios", Rotulo: "Usuários"},
	{Nome: "adm", Rotulo: "Administradores"},
}

// Recurso entrada do catálogo de tabelas administráveis.
type Recurso struct {
	Nome   string `json:"nome"`
	Rotulo string `json:"rotulo"`
}

// Registro linha genérica de qualquer tabela. O formato das colunas varia por
// recurso, então o registro fica livre.
type Registro = map[string]interface{}

// ClienteHTTP contrato mínimo do cliente upstream.
type ClienteHTTP interface {
	Fazer(ctx context.Context, metodo, caminho string, corpo, saida interface{}) error
}

// Servico caso de uso das tabelas administrativas.
type Servico struct {
	http ClienteHTTP
}

// NovoServico constrói o caso de uso.
func NovoServico(http ClienteHTTP) *Servico {
	return &Servico{http: http}
}

// Recursos devolve o catálogo de tabelas, ordenado pelo rótulo.
func (s *Servico) Recursos() []Recurso {
	out := make([]Recurso, len(recursos))
	copy(out, recursos)
	sort.Slice(out, func(i, j int) bool { return out[i].Rotulo < out[j].Rotulo })
	return out
}

func validarRecurso(nome string) error {
	for _, r := range recursos {
		if r.Nome == nome {
			return nil
		}
	}
	return fmt.Errorf("%w: tabela desconhecida %q", domain.ErrNaoEncontrado, nome)
}

// Listar traz a coleção inteira do recurso e aplica filtro, ordenação e
// fatiamento localmente.
func (s *Servico) Listar(ctx context.Context, recurso string, c paginacao.Consulta) (paginacao.Estado[Registro], error) {
	if err := validarRecurso(recurso); err != nil {
		return paginacao.Estado[Registro]{}, err
	}
	var todos []Registro
	if err := s.http.Fazer(ctx, http.MethodGet, "/"+recurso, nil, &todos); err != nil {
		return paginacao.Estado[Registro]{}, fmt.Errorf("listar %s: %w", recurso, err)
	}
	prov := paginacao.NovoLocal(todos)
	prov.Consultar(ctx, c)
	return prov.Estado(), nil
}

// Buscar devolve um registro pelo id.
func (s *Servico) Buscar(ctx context.Context, recurso, id string) (Registro, error) {
	if err := validarRecurso(recurso); err != nil {
		return nil, err
	}
	var reg Registro
	if err := s.http.Fazer(ctx, http.MethodGet, "/"+recurso+"/"+id, nil, &reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Criar insere um registro novo no recurso.
func (s *Servico) Criar(ctx context.Context, recurso string, reg Registro) (Registro, error) {
	if err := validarRecurso(recurso); err != nil {
		return nil, err
	}
	var criado Registro
	if err := s.http.Fazer(ctx, http.MethodPost, "/"+recurso, reg, &criado); err != nil {
		return nil, fmt.Errorf("criar em %s: %w", recurso, err)
	}
	return criado, nil
}

// Atualizar substitui um registro existente.
func (s *Servico) Atualizar(ctx context.Context, recurso, id string, reg Registro) (Registro, error) {
	if err := validarRecurso(recurso); err != nil {
		return nil, err
	}
	var atualizado Registro
	if err := s.http.Fazer(ctx, http.MethodPut, "/"+recurso+"/"+id, reg, &atualizado); err != nil {
		return nil, fmt.Errorf("atualizar %s/%s: %w", recurso, id, err)
	}
	return atualizado, nil
}

// Excluir remove um registro.
func (s *Servico) Excluir(ctx context.Context, recurso, id string) error {
	if err := validarRecurso(recurso); err != nil {
		return err
	}
	if err := s.http.Fazer(ctx, http.MethodDelete, "/"+recurso+"/"+id, nil, nil); err != nil {
		return fmt.Errorf("excluir %s/%s: %w", recurso, id, err)
	}
	return nil
}
