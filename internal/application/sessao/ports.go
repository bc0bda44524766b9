package sessao

import (
	"context"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
)

// Armazem contrato explícito da sessão persistida. Substitui a leitura
// ambiente de um storage global por um objeto injetável, com dublê trivial
// para testes.
type Armazem interface {
	Carregar() (entity.Sessao, error)
	Salvar(entity.Sessao) error
	Limpar() error
}

// ClienteHTTP contrato mínimo que o caso de uso precisa do cliente upstream.
// Implementado por *upstream.Cliente; a interface existe para os testes
// trocarem a rede por um dublê.
type ClienteHTTP interface {
	Fazer(ctx context.Context, metodo, caminho string, corpo, saida interface{}) error
}
