package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado       = errors.New("recurso não encontrado")
	ErrCredenciaisInvalidas = errors.New("e-mail ou senha inválidos")
	ErrNaoAutenticado      = errors.New("não autenticado")
	ErrAcessoNegado        = errors.New("acesso negado")
	ErrRespostaMalformada  = errors.New("resposta do serviço sem token")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrSemSessao           = errors.New("nenhuma sessão ativa")
)
