// Package paginacao oferece uma visão uniforme {itens, total, página,
// carregando, erro} sobre duas fontes: uma coleção em memória (modo local, com
// busca e ordenação no cliente) ou um endpoint paginado (modo remoto, com cache
// de resultados por tupla de consulta). É o provedor que alimenta todas as
// listagens do gateway.
package paginacao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrSemBuscador indica modo remoto construído sem função de busca: erro de
// programação no ponto de uso, não condição de runtime.
var ErrSemBuscador = errors.New("paginacao: buscador não fornecido")

// Consulta tupla completa de uma consulta paginada.
type Consulta struct {
	Pagina    int    // ≥ 1
	TamPagina int    // > 0
	Busca     string // texto livre, opcional
	Ordenacao string // "campo:asc" | "campo:desc", opcional
}

// Chave compõe a chave de cache da tupla. Usada no modo remoto.
func (c Consulta) Chave() string {
	return fmt.Sprintf("p=%d&t=%d&q=%s&o=%s", c.Pagina, c.TamPagina, c.Busca, c.Ordenacao)
}

// Janela página de itens + total da coleção (pré-fatiamento).
type Janela[T any] struct {
	Itens []T `json:"itens"`
	Total int `json:"total"`
}

// Buscador callback do modo remoto. Recebe a consulta completa e devolve a
// janela correspondente; o contexto permite cancelar no transporte.
type Buscador[T any] func(ctx context.Context, c Consulta) (Janela[T], error)

// Cache armazenamento chave-valor para janelas remotas. Implementações em
// infrastructure/cache (memória e redis).
type Cache interface {
	// Get tenta popular dest (ponteiro) com o valor da chave.
	// (true, nil) em hit; (false, nil) em miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set serializa e guarda o valor com TTL em segundos (0 = sem expiração).
	Set(ctx context.Context, key string, val interface{}, ttlSecs int) error
	// Delete remove a chave.
	Delete(ctx context.Context, key string) error
}

// Estado visão corrente do provedor, devolvida por cópia.
type Estado[T any] struct {
	Pagina     int
	TamPagina  int
	Itens      []T
	Total      int
	Carregando bool
	Erro       string
}

// Provedor janela paginada sobre dados locais ou remotos.
//
// Staleness: cada Consultar recebe uma geração monotônica; um resultado só é
// aplicado se a sua geração ainda for a corrente no momento da resolução.
// Resultados de consultas supersedidas são descartados, nunca visíveis.
type Provedor[T any] struct {
	dadosLocais []T
	buscador    Buscador[T]
	cache       Cache
	remoto      bool

	geracao atomic.Uint64

	mu     sync.Mutex
	estado Estado[T]
}

// NovoLocal constrói o provedor sobre uma coleção em memória.
func NovoLocal[T any](dados []T) *Provedor[T] {
	return &Provedor[T]{dadosLocais: dados}
}

// NovoRemoto constrói o provedor sobre um endpoint paginado. O cache tem o
// ciclo de vida da instância: sem eviction nem TTL, aceitável porque morre com
// a página dona do provedor.
func NovoRemoto[T any](buscador Buscador[T], cache Cache) *Provedor[T] {
	return &Provedor[T]{buscador: buscador, cache: cache, remoto: true}
}

// Estado devolve uma cópia do estado visível.
func (p *Provedor[T]) Estado() Estado[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.estado
}

// TotalPaginas política numérica: max(1, ceil(total/tam)).
func TotalPaginas(total, tamPagina int) int {
	if tamPagina <= 0 {
		return 1
	}
	n := (total + tamPagina - 1) / tamPagina
	if n < 1 {
		return 1
	}
	return n
}

// Consultar recomputa a janela para a consulta dada. Páginas fora de
// [1, TotalPaginas] conhecidas são no-op (página visível inalterada, nenhuma
// busca disparada). Erros não propagam: viram Estado.Erro com Carregando limpo.
func (p *Provedor[T]) Consultar(ctx context.Context, c Consulta) {
	if c.TamPagina <= 0 {
		c.TamPagina = 10
	}
	if p.rejeitaPagina(c) {
		return
	}

	gen := p.geracao.Add(1)

	p.mu.Lock()
	p.estado.Carregando = true
	p.estado.Erro = ""
	p.mu.Unlock()

	var janela Janela[T]
	var err error
	if p.remoto {
		janela, err = p.consultarRemoto(ctx, c)
	} else {
		janela = p.consultarLocal(c)
	}

	p.aplicar(gen, c, janela, err)
}

// rejeitaPagina aplica a política de borda. No modo remoto o total só é
// conhecido depois da primeira resolução; antes disso apenas pagina ≥ 1 é
// exigido.
func (p *Provedor[T]) rejeitaPagina(c Consulta) bool {
	if c.Pagina < 1 {
		return true
	}
	p.mu.Lock()
	temEstado := p.estado.Pagina > 0
	total := p.estado.Total
	p.mu.Unlock()

	if !p.remoto {
		total = len(p.filtrar(c.Busca))
		temEstado = true
	}
	return temEstado && c.Pagina > TotalPaginas(total, c.TamPagina)
}

// aplicar grava o resultado apenas se a geração ainda é a corrente
// (last-write-wins por contador, não por flag booleana).
func (p *Provedor[T]) aplicar(gen uint64, c Consulta, janela Janela[T], err error) {
	if gen != p.geracao.Load() {
		return // consulta supersedida: resultado descartado
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.estado.Carregando = false
	if err != nil {
		p.estado.Erro = err.Error()
		return
	}
	p.estado.Pagina = c.Pagina
	p.estado.TamPagina = c.TamPagina
	p.estado.Itens = janela.Itens
	p.estado.Total = janela.Total
}

// ── Modo local ────────────────────────────────────────────────────────────────

func (p *Provedor[T]) consultarLocal(c Consulta) Janela[T] {
	filtrados := p.filtrar(c.Busca)
	ordenar(filtrados, c.Ordenacao)

	total := len(filtrados)
	inicio := (c.Pagina - 1) * c.TamPagina
	fim := inicio + c.TamPagina
	if inicio > total {
		inicio = total
	}
	if fim > total {
		fim = total
	}
	return Janela[T]{Itens: filtrados[inicio:fim], Total: total}
}

// filtrar retém elementos cuja serialização JSON inteira contém o texto de
// busca (minúsculas, aparado) como substring. Busca "em tudo" deliberadamente
// grosseira, não por campo.
func (p *Provedor[T]) filtrar(busca string) []T {
	busca = strings.ToLower(strings.TrimSpace(busca))
	if busca == "" {
		return append([]T(nil), p.dadosLocais...)
	}
	var filtrados []T
	for _, item := range p.dadosLocais {
		b, err := json.Marshal(item)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(string(b)), busca) {
			filtrados = append(filtrados, item)
		}
	}
	return filtrados
}

// ordenar aplica ordenação estável por campo ("campo:asc" | "campo:desc").
// Valores ausentes/nulos de qualquer lado são tratados como iguais (sem
// reordenação entre eles).
func ordenar[T any](itens []T, ordenacao string) {
	campo, desc, ok := parseOrdenacao(ordenacao)
	if !ok {
		return
	}
	sort.SliceStable(itens, func(i, j int) bool {
		a, okA := valorCampo(itens[i], campo)
		b, okB := valorCampo(itens[j], campo)
		if !okA || !okB || a == nil || b == nil {
			return false
		}
		menor := comparar(a, b)
		if desc {
			return menor > 0
		}
		return menor < 0
	})
}

func parseOrdenacao(s string) (campo string, desc bool, ok bool) {
	if s == "" {
		return "", false, false
	}
	partes := strings.SplitN(s, ":", 2)
	campo = partes[0]
	if campo == "" {
		return "", false, false
	}
	if len(partes) == 2 && strings.EqualFold(partes[1], "desc") {
		desc = true
	}
	return campo, desc, true
}

// valorCampo lê o campo nomeado via serialização JSON do elemento, respeitando
// as tags json das entidades.
func valorCampo(item interface{}, campo string) (interface{}, bool) {
	b, err := json.Marshal(item)
	if err != nil {
		return nil, false
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, false
	}
	v, ok := m[campo]
	return v, ok
}

// comparar devolve <0, 0 ou >0. Números comparam como float64; o resto compara
// pela forma textual.
func comparar(a, b interface{}) int {
	fa, okA := a.(float64)
	fb, okB := b.(float64)
	if okA && okB {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// ── Modo remoto ───────────────────────────────────────────────────────────────

func (p *Provedor[T]) consultarRemoto(ctx context.Context, c Consulta) (Janela[T], error) {
	if p.buscador == nil {
		return Janela[T]{}, ErrSemBuscador
	}
	chave := c.Chave()
	if p.cache != nil {
		var cached Janela[T]
		hit, err := p.cache.Get(ctx, chave, &cached)
		if err == nil && hit {
			return cached, nil
		}
		// erro de cache não derruba a consulta: segue para o buscador
	}
	janela, err := p.buscador(ctx, c)
	if err != nil {
		return Janela[T]{}, err
	}
	if p.cache != nil {
		_ = p.cache.Set(ctx, chave, janela, 0)
	}
	return janela, nil
}
