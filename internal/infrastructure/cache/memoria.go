// Package cache implementa os backends do cache de paginação remota:
// memória (padrão, escopo da instância) e redis (opcional, compartilhado).
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/paginacao"
)

type itemMemoria struct {
	valor    []byte    // bytes serializados, mesmo contrato do redis
	expiraEm time.Time // zero = sem expiração
}

// Memoria cache em memória com RWMutex. Sem eviction: o ciclo de vida
// acompanha o dono (uma instância de provedor por página montada).
type Memoria struct {
	mu    sync.RWMutex
	itens map[string]itemMemoria
}

// Verificação estática do contrato do provedor.
var _ paginacao.Cache = (*Memoria)(nil)

// NovaMemoria cria o cache em memória vazio.
func NovaMemoria() *Memoria {
	return &Memoria{itens: make(map[string]itemMemoria)}
}

// Get recupera um valor; seguro para uso concorrente.
func (c *Memoria) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.RLock()
	item, ok := c.itens[key]
	c.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if !item.expiraEm.IsZero() && time.Now().After(item.expiraEm) {
		return false, nil // expirado conta como miss
	}
	if err := json.Unmarshal(item.valor, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set serializa e guarda; ttlSecs 0 significa vida do processo.
func (c *Memoria) Set(_ context.Context, key string, val interface{}, ttlSecs int) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	item := itemMemoria{valor: data}
	if ttlSecs > 0 {
		item.expiraEm = time.Now().Add(time.Duration(ttlSecs) * time.Second)
	}
	c.mu.Lock()
	c.itens[key] = item
	c.mu.Unlock()
	return nil
}

// Delete remove a chave.
func (c *Memoria) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.itens, key)
	c.mu.Unlock()
	return nil
}
