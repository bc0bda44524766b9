package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/paginacao"
)

// Redis backend compartilhado para o cache de paginação. Útil quando várias
// réplicas do gateway atendem o mesmo público e vale amortizar as consultas
// aos serviços entre elas.
type Redis struct {
	client *redis.Client
}

var _ paginacao.Cache = (*Redis)(nil)

// NovoRedis cria o backend sobre um cliente já configurado.
func NovoRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Get recupera e desserializa o valor da chave.
func (c *Redis) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil // miss
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set serializa e guarda com TTL em segundos (0 = sem expiração).
func (c *Redis) Set(ctx context.Context, key string, val interface{}, ttlSecs int) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, time.Duration(ttlSecs)*time.Second).Err()
}

// Delete remove a chave.
func (c *Redis) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
