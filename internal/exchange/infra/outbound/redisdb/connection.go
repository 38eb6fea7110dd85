package redisdb

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/davicafu/redisdb-exchange/internal/config"
	"github.com/davicafu/redisdb-exchange/internal/exchange/domain"
)

// Connection adapta un *redis.Client ya creado al puerto domain.Connection.
// No abre ni cierra el cliente.
type Connection struct {
	client *redis.Client
}

func NewConnection(client *redis.Client) *Connection {
	return &Connection{client: client}
}

// Publish devuelve el número de suscriptores que recibieron el mensaje.
func (c *Connection) Publish(ctx context.Context, channel string, message string) (int64, error) {
	return c.client.Publish(ctx, channel, message).Result()
}

// NewClient construye el cliente Redis a partir de la configuración.
func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

var _ domain.Connection = (*Connection)(nil)
