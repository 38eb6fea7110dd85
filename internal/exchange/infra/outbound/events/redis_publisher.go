package events

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/davicafu/redisdb-exchange/internal/exchange/domain"
)

const (
	logSource = "redisdb-exchange-plugin-publisher"
	logType   = "publish"
)

// RedisPublisher envuelve cada evento en un Envelope y lo publica en el canal del exchange.
// No reintenta ni captura errores del broker: la conexión la gestiona quien la creó.
type RedisPublisher struct {
	senderID   string
	channel    string
	connection domain.Connection
	log        *zap.Logger
}

func NewRedisPublisher(senderID, channel string, connection domain.Connection, log *zap.Logger) *RedisPublisher {
	return &RedisPublisher{
		senderID:   senderID,
		channel:    channel,
		connection: connection,
		log:        log,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, origin domain.Origin, routingKey domain.RoutingKey, data map[string]interface{}) error {
	payload, err := json.Marshal(domain.NewEnvelope(origin, routingKey, p.senderID, data))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrEncodeEnvelope, err)
	}

	consumers, err := p.connection.Publish(ctx, p.channel, string(payload))
	if err != nil {
		return err
	}

	p.log.Debug("Successfully published message via RedisDB exchange",
		zap.Int64("consumers", consumers),
		zap.String("routing_key", routingKey.String()),
		zap.String("source", logSource),
		zap.String("type", logType),
	)
	return nil
}

// Verificación estática
var _ domain.Publisher = (*RedisPublisher)(nil)
