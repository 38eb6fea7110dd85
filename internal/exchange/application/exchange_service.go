package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/davicafu/redisdb-exchange/internal/exchange/domain"
)

// ExchangeService valida la entrada sin tipar (HTTP, CLI) antes de publicar.
type ExchangeService struct {
	publisher domain.Publisher
	log       *zap.Logger
}

func NewExchangeService(publisher domain.Publisher, log *zap.Logger) *ExchangeService {
	return &ExchangeService{publisher: publisher, log: log}
}

// Publish rechaza orígenes y routing keys desconocidos sin tocar el publisher.
// Los errores del publisher se devuelven tal cual.
func (s *ExchangeService) Publish(ctx context.Context, origin, routingKey string, data map[string]interface{}) error {
	o, err := domain.ParseOrigin(origin)
	if err != nil {
		s.log.Warn("Origen rechazado", zap.String("origin", origin))
		return err
	}

	k, err := domain.ParseRoutingKey(routingKey)
	if err != nil {
		s.log.Warn("Routing key rechazada", zap.String("routing_key", routingKey))
		return err
	}

	return s.publisher.Publish(ctx, o, k, data)
}
