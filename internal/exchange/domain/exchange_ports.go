package domain

import (
	"context"
	"errors"
)

// ---------- Errores de dominio ----------
var (
	ErrUnknownOrigin     = errors.New("unknown origin")
	ErrUnknownRoutingKey = errors.New("unknown routing key")
	ErrEncodeEnvelope    = errors.New("envelope could not be encoded")
)

// ---------- Interfaces (Ports) ----------

// Connection es la capacidad mínima que necesitamos del broker pub/sub.
// Devuelve cuántos suscriptores recibieron el mensaje.
type Connection interface {
	Publish(ctx context.Context, channel string, message string) (int64, error)
}

// Publisher reenvía eventos de la aplicación al exchange.
// data puede ser nil.
type Publisher interface {
	Publish(ctx context.Context, origin Origin, routingKey RoutingKey, data map[string]interface{}) error
}
