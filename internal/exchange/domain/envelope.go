package domain

// ExchangeChannel es el canal pub/sub por defecto del exchange.
const ExchangeChannel = "fb_exchange"

// Envelope es la estructura fija que viaja por el canal.
// Todos los campos se serializan siempre; Data puede ir como null.
type Envelope struct {
	RoutingKey RoutingKey             `json:"routing_key"`
	Origin     Origin                 `json:"origin"`
	SenderID   string                 `json:"sender_id"`
	Data       map[string]interface{} `json:"data"`
}

func NewEnvelope(origin Origin, routingKey RoutingKey, senderID string, data map[string]interface{}) Envelope {
	return Envelope{
		RoutingKey: routingKey,
		Origin:     origin,
		SenderID:   senderID,
		Data:       data,
	}
}
