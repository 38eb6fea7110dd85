package mocks

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/davicafu/redisdb-exchange/internal/exchange/domain"
)

// MockPublisher simula un publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, origin domain.Origin, routingKey domain.RoutingKey, data map[string]interface{}) error {
	args := m.Called(ctx, origin, routingKey, data)
	return args.Error(0)
}

// PublishedMessage es una llamada registrada por FakeConnection.
type PublishedMessage struct {
	Channel string
	Message string
}

// FakeConnection es una conexión en memoria, segura para concurrencia.
// Devuelve Consumers (o Err) en cada Publish y guarda lo recibido.
type FakeConnection struct {
	Consumers int64
	Err       error

	mu       sync.Mutex
	messages []PublishedMessage
}

func (c *FakeConnection) Publish(ctx context.Context, channel string, message string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, PublishedMessage{Channel: channel, Message: message})
	if c.Err != nil {
		return 0, c.Err
	}
	return c.Consumers, nil
}

// Messages devuelve una copia de los mensajes recibidos.
func (c *FakeConnection) Messages() []PublishedMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]PublishedMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Verificación estática
var _ domain.Publisher = (*MockPublisher)(nil)
var _ domain.Connection = (*FakeConnection)(nil)
