package domain

import "fmt"

// Origin identifica el módulo o plugin que emitió el evento.
type Origin string

// Módulos
const (
	OriginDevicesModule  Origin = "com.fastybird.devices-module"
	OriginTriggersModule Origin = "com.fastybird.triggers-module"
	OriginUIModule       Origin = "com.fastybird.ui-module"
	OriginAuthModule     Origin = "com.fastybird.auth-module"
	OriginAccountsModule Origin = "com.fastybird.accounts-module"
)

// Plugins
const (
	OriginRedisDbExchangePlugin  Origin = "com.fastybird.redisdb-exchange-plugin"
	OriginWsExchangePlugin       Origin = "com.fastybird.ws-exchange-plugin"
	OriginRabbitMqExchangePlugin Origin = "com.fastybird.rabbitmq-exchange-plugin"
)

var knownOrigins = map[Origin]struct{}{
	OriginDevicesModule:          {},
	OriginTriggersModule:         {},
	OriginUIModule:               {},
	OriginAuthModule:             {},
	OriginAccountsModule:         {},
	OriginRedisDbExchangePlugin:  {},
	OriginWsExchangePlugin:       {},
	OriginRabbitMqExchangePlugin: {},
}

// IsValid indica si el origen pertenece al conjunto conocido.
func (o Origin) IsValid() bool {
	_, ok := knownOrigins[o]
	return ok
}

func (o Origin) String() string {
	return string(o)
}

// ParseOrigin valida un origen recibido como texto plano.
func ParseOrigin(s string) (Origin, error) {
	o := Origin(s)
	if !o.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOrigin, s)
	}
	return o, nil
}
