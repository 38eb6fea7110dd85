package domain

import "fmt"

// RoutingKey identifica el tipo semántico del evento. Los suscriptores filtran por ella.
type RoutingKey string

// Entidades
const (
	DeviceCreated RoutingKey = "fb.bus.entity.created.device"
	DeviceUpdated RoutingKey = "fb.bus.entity.updated.device"
	DeviceDeleted RoutingKey = "fb.bus.entity.deleted.device"

	DevicePropertyCreated RoutingKey = "fb.bus.entity.created.device.property"
	DevicePropertyUpdated RoutingKey = "fb.bus.entity.updated.device.property"
	DevicePropertyDeleted RoutingKey = "fb.bus.entity.deleted.device.property"

	ChannelCreated RoutingKey = "fb.bus.entity.created.channel"
	ChannelUpdated RoutingKey = "fb.bus.entity.updated.channel"
	ChannelDeleted RoutingKey = "fb.bus.entity.deleted.channel"

	ChannelPropertyCreated RoutingKey = "fb.bus.entity.created.channel.property"
	ChannelPropertyUpdated RoutingKey = "fb.bus.entity.updated.channel.property"
	ChannelPropertyDeleted RoutingKey = "fb.bus.entity.deleted.channel.property"

	TriggerCreated RoutingKey = "fb.bus.entity.created.trigger"
	TriggerUpdated RoutingKey = "fb.bus.entity.updated.trigger"
	TriggerDeleted RoutingKey = "fb.bus.entity.deleted.trigger"

	TriggerActionCreated RoutingKey = "fb.bus.entity.created.trigger.action"
	TriggerActionUpdated RoutingKey = "fb.bus.entity.updated.trigger.action"
	TriggerActionDeleted RoutingKey = "fb.bus.entity.deleted.trigger.action"

	TriggerConditionCreated RoutingKey = "fb.bus.entity.created.trigger.condition"
	TriggerConditionUpdated RoutingKey = "fb.bus.entity.updated.trigger.condition"
	TriggerConditionDeleted RoutingKey = "fb.bus.entity.deleted.trigger.condition"
)

// Datos
const (
	DevicePropertyData  RoutingKey = "fb.bus.data.device.property"
	ChannelPropertyData RoutingKey = "fb.bus.data.channel.property"
)

var knownRoutingKeys = map[RoutingKey]struct{}{
	DeviceCreated: {}, DeviceUpdated: {}, DeviceDeleted: {},
	DevicePropertyCreated: {}, DevicePropertyUpdated: {}, DevicePropertyDeleted: {},
	ChannelCreated: {}, ChannelUpdated: {}, ChannelDeleted: {},
	ChannelPropertyCreated: {}, ChannelPropertyUpdated: {}, ChannelPropertyDeleted: {},
	TriggerCreated: {}, TriggerUpdated: {}, TriggerDeleted: {},
	TriggerActionCreated: {}, TriggerActionUpdated: {}, TriggerActionDeleted: {},
	TriggerConditionCreated: {}, TriggerConditionUpdated: {}, TriggerConditionDeleted: {},
	DevicePropertyData: {}, ChannelPropertyData: {},
}

func (k RoutingKey) IsValid() bool {
	_, ok := knownRoutingKeys[k]
	return ok
}

func (k RoutingKey) String() string {
	return string(k)
}

// ParseRoutingKey valida una routing key recibida como texto plano.
func ParseRoutingKey(s string) (RoutingKey, error) {
	k := RoutingKey(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoutingKey, s)
	}
	return k, nil
}
