package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		input   string
		want    Origin
		wantErr error
	}{
		{input: "com.fastybird.devices-module", want: OriginDevicesModule},
		{input: "com.fastybird.triggers-module", want: OriginTriggersModule},
		{input: "com.fastybird.ui-module", want: OriginUIModule},
		{input: "com.fastybird.auth-module", want: OriginAuthModule},
		{input: "com.fastybird.accounts-module", want: OriginAccountsModule},
		{input: "com.fastybird.redisdb-exchange-plugin", want: OriginRedisDbExchangePlugin},
		{input: "com.fastybird.ws-exchange-plugin", want: OriginWsExchangePlugin},
		{input: "com.fastybird.rabbitmq-exchange-plugin", want: OriginRabbitMqExchangePlugin},
		{input: "com.example.other-module", wantErr: ErrUnknownOrigin},
		{input: "device-module", wantErr: ErrUnknownOrigin},
		{input: "", wantErr: ErrUnknownOrigin},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOrigin(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestParseRoutingKey(t *testing.T) {
	tests := []struct {
		input   string
		want    RoutingKey
		wantErr error
	}{
		{input: "fb.bus.entity.created.device", want: DeviceCreated},
		{input: "fb.bus.entity.updated.device", want: DeviceUpdated},
		{input: "fb.bus.entity.deleted.device", want: DeviceDeleted},
		{input: "fb.bus.entity.created.device.property", want: DevicePropertyCreated},
		{input: "fb.bus.entity.updated.device.property", want: DevicePropertyUpdated},
		{input: "fb.bus.entity.deleted.device.property", want: DevicePropertyDeleted},
		{input: "fb.bus.entity.created.channel", want: ChannelCreated},
		{input: "fb.bus.entity.updated.channel", want: ChannelUpdated},
		{input: "fb.bus.entity.deleted.channel", want: ChannelDeleted},
		{input: "fb.bus.entity.created.channel.property", want: ChannelPropertyCreated},
		{input: "fb.bus.entity.updated.channel.property", want: ChannelPropertyUpdated},
		{input: "fb.bus.entity.deleted.channel.property", want: ChannelPropertyDeleted},
		{input: "fb.bus.entity.created.trigger", want: TriggerCreated},
		{input: "fb.bus.entity.updated.trigger", want: TriggerUpdated},
		{input: "fb.bus.entity.deleted.trigger", want: TriggerDeleted},
		{input: "fb.bus.entity.created.trigger.action", want: TriggerActionCreated},
		{input: "fb.bus.entity.updated.trigger.action", want: TriggerActionUpdated},
		{input: "fb.bus.entity.deleted.trigger.action", want: TriggerActionDeleted},
		{input: "fb.bus.entity.created.trigger.condition", want: TriggerConditionCreated},
		{input: "fb.bus.entity.updated.trigger.condition", want: TriggerConditionUpdated},
		{input: "fb.bus.entity.deleted.trigger.condition", want: TriggerConditionDeleted},
		{input: "fb.bus.data.device.property", want: DevicePropertyData},
		{input: "fb.bus.data.channel.property", want: ChannelPropertyData},
		{input: "device.created", wantErr: ErrUnknownRoutingKey},
		{input: "fb.bus.entity.created", wantErr: ErrUnknownRoutingKey},
		{input: "", wantErr: ErrUnknownRoutingKey},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRoutingKey(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

// Cada constante declarada debe estar registrada, y nada más.
func TestKnownSets_Size(t *testing.T) {
	assert.Len(t, knownOrigins, 8)
	assert.Len(t, knownRoutingKeys, 23)
}

func TestEnvelope_JSON(t *testing.T) {
	b, err := json.Marshal(NewEnvelope(OriginAuthModule, TriggerCreated, "pub-1", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"routing_key": "fb.bus.entity.created.trigger",
		"origin": "com.fastybird.auth-module",
		"sender_id": "pub-1",
		"data": null
	}`, string(b))
}
