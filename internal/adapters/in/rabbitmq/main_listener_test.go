package rabbitmq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChangeMessageRoutingKey(t *testing.T) {
	l := &StoreChangeListener{}

	key, err := l.parseChangeMessageRoutingKey(amqp.Delivery{
		RoutingKey: "sheets.availability-resolver.availabilityrule.v1.store",
	})
	require.NoError(t, err)
	assert.Equal(t, "sheets", key.Source)
	assert.Equal(t, "availability-resolver", key.Receiver)
	assert.Equal(t, ChangeResourceTypeRule, key.ResourceType)
	assert.Equal(t, ChangeTypeStore, key.ChangeType)

	key, err = l.parseChangeMessageRoutingKey(amqp.Delivery{
		RoutingKey: "booking.availability-resolver._all_.v1.invalidate",
	})
	require.NoError(t, err)
	assert.Equal(t, ChangeResourceTypeAll, key.ResourceType)
	assert.Equal(t, ChangeTypeInvalidate, key.ChangeType)

	_, err = l.parseChangeMessageRoutingKey(amqp.Delivery{
		RoutingKey: "too.short.key",
	})
	assert.Error(t, err)
}
