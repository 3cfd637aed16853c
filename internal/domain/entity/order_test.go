package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusPlaced, OrderStatusShipped, true},
		{OrderStatusPlaced, OrderStatusCancelled, true},
		{OrderStatusPlaced, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusDue, true},
		{OrderStatusShipped, OrderStatusReceived, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusDue, OrderStatusDelivered, true},
		{OrderStatusDue, OrderStatusCancelled, true},
		{OrderStatusReceived, OrderStatusDelivered, true},

		{OrderStatusDelivered, OrderStatusShipped, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPlaced, false},
		{OrderStatusShipped, OrderStatusPlaced, false},
		{OrderStatusDue, OrderStatusShipped, false},
		{OrderStatusPlaced, OrderStatusPlaced, false},
		{OrderStatusPlaced, "BOGUS", false},
		{"BOGUS", OrderStatusShipped, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{
		OrderStatusPlaced, OrderStatusShipped, OrderStatusDelivered,
		OrderStatusCancelled, OrderStatusDue, OrderStatusReceived,
	} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus("bogus"))
	assert.False(t, ValidOrderStatus(""))
}
