package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusTransitions(t *testing.T) {
	t.Run("pending may become paid or cancelled", func(t *testing.T) {
		assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusPaid))
		assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusCancelled))
	})

	t.Run("terminal statuses accept nothing", func(t *testing.T) {
		assert.False(t, PaymentStatusPaid.CanTransitionTo(PaymentStatusCancelled))
		assert.False(t, PaymentStatusPaid.CanTransitionTo(PaymentStatusPending))
		assert.False(t, PaymentStatusCancelled.CanTransitionTo(PaymentStatusPaid))
	})

	t.Run("terminal detection", func(t *testing.T) {
		assert.False(t, PaymentStatusPending.IsTerminal())
		assert.True(t, PaymentStatusPaid.IsTerminal())
		assert.True(t, PaymentStatusCancelled.IsTerminal())
	})

	t.Run("unknown status is invalid", func(t *testing.T) {
		assert.False(t, PaymentStatus("Refunded").IsValid())
		assert.False(t, PaymentStatus("Refunded").CanTransitionTo(PaymentStatusPaid))
	})
}
