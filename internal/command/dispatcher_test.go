package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesHandlersInSubscriptionOrder(t *testing.T) {
	d := NewInMemoryDispatcher()

	var order []string
	d.Subscribe(TypeRefreshRequested, func(context.Context, Command) error {
		order = append(order, "first")
		return nil
	})
	d.Subscribe(TypeRefreshRequested, func(context.Context, Command) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), New(TypeRefreshRequested, nil)))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublishWithoutSubscribersIsANoOp(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), New(TypeSubmitEmployee, nil)))
}

func TestFailingHandlerDoesNotStopTheRest(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")

	var secondRan bool
	d.Subscribe(TypeRemoveEmployee, func(context.Context, Command) error { return boom })
	d.Subscribe(TypeRemoveEmployee, func(context.Context, Command) error {
		secondRan = true
		return nil
	})

	err := d.Publish(context.Background(), New(TypeRemoveEmployee, RemoveEmployeePayload{ID: "emp-1", Confirmed: true}))

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, secondRan)
}

func TestNewStampsIdentityAndPayload(t *testing.T) {
	payload := SubmitEmployeePayload{}
	cmd := New(TypeSubmitEmployee, payload)

	assert.NotEmpty(t, cmd.ID)
	assert.False(t, cmd.IssuedAt.IsZero())
	assert.Equal(t, TypeSubmitEmployee, cmd.Type)
	assert.Equal(t, payload, cmd.Payload)
}
