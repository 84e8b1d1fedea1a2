package eventbus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-mclib/mcserver/eventbus"
)

type pingEvent struct {
	eventbus.CancelableBase
	online int
}

func TestEmitOrdersByPriorityMonitorLast(t *testing.T) {
	bus := eventbus.New()
	var order []string

	eventbus.Subscribe(bus, eventbus.Low, func(ctx context.Context, e *pingEvent) error {
		order = append(order, "low")
		return nil
	})
	eventbus.Subscribe(bus, eventbus.Monitor, func(ctx context.Context, e *pingEvent) error {
		order = append(order, "monitor")
		return nil
	})
	eventbus.Subscribe(bus, eventbus.Highest, func(ctx context.Context, e *pingEvent) error {
		order = append(order, "highest")
		return nil
	})
	eventbus.Subscribe(bus, eventbus.Normal, func(ctx context.Context, e *pingEvent) error {
		order = append(order, "normal")
		return nil
	})

	require.NoError(t, eventbus.Emit(bus, context.Background(), &pingEvent{}))
	require.Equal(t, []string{"highest", "normal", "low", "monitor"}, order)
}

func TestEmitSkipsNonMonitorAfterCancel(t *testing.T) {
	bus := eventbus.New()
	var ran []string

	eventbus.Subscribe(bus, eventbus.Highest, func(ctx context.Context, e *pingEvent) error {
		ran = append(ran, "highest")
		e.SetCanceled(true)
		return nil
	})
	eventbus.Subscribe(bus, eventbus.Normal, func(ctx context.Context, e *pingEvent) error {
		ran = append(ran, "normal")
		return nil
	})
	eventbus.Subscribe(bus, eventbus.Monitor, func(ctx context.Context, e *pingEvent) error {
		ran = append(ran, "monitor")
		return nil
	})

	ev := &pingEvent{}
	require.NoError(t, eventbus.Emit(bus, context.Background(), ev))
	require.True(t, ev.Canceled())
	require.Equal(t, []string{"highest", "monitor"}, ran)
}

func TestEmitMonitorObservesMutationFromNormalHandler(t *testing.T) {
	bus := eventbus.New()
	var observed int

	eventbus.Subscribe(bus, eventbus.Normal, func(ctx context.Context, e *pingEvent) error {
		e.online = 10
		return nil
	})
	eventbus.Subscribe(bus, eventbus.Monitor, func(ctx context.Context, e *pingEvent) error {
		observed = e.online
		return nil
	})

	ev := &pingEvent{}
	require.NoError(t, eventbus.Emit(bus, context.Background(), ev))
	require.Equal(t, 10, observed)
}

func TestEmitHandlerErrorAbortsDispatch(t *testing.T) {
	bus := eventbus.New()
	var ran []string
	wantErr := errors.New("boom")

	eventbus.Subscribe(bus, eventbus.Highest, func(ctx context.Context, e *pingEvent) error {
		ran = append(ran, "highest")
		return wantErr
	})
	eventbus.Subscribe(bus, eventbus.Normal, func(ctx context.Context, e *pingEvent) error {
		ran = append(ran, "normal")
		return nil
	})

	err := eventbus.Emit(bus, context.Background(), &pingEvent{})
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, []string{"highest"}, ran)
}

func TestEmitWithNoSubscribersIsNoop(t *testing.T) {
	bus := eventbus.New()
	require.NoError(t, eventbus.Emit(bus, context.Background(), &pingEvent{}))
}
