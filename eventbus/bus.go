// Package eventbus implements a type-keyed, priority-ordered, cancelable
// event dispatcher. Handlers are registered per concrete event type and run
// in priority order (Highest first, Monitor last) when that type is
// emitted.
//
// Grounded on the original implementation's EventBus<Context>: a
// TypeId-keyed map of per-type handler lists, each tagged with a priority
// and sorted so dispatch runs highest first, skipping non-Monitor handlers
// once the event reports itself canceled.
package eventbus

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Priority controls dispatch order within one emission. Handlers run
// highest priority first. Monitor has the lowest numeric value, so it
// always runs last; it is reserved for read-only observation.
type Priority int

const (
	Monitor Priority = iota
	Lowest
	Low
	Normal
	High
	Highest
)

func (p Priority) String() string {
	switch p {
	case Monitor:
		return "Monitor"
	case Lowest:
		return "Lowest"
	case Low:
		return "Low"
	case Normal:
		return "Normal"
	case High:
		return "High"
	case Highest:
		return "Highest"
	default:
		return "Unknown"
	}
}

// Cancelable is implemented by event types that support cancellation. Once
// an event is canceled, every handler whose priority is not Monitor is
// skipped for the rest of the emission; Monitor handlers still observe
// the final state.
type Cancelable interface {
	Canceled() bool
	SetCanceled(bool)
}

// CancelableBase is embeddable by event structs to satisfy Cancelable.
type CancelableBase struct {
	canceled bool
}

func (c *CancelableBase) Canceled() bool     { return c.canceled }
func (c *CancelableBase) SetCanceled(v bool) { c.canceled = v }

type handlerRecord struct {
	priority Priority
	call     func(ctx context.Context, event any) error
}

// Bus is a type-keyed registry of prioritized handlers. The zero value is
// not usable; construct with New.
type Bus struct {
	mu       sync.RWMutex
	handlers map[reflect.Type][]handlerRecord
}

// New returns an empty Bus.
func New() *Bus {
	return &Bus{handlers: make(map[reflect.Type][]handlerRecord)}
}

// Subscribe registers handler to run whenever an *E is emitted, at the
// given priority. Registering mutates the bus under its write lock; do not
// call Subscribe from inside a handler running on the same bus: Emit holds
// the read lock for the whole dispatch, so such a call blocks forever.
func Subscribe[E any](bus *Bus, priority Priority, handler func(ctx context.Context, event *E) error) {
	t := reflect.TypeOf((*E)(nil)).Elem()

	rec := handlerRecord{
		priority: priority,
		call: func(ctx context.Context, event any) error {
			e, ok := event.(*E)
			if !ok {
				return fmt.Errorf("eventbus: handler for %s received %T", t, event)
			}
			return handler(ctx, e)
		},
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()
	records := append(bus.handlers[t], rec)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].priority > records[j].priority
	})
	bus.handlers[t] = records
}

// Emit dispatches event to every handler registered for *E, in priority
// order. If event implements Cancelable and becomes canceled partway
// through, remaining non-Monitor handlers are skipped but Monitor handlers
// still run and observe the final state. A handler error aborts the rest
// of the dispatch and is returned to the caller.
func Emit[E any](bus *Bus, ctx context.Context, event *E) error {
	t := reflect.TypeOf((*E)(nil)).Elem()

	bus.mu.RLock()
	defer bus.mu.RUnlock()

	cancelable, hasCancel := any(event).(Cancelable)
	for _, rec := range bus.handlers[t] {
		if hasCancel && cancelable.Canceled() && rec.priority != Monitor {
			continue
		}
		if err := rec.call(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
