package command

import (
	"context"
	"errors"
	"sync"
)

// Handler consumes a published command.
type Handler func(context.Context, Command) error

// Dispatcher routes typed commands from the UI surface to their consumers.
type Dispatcher interface {
	Publish(ctx context.Context, cmd Command) error
	Subscribe(cmdType Type, handler Handler)
}

// inMemoryDispatcher is a simple synchronous dispatcher. Handlers run in
// subscription order; a failing handler does not stop the remaining ones.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[Type][]Handler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[Type][]Handler),
	}
}

// Publish synchronously invokes handlers for the given command and returns
// the joined handler errors, if any.
func (d *inMemoryDispatcher) Publish(ctx context.Context, cmd Command) error {
	d.mu.RLock()
	handlers := append([]Handler{}, d.listeners[cmd.Type]...)
	d.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, cmd); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers a handler for the given command type.
func (d *inMemoryDispatcher) Subscribe(cmdType Type, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[cmdType] = append(d.listeners[cmdType], handler)
}
