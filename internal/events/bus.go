package events

import (
	"sync"

	"go.uber.org/zap"
)

// Handler consumes a store event. Handlers run synchronously on the
// mutating goroutine; they must not call back into the store.
type Handler func(InvoiceUpdated)

// Bus is a minimal in-process fanout from the invoice store to its
// consumers. The store is the only publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
	log      *zap.Logger
}

func NewBus(log *zap.Logger) *Bus {
	return &Bus{log: log.Named("events")}
}

// Subscribe registers a handler for every subsequent publish.
func (b *Bus) Subscribe(h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	b.handlers = append(b.handlers, h)
	b.mu.Unlock()
}

// Publish delivers the event to all handlers in subscription order.
// A panicking handler is contained so one consumer cannot take down
// the editor loop.
func (b *Bus) Publish(evt InvoiceUpdated) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(h, evt)
	}
}

func (b *Bus) dispatch(h Handler, evt InvoiceUpdated) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Warn("event handler panicked",
				zap.String("event", evt.Type),
				zap.Uint64("revision", evt.Revision),
				zap.Any("panic", r),
			)
		}
	}()
	h(evt)
}
