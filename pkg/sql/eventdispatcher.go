package sql

import (
	"context"
	"sync"

	"github.com/upservice/user-profile-service/pkg/event"
)

type pendingEvents struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *pendingEvents) append(events ...event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
}

func (p *pendingEvents) takeAll() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := p.events
	p.events = nil
	return events
}

// DeferredEventDispatcher holds back events dispatched inside a database
// transaction until the transaction commits. Events of a rolled back
// transaction are discarded together with its context. Outside a transaction
// events pass straight through.
type DeferredEventDispatcher struct {
	dispatcher event.Dispatcher
}

func NewDeferredEventDispatcher(dispatcher event.Dispatcher) *DeferredEventDispatcher {
	return &DeferredEventDispatcher{dispatcher: dispatcher}
}

func (d *DeferredEventDispatcher) Dispatch(ctx context.Context, events ...event.Event) error {
	pending, ok := ctx.Value(dbTransactionEventsContextKey).(*pendingEvents)
	if !ok {
		return d.dispatcher.Dispatch(ctx, events...)
	}

	pending.append(events...)
	return nil
}

// Flush hands the events buffered in ctx to the underlying dispatcher,
// intended to run from the transaction commit hook.
func (d *DeferredEventDispatcher) Flush(ctx context.Context) error {
	pending, ok := ctx.Value(dbTransactionEventsContextKey).(*pendingEvents)
	if !ok {
		return nil
	}

	events := pending.takeAll()
	if len(events) == 0 {
		return nil
	}
	return d.dispatcher.Dispatch(ctx, events...)
}
