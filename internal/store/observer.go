package store

import (
	"reflect"
	"sync"
)

// Hub fans out change notifications. A subscriber registers a selector over
// store state and is invoked only when the selected value differs from the
// one delivered last time, so a consumer watching the people list does not
// re-render when only the transient filter config changed.
//
// Broadcast runs on the mutating goroutine after the store releases its
// lock, which keeps delivery in exact mutation order.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscription
}

type subscription struct {
	selector func() any
	handler  func(any)
	last     any
	primed   bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]*subscription)}
}

// Subscribe registers a selector and handler. The handler fires on the next
// Broadcast whose selected value differs from the previously delivered one;
// the first Broadcast always delivers. The returned function unsubscribes.
func (h *Hub) Subscribe(selector func() any, handler func(any)) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.subs[id] = &subscription{selector: selector, handler: handler}

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Broadcast re-evaluates every subscriber's selector and notifies the ones
// whose value changed. Comparison is by value (reflect.DeepEqual), so a
// recomputed-but-equal slice does not fire. Handlers run with no hub lock
// held, so a handler may mutate the store, subscribe, or cancel without
// deadlocking; a subscriber cancelled mid-broadcast may still receive this
// round's delivery.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	subs := make([]*subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		current := sub.selector()

		h.mu.Lock()
		changed := !sub.primed || !reflect.DeepEqual(sub.last, current)
		if changed {
			sub.last = current
			sub.primed = true
		}
		h.mu.Unlock()

		if changed {
			sub.handler(current)
		}
	}
}
