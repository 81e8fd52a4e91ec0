package controller

import (
	"sync"
	"sync/atomic"
)

// hub fans events out to subscribers without blocking the publisher.
type hub struct {
	mu      sync.Mutex
	subs    map[int]chan Event
	next    int
	current Event
	has     bool
	dropped atomic.Uint64
}

func (h *hub) subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan Event, buffer)

	h.mu.Lock()
	if h.subs == nil {
		h.subs = make(map[int]chan Event)
	}
	id := h.next
	h.next++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *hub) publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.current, h.has = ev, true
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.dropped.Add(1)
		}
	}
}

func (h *hub) latest() (Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.current, h.has
}
