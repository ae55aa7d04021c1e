package notify

import (
	"sync"

	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
)

type EventKind string

const (
	// EventPB fires when the aggregation finds a new personal best.
	EventPB EventKind = "PersonalBest"
	// EventReply fires when a coach reply is ready to show.
	EventReply EventKind = "CoachReply"
)

type Event struct {
	Kind EventKind
	Data any
}

// Hub is the toast-style side channel between the pipeline and the UI layer.
// The coach core stays side-effect free; callers publish here after the fact.
type Hub struct {
	mu     sync.RWMutex
	log    *logger.Logger
	subs   map[int]chan Event
	nextID int
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:  log.With("component", "NotifyHub"),
		subs: make(map[int]chan Event),
	}
}

// Subscribe returns a receive channel and an unsubscribe func. The channel
// is buffered; slow subscribers drop events rather than block publishers.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Event, 8)
	h.subs[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
}

func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.log.Debug("Notify subscriber full, dropping event", "subscriber", id, "kind", ev.Kind)
		}
	}
}
