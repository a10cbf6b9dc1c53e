package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/propdesk/propdesk/internal/models"
)

// StateChange is broadcast whenever the session is saved or cleared.
type StateChange struct {
	IsAuthenticated bool             `json:"isAuthenticated"`
	User            *models.UserInfo `json:"user"`
}

const subscriberBuffer = 8

// Broadcaster is an in-process publish/subscribe registry for session-state
// changes. Delivery order across subscribers is unspecified and duplicates
// are possible (several call sites independently save and notify), so
// subscribers must be idempotent. Publish never blocks: a subscriber that
// stops draining its channel misses updates instead of stalling the writer.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]chan StateChange
}

// NewBroadcaster creates an empty registry.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[uuid.UUID]chan StateChange)}
}

// Subscribe registers an observer and returns its id and receive channel.
func (b *Broadcaster) Subscribe() (uuid.UUID, <-chan StateChange) {
	id := uuid.New()
	ch := make(chan StateChange, subscriberBuffer)

	b.mu.Lock()
	b.subs[id] = ch
	b.mu.Unlock()

	return id, ch
}

// Unsubscribe removes an observer and closes its channel. Unknown ids are
// ignored.
func (b *Broadcaster) Unsubscribe(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish fans the change out to every subscriber without blocking.
func (b *Broadcaster) Publish(change StateChange) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- change:
		default:
		}
	}
}

// Len returns the number of active subscribers.
func (b *Broadcaster) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
