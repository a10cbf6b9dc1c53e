package session

import (
	"context"

	"github.com/propdesk/propdesk/internal/models"
	"go.uber.org/zap"
)

// Manager couples a Store with a Broadcaster: every successful mutation is
// followed by a state-change notification. Consumers receive the Manager
// explicitly rather than reaching for a process-wide singleton.
type Manager struct {
	store  Store
	bus    *Broadcaster
	logger *zap.Logger
}

// NewManager creates a session manager over the given backend.
func NewManager(store Store, bus *Broadcaster, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if bus == nil {
		bus = NewBroadcaster()
	}
	return &Manager{store: store, bus: bus, logger: logger}
}

// Bus exposes the broadcaster for observers (navigation, route guards).
func (m *Manager) Bus() *Broadcaster { return m.bus }

// Save persists the session and notifies observers.
func (m *Manager) Save(ctx context.Context, token string, info *models.UserInfo) error {
	if info == nil {
		info = &models.UserInfo{}
	}
	if err := m.store.Save(ctx, token, info); err != nil {
		return err
	}
	m.logger.Debug("session_saved", zap.String("user_name", info.UserName))
	m.bus.Publish(StateChange{IsAuthenticated: true, User: info})
	return nil
}

// Clear removes the session and notifies observers. Clearing twice is safe
// and emits a notification each time, so observers converge on logged-out
// regardless of how many call sites raced to evict.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	m.logger.Debug("session_cleared")
	m.bus.Publish(StateChange{IsAuthenticated: false, User: nil})
	return nil
}

// Read loads the persisted session.
func (m *Manager) Read(ctx context.Context) (string, *models.UserInfo, error) {
	return m.store.Read(ctx)
}
