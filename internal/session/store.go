// Package session owns durable persistence of the console session (bearer
// token plus derived user info) and fan-out notification of session-state
// changes to decoupled observers.
package session

import (
	"context"

	"github.com/propdesk/propdesk/internal/models"
)

// Store persists the session under two fixed keys: the raw bearer token and
// the JSON-serialized user info. Implementations are last-writer-wins; the
// console runs a single logical writer and reconciles observers through the
// Broadcaster rather than locking.
type Store interface {
	// Save writes both keys. A successful Save means a later Read returns
	// an equivalent token/info pair.
	Save(ctx context.Context, token string, info *models.UserInfo) error

	// Clear removes both keys. Clearing an already-empty store is not an
	// error.
	Clear(ctx context.Context) error

	// Read is best-effort: an absent session yields ("", nil, nil), and a
	// stored user-info blob that fails to parse is treated as absent so the
	// caller can re-derive it from the token.
	Read(ctx context.Context) (string, *models.UserInfo, error)
}
