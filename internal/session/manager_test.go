package session

import (
	"context"
	"testing"

	"github.com/propdesk/propdesk/internal/models"
)

func newTestManager(t *testing.T) (*Manager, <-chan StateChange) {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	bus := NewBroadcaster()
	id, ch := bus.Subscribe()
	t.Cleanup(func() { bus.Unsubscribe(id) })
	return NewManager(store, bus, nil), ch
}

func TestManagerSavePublishes(t *testing.T) {
	m, ch := newTestManager(t)
	info := &models.UserInfo{UserName: "ana"}

	if err := m.Save(context.Background(), "tok", info); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	select {
	case change := <-ch:
		if !change.IsAuthenticated {
			t.Error("expected authenticated state change")
		}
		if change.User == nil || change.User.UserName != "ana" {
			t.Errorf("change.User = %+v, want user ana", change.User)
		}
	default:
		t.Fatal("no state change published after Save")
	}
}

func TestManagerClearPublishesEachTime(t *testing.T) {
	m, ch := newTestManager(t)
	ctx := context.Background()

	if err := m.Save(ctx, "tok", &models.UserInfo{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	<-ch // drain the save notification

	// Clearing twice emits two logged-out notifications so racing evictors
	// all converge observers on logged-out.
	for i := 0; i < 2; i++ {
		if err := m.Clear(ctx); err != nil {
			t.Fatalf("Clear %d failed: %v", i+1, err)
		}
		select {
		case change := <-ch:
			if change.IsAuthenticated || change.User != nil {
				t.Errorf("clear %d published %+v, want logged-out", i+1, change)
			}
		default:
			t.Fatalf("clear %d published nothing", i+1)
		}
	}
}
