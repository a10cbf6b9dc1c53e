package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/propdesk/propdesk/internal/models"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	info := &models.UserInfo{
		UserID:    "u-1",
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "ana@example.com",
		UserName:  "ana@example.com",
		Role:      "Admin",
	}
	if err := store.Save(ctx, "tok-123", info); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	tok, got, err := store.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if tok != "tok-123" {
		t.Errorf("token = %q, want %q", tok, "tok-123")
	}
	if got == nil || *got != *info {
		t.Errorf("user info = %+v, want %+v", got, info)
	}
}

func TestFileStoreReadEmpty(t *testing.T) {
	store := newTestFileStore(t)

	tok, info, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if tok != "" || info != nil {
		t.Errorf("Read on empty store = (%q, %+v), want empty", tok, info)
	}
}

func TestFileStoreCorruptUserInfo(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "tok-123", &models.UserInfo{Email: "a@b.c"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(store.Dir(), userInfoFileName), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to corrupt user info file: %v", err)
	}

	tok, info, err := store.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if tok != "tok-123" {
		t.Errorf("token = %q, want %q", tok, "tok-123")
	}
	if info != nil {
		t.Errorf("corrupt user info should read as absent, got %+v", info)
	}
}

func TestFileStoreClearIdempotent(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "tok", &models.UserInfo{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("first Clear failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}

	tok, info, err := store.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if tok != "" || info != nil {
		t.Errorf("session survived Clear: (%q, %+v)", tok, info)
	}
}
