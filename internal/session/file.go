package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/propdesk/propdesk/internal/models"
	"go.uber.org/zap"
)

const (
	tokenFileName    = "token"
	userInfoFileName = "userinfo.json"
)

// FileStore keeps the session in two files under a directory, the console's
// stand-in for browser local storage. Writes are atomic per file (write to
// temp, rename) so a concurrent reader never sees a torn value.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a file-backed session store rooted at dir. An empty
// dir resolves to <user config dir>/propdesk.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, "propdesk")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Dir returns the directory holding the session files.
func (s *FileStore) Dir() string { return s.dir }

// Save writes the token and serialized user info.
func (s *FileStore) Save(_ context.Context, token string, info *models.UserInfo) error {
	if err := s.writeFile(tokenFileName, []byte(token)); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to serialize user info: %w", err)
	}
	if err := s.writeFile(userInfoFileName, data); err != nil {
		return fmt.Errorf("failed to write user info: %w", err)
	}
	return nil
}

// Clear removes both session files. Missing files are not an error.
func (s *FileStore) Clear(_ context.Context) error {
	for _, name := range []string{tokenFileName, userInfoFileName} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}

// Read loads the session. A corrupt user-info file is logged and treated as
// absent so the caller can fall back to deriving it from the token.
func (s *FileStore) Read(_ context.Context) (string, *models.UserInfo, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, tokenFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to read token: %w", err)
	}
	tok := string(raw)

	data, err := os.ReadFile(filepath.Join(s.dir, userInfoFileName))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed_to_read_user_info", zap.Error(err))
		}
		return tok, nil, nil
	}

	var info models.UserInfo
	if err := json.Unmarshal(data, &info); err != nil {
		s.logger.Warn("corrupt_user_info_ignored", zap.Error(err))
		return tok, nil, nil
	}
	return tok, &info, nil
}

func (s *FileStore) writeFile(name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
