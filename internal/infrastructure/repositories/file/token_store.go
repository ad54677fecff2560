package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
	"skateplan/pkg/tracing"
)

const (
	dirMode  = 0o700
	fileMode = 0o600
)

// FileTokenStore keeps the token in a single file readable only by the
// current user.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) ports.TokenStore {
	return &FileTokenStore{path: path}
}

// Path returns the token file location.
func (s *FileTokenStore) Path() string {
	return s.path
}

func (s *FileTokenStore) Load(ctx context.Context) (string, error) {
	_, span := tracing.TraceTokenStore(ctx, "load", "file")
	defer span.End()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", domain.ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", domain.ErrNoToken
	}
	return token, nil
}

// Save replaces the token file atomically.
func (s *FileTokenStore) Save(ctx context.Context, token string) error {
	_, span := tracing.TraceTokenStore(ctx, "save", "file")
	defer span.End()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod token file: %w", err)
	}
	if _, err := tmp.WriteString(token + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace token file: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear(ctx context.Context) error {
	_, span := tracing.TraceTokenStore(ctx, "clear", "file")
	defer span.End()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
