package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"forwardtask/internal/domain"
)

// ErrOutsideVault is returned for paths that do not resolve inside the vault
var ErrOutsideVault = errors.New("path is outside the vault")

// Vault implements ports.DocumentStore over a vault directory
type Vault struct {
	root string
}

// NewVault creates a document store rooted at vaultPath
func NewVault(vaultPath string) *Vault {
	// Expand ~ to home directory
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	if abs, err := filepath.Abs(vaultPath); err == nil {
		vaultPath = abs
	}
	return &Vault{root: filepath.Clean(vaultPath)}
}

// Root returns the absolute vault directory
func (v *Vault) Root() string {
	return v.root
}

// Path returns the absolute filesystem path of a note
func (v *Vault) Path(id domain.DocumentID) (string, error) {
	rel := filepath.FromSlash(string(id))
	if rel == "" || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %q", ErrOutsideVault, id)
	}
	p := filepath.Join(v.root, rel)
	if p != v.root && !strings.HasPrefix(p, v.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrOutsideVault, id)
	}
	return p, nil
}

// ID converts an absolute or vault-relative path into a DocumentID
func (v *Vault) ID(path string) (domain.DocumentID, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(v.root, path)
	}
	rel, err := filepath.Rel(v.root, filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideVault, path)
	}
	return domain.DocumentID(filepath.ToSlash(rel)), nil
}

// Exists reports whether the note is present on disk
func (v *Vault) Exists(id domain.DocumentID) bool {
	p, err := v.Path(id)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Read returns the full text of a note
func (v *Vault) Read(ctx context.Context, id domain.DocumentID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p, err := v.Path(id)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", id, err)
	}
	return string(data), nil
}

// Write replaces the full text of a note, creating parent folders as needed
func (v *Vault) Write(ctx context.Context, id domain.DocumentID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := v.Path(id)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("failed to create folder for %s: %w", id, err)
	}

	perm := fs.FileMode(0644)
	if info, err := os.Stat(p); err == nil {
		perm = info.Mode().Perm()
	}
	if err := atomicWriteFile(p, []byte(text), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", id, err)
	}
	return nil
}

// atomicWriteFile writes to a temp file in the same folder and renames it
// over path, so readers never see a partial note
func atomicWriteFile(path string, content []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
