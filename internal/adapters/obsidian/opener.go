package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"forwardtask/internal/domain"
)

// Opener implements ports.ObsidianOpener
type Opener struct {
	vaultPath string
	vaultName string
	run       func(cmd *exec.Cmd) error
}

// NewOpener creates an opener for the vault at vaultPath. Obsidian
// identifies vaults by folder name.
func NewOpener(vaultPath string) *Opener {
	return &Opener{
		vaultPath: vaultPath,
		vaultName: filepath.Base(vaultPath),
		run:       (*exec.Cmd).Run,
	}
}

// OpenFile opens an absolute path inside the vault
func (o *Opener) OpenFile(filePath string) error {
	uri, err := o.BuildURI(filePath)
	if err != nil {
		return err
	}
	return o.launch(uri)
}

// OpenDocument opens a note by its vault-relative id
func (o *Opener) OpenDocument(id domain.DocumentID) error {
	return o.launch(o.DocumentURI(id))
}

// BuildURI returns the obsidian:// URI for an absolute path inside the vault
func (o *Opener) BuildURI(filePath string) (string, error) {
	rel, err := filepath.Rel(o.vaultPath, filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file is outside the vault: %s", filePath)
	}
	return o.DocumentURI(domain.DocumentID(filepath.ToSlash(rel))), nil
}

// DocumentURI returns the obsidian:// URI for a note id
func (o *Opener) DocumentURI(id domain.DocumentID) string {
	q := "vault=" + url.PathEscape(o.vaultName) + "&file=" + url.PathEscape(string(id))
	return "obsidian://open?" + q
}

func (o *Opener) launch(uri string) error {
	name, args, err := launcher(runtime.GOOS)
	if err != nil {
		return err
	}
	return o.run(exec.Command(name, append(args, uri)...))
}

// launcher returns the command that opens a URI with the desktop handler
func launcher(goos string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", nil, nil
	case "linux", "freebsd", "openbsd":
		return "xdg-open", nil, nil
	case "windows":
		return "cmd", []string{"/c", "start", ""}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
