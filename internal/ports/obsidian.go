package ports

import "forwardtask/internal/domain"

// ObsidianOpener hands notes to the Obsidian app through obsidian:// URIs
type ObsidianOpener interface {
	// OpenFile opens an absolute path inside the vault
	OpenFile(filePath string) error

	// OpenDocument opens a note by its vault-relative id
	OpenDocument(id domain.DocumentID) error
}
