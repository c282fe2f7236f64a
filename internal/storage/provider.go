// Package storage provides file-system access to the Markdown vault.
package storage

import "github.com/starford/raido/internal/models"

// Provider abstracts vault file access.
type Provider interface {
	// List walks dir (relative to the vault root) and returns metadata
	// for every Markdown file found.
	List(dir string) ([]models.DocumentMetadata, error)
	Read(path string) ([]byte, error)
	Write(path string, content []byte) error
	Delete(path string) error
}
