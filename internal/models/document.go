// Package models defines the domain types for Raido.
package models

import "time"

// Document represents a parsed Markdown note in the vault.
type Document struct {
	Path        string         `json:"path"`
	Basename    string         `json:"basename"`
	Title       string         `json:"title,omitempty"`
	Body        string         `json:"body,omitempty"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Checksum    string         `json:"checksum"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// DocumentMetadata is a lightweight representation returned by list operations.
type DocumentMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
