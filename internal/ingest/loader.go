// Package ingest supplies raw design and regulatory text to the engine. It
// reads plain text and HTML files, fetches documents over HTTP with robots
// and rate-limit politeness, and persists segmented requirement units so a
// document can be reloaded without re-segmenting.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// IsURL reports whether the source names an http(s) document.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ReadDocument loads a local document as decoded plain text. HTML files are
// reduced to their visible text. An empty or whitespace-only document fails
// immediately.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = HTMLToText(text)
		if err != nil {
			return "", fmt.Errorf("parse HTML document: %w", err)
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("document %s: %w", path, model.ErrEmptyInput)
	}
	return text, nil
}
