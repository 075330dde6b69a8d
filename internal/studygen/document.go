package studygen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// textExtensions lists document types readable in-process. PDFs need the
// remote backend's extraction pipeline.
var textExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".text":     true,
}

// ReadDocument loads a plain-text document from disk and returns its
// trimmed contents.
func ReadDocument(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !textExtensions[ext] {
		return "", fmt.Errorf("unsupported document type %q (use the remote backend for PDFs)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("document %s is empty", filepath.Base(path))
	}
	return text, nil
}
