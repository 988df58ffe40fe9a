// Package prompt handles the analysis prompt template: loading the default
// from disk and substituting the extracted document text into it.
package prompt

import (
	"fmt"
	"os"
	"strings"
)

// Placeholder marks where the extracted document text is inserted.
const Placeholder = "{document_text}"

// LoadDefault reads the default prompt template from path.
func LoadDefault(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read default prompt: %w", err)
	}
	return string(data), nil
}

// Render substitutes documentText for every occurrence of the placeholder.
// A template without the placeholder is passed through unchanged.
func Render(template, documentText string) string {
	return strings.ReplaceAll(template, Placeholder, documentText)
}
