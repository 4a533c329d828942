package rl4

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// splitDocument separates a document into its frontmatter fields and body.
//
// Frontmatter is a leading YAML block delimited by "---" lines. A document
// without frontmatter (or with an unclosed or malformed block) yields an
// empty field map; the body is everything after the closing delimiter, or
// the whole content when no frontmatter is present. Body checks must still
// run against malformed documents, so this never fails.
func splitDocument(content string) (fields map[string]interface{}, body string) {
	fields = map[string]interface{}{}
	lines := strings.Split(content, "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return fields, content
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closing = i
			break
		}
	}
	if closing == -1 {
		// Unclosed frontmatter: treat the whole document as body.
		return fields, content
	}

	raw := strings.Join(lines[1:closing], "\n")
	var parsed map[string]interface{}
	if err := yaml.Unmarshal([]byte(raw), &parsed); err == nil && parsed != nil {
		fields = parsed
	}

	body = strings.Join(lines[closing+1:], "\n")
	return fields, body
}

// isArray reports whether a decoded YAML value is a sequence.
func isArray(value interface{}) bool {
	_, ok := value.([]interface{})
	return ok
}
