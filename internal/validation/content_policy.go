// Package validation contains field-level and content-policy checks
// applied on write paths before anything is persisted.
package validation

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultForbiddenWords is the denylist shipped with the application.
// Deployments override it via configuration or a policy file.
var DefaultForbiddenWords = []string{"Пушкин", "Лермонтов"}

// ContentPolicy rejects text whose whitespace-separated tokens intersect a
// configured denylist. Matching is case-folded and token-exact: a forbidden
// word embedded inside a larger token does not trigger the policy.
type ContentPolicy struct {
	forbidden map[string]struct{}
}

// NewContentPolicy builds a policy from an explicit word list. The list is
// folded once at construction so Check stays allocation-light.
func NewContentPolicy(words []string) *ContentPolicy {
	forbidden := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			forbidden[w] = struct{}{}
		}
	}
	return &ContentPolicy{forbidden: forbidden}
}

// Check returns the first forbidden token found in text, or "" when the
// text passes. The input is never modified.
func (p *ContentPolicy) Check(text string) string {
	if p == nil || len(p.forbidden) == 0 {
		return ""
	}
	for _, token := range strings.Fields(text) {
		if _, bad := p.forbidden[strings.ToUpper(token)]; bad {
			return token
		}
	}
	return ""
}

// Size returns the number of configured forbidden words.
func (p *ContentPolicy) Size() int {
	if p == nil {
		return 0
	}
	return len(p.forbidden)
}

type policyFile struct {
	ForbiddenWords []string `yaml:"forbidden_words"`
}

// LoadDenylist reads a YAML policy file of the form:
//
//	forbidden_words:
//	  - Пушкин
//	  - Лермонтов
func LoadDenylist(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content policy file: %w", err)
	}
	var f policyFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse content policy file %s: %w", path, err)
	}
	return f.ForbiddenWords, nil
}
