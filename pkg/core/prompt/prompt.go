// Package prompt provides the advisory prompt library: fixed policy documents
// (the rules the model must follow) plus deterministic user-prompt templates.
// Composition is pure: identical inputs always produce identical text.
package prompt

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"
)

// Template is one reusable prompt: a policy document for the system role and
// a Go template for the user message.
type Template struct {
	ID           string
	Category     string
	SystemPrompt string
	userTmpl     *template.Template
}

// Render executes the user template against vars and returns the system and
// user prompt pair.
func (t *Template) Render(vars any) (system string, user string, err error) {
	var buf bytes.Buffer
	if err := t.userTmpl.Execute(&buf, vars); err != nil {
		return "", "", fmt.Errorf("render prompt %s: %w", t.ID, err)
	}
	return t.SystemPrompt, buf.String(), nil
}

// Registry holds the compiled-in prompt templates.
type Registry struct {
	templates map[string]*Template
	mu        sync.RWMutex
}

var globalRegistry *Registry
var once sync.Once

// Get returns the global registry, registering the built-in advisory
// templates on first use.
func Get() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{templates: make(map[string]*Template)}
		registerBuiltins(globalRegistry)
	})
	return globalRegistry
}

// Register adds a template to the registry.
func (r *Registry) Register(id, category, systemPrompt, userTmpl string) error {
	if id == "" {
		return fmt.Errorf("template ID cannot be empty")
	}
	parsed, err := template.New(id).Funcs(templateFuncs).Parse(userTmpl)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[id] = &Template{
		ID:           id,
		Category:     category,
		SystemPrompt: systemPrompt,
		userTmpl:     parsed,
	}
	return nil
}

// Lookup retrieves a template by ID.
func (r *Registry) Lookup(id string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.templates[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("prompt template not found: %s", id)
}

// Render is a convenience wrapper over Lookup + Template.Render.
func Render(id string, vars any) (system string, user string, err error) {
	t, err := Get().Lookup(id)
	if err != nil {
		return "", "", err
	}
	return t.Render(vars)
}

// Count returns the number of registered templates.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}
