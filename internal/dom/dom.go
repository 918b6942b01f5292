// Package dom models the document root a theme is projected onto: a class
// list and a set of inline style properties.
package dom

import (
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Element is the subset of a DOM element the theme manager writes to.
type Element interface {
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
	SetProperty(name, value string)
	Property(name string) (string, bool)
}

// Document exposes the root element.
type Document interface {
	Root() Element
}

// Property is one inline style declaration.
type Property struct {
	Name  string
	Value string
}

// Root is an in-memory root element. It is safe for concurrent use and keeps
// classes and properties in insertion order.
type Root struct {
	mu         sync.RWMutex
	classes    []string
	properties []Property
	index      map[string]int
}

// NewDocument returns an empty document.
func NewDocument() *Root {
	return &Root{index: make(map[string]int)}
}

// Root implements Document.
func (r *Root) Root() Element {
	return r
}

// AddClass adds name unless already present.
func (r *Root) AddClass(name string) {
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.classes {
		if c == name {
			return
		}
	}
	r.classes = append(r.classes, name)
}

// RemoveClass removes name if present.
func (r *Root) RemoveClass(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.classes {
		if c == name {
			r.classes = append(r.classes[:i], r.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether name is in the class list.
func (r *Root) HasClass(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.classes {
		if c == name {
			return true
		}
	}
	return false
}

// SetProperty sets an inline style property, keeping its original position
// when it already exists.
func (r *Root) SetProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.properties[i].Value = value
		return
	}
	r.index[name] = len(r.properties)
	r.properties = append(r.properties, Property{Name: name, Value: value})
}

// Property returns the value of an inline style property.
func (r *Root) Property(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	return r.properties[i].Value, true
}

// Classes returns a copy of the class list.
func (r *Root) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.classes))
	copy(out, r.classes)
	return out
}

// Properties returns a copy of the style properties in insertion order.
func (r *Root) Properties() []Property {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Property, len(r.properties))
	copy(out, r.properties)
	return out
}

// ClassAttr renders the class attribute value.
func (r *Root) ClassAttr() string {
	return strings.Join(r.Classes(), " ")
}

// StyleAttr renders the style attribute value ("a: 1; b: 2").
func (r *Root) StyleAttr() string {
	props := r.Properties()
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p.Name+": "+p.Value)
	}
	return strings.Join(parts, "; ")
}

// CSS renders the properties as one rule for selector.
func (r *Root) CSS(selector string) string {
	props := r.Properties()
	vars := make(map[string]string, len(props))
	for _, p := range props {
		vars[p.Name] = p.Value
	}
	return theme.RenderCSS(selector, vars)
}
