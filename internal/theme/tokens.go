package theme

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category names a shared, theme-independent token group.
type Category string

const (
	CategoryTypography  Category = "typography"
	CategorySpacing     Category = "spacing"
	CategoryBreakpoints Category = "breakpoints"
	CategoryContainer   Category = "container"
	CategoryShadows     Category = "shadows"
	CategoryZIndex      Category = "zIndex"
	CategoryShape       Category = "shape"
	CategoryTransitions Category = "transitions"
	CategoryAnimations  Category = "animations"
	CategoryComponents  Category = "components"
)

var categories = [...]Category{
	CategoryTypography,
	CategorySpacing,
	CategoryBreakpoints,
	CategoryContainer,
	CategoryShadows,
	CategoryZIndex,
	CategoryShape,
	CategoryTransitions,
	CategoryAnimations,
	CategoryComponents,
}

// Categories returns every shared token category in a stable order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// Token is a single entry of a TokenGroup. It is either a Scalar or a Table.
type Token interface {
	isToken()
	clone() Token
}

// Scalar is a leaf token value such as "16px" or "400".
type Scalar string

// Table is a one-level table of token values. Deeper source structures are
// flattened into dotted keys ("button.sm.x").
type Table map[string]string

func (Scalar) isToken() {}
func (Table) isToken()  {}

func (s Scalar) clone() Token { return s }

func (t Table) clone() Token {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Keys returns the table keys sorted.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TokenGroup is the content of one category: named tokens.
type TokenGroup map[string]Token

// Clone returns a deep copy of the group.
func (g TokenGroup) Clone() TokenGroup {
	if g == nil {
		return nil
	}
	out := make(TokenGroup, len(g))
	for k, v := range g {
		if v != nil {
			out[k] = v.clone()
		}
	}
	return out
}

// Merge applies patch on top of g one level deep: every key in patch
// replaces the whole token stored under that key. g is not modified.
func (g TokenGroup) Merge(patch TokenGroup) TokenGroup {
	if g == nil && patch == nil {
		return nil
	}
	out := g.Clone()
	if out == nil {
		out = make(TokenGroup, len(patch))
	}
	for k, v := range patch {
		if v == nil {
			continue
		}
		out[k] = v.clone()
	}
	return out
}

// Scalar returns the scalar stored under key.
func (g TokenGroup) Scalar(key string) (string, bool) {
	s, ok := g[key].(Scalar)
	return string(s), ok
}

// Table returns the table stored under key.
func (g TokenGroup) Table(key string) (Table, bool) {
	t, ok := g[key].(Table)
	return t, ok
}

// Lookup resolves "key" or "key.sub.path" against the group.
func (g TokenGroup) Lookup(path string) (string, bool) {
	if s, ok := g.Scalar(path); ok {
		return s, true
	}
	head, rest, found := strings.Cut(path, ".")
	if !found {
		return "", false
	}
	table, ok := g.Table(head)
	if !ok {
		return "", false
	}
	v, ok := table[rest]
	return v, ok
}

// Keys returns the group keys sorted.
func (g TokenGroup) Keys() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnmarshalYAML decodes a mapping; scalar and sequence values become
// Scalars, mapping values become flattened Tables.
func (g *TokenGroup) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: token group must be a mapping", node.Line)
	}
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	group, err := groupFromAny(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*g = group
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML for JSON payloads.
func (g *TokenGroup) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*g = nil
		return nil
	}
	group, err := groupFromAny(raw)
	if err != nil {
		return err
	}
	*g = group
	return nil
}

func groupFromAny(raw map[string]any) (TokenGroup, error) {
	group := make(TokenGroup, len(raw))
	for key, value := range raw {
		if nested, ok := asStringMap(value); ok {
			table := make(Table)
			if err := flatten(table, "", nested); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			group[key] = table
			continue
		}
		if value == nil {
			continue
		}
		s, err := scalarString(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		group[key] = Scalar(s)
	}
	return group, nil
}

func flatten(into Table, prefix string, raw map[string]any) error {
	for key, value := range raw {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := asStringMap(value); ok {
			if err := flatten(into, path, nested); err != nil {
				return err
			}
			continue
		}
		if value == nil {
			continue
		}
		s, err := scalarString(value)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		into[path] = s
	}
	return nil
}

// asStringMap normalizes decoded mappings. yaml.v3 yields map[any]any when
// a mapping has non-string keys such as the numeric spacing scale.
func asStringMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = item
		}
		return out, true
	default:
		return nil, false
	}
}

func scalarString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s, err := scalarString(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("unsupported token value of type %T", value)
	}
}
