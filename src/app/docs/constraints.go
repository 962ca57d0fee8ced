// Package docs generates API documentation snippets from recorded test
// interactions: parameter tables, request/response field tables, and
// human-readable renderings of the validation constraints declared on the
// transfer shapes.
//
// Constraint text is derived from the `binding` struct tags of the exact
// type whose instances are serialized, so the generated documentation can
// never drift from the rules the server actually enforces.
package docs

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"beerfactory/src/core/domain"
)

// constraintSentences maps a binding rule name to a template for its
// human-readable sentence. %s is replaced by the rule parameter.
var constraintSentences = struct {
	sync.RWMutex
	m map[string]string
}{m: map[string]string{
	"required": "must not be null",
	"len":      "size must be exactly %s",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"email":    "must be a well-formed email address",
	"uuid":     "must be a valid UUID",
}}

// modifier tokens carry no constraint of their own and render nothing.
var modifierRules = map[string]bool{
	"omitempty":     true,
	"dive":          true,
	"structonly":    true,
	"nostructlevel": true,
	"-":             true,
}

// RegisterConstraintDescription sets the sentence rendered for a custom
// binding rule. Register alongside the rule itself so documentation and
// validation stay in one place.
func RegisterConstraintDescription(rule, sentence string) {
	constraintSentences.Lock()
	defer constraintSentences.Unlock()
	constraintSentences.m[rule] = sentence
}

// ConstraintDescriptions resolves human-readable constraint text for the
// fields of a transfer shape. It holds only the inspected type; per-type
// results are memoized process-wide, so values are safe for concurrent use.
type ConstraintDescriptions struct {
	typ reflect.Type
}

// NewConstraintDescriptions inspects the type of v, which must be a struct
// or pointer to struct.
func NewConstraintDescriptions(v any) *ConstraintDescriptions {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return &ConstraintDescriptions{typ: t}
}

// DescriptionsForField returns the ordered constraint sentences for the
// given field path. Dotted paths descend nested structs; a trailing "[]"
// on a segment descends into slice elements. A field with no declared
// constraints yields an empty slice. An unknown path yields an
// ErrFieldNotFound-wrapped error, never a silently empty result.
func (c *ConstraintDescriptions) DescriptionsForField(path string) ([]string, error) {
	if c.typ == nil || c.typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("constraint descriptions: not a struct type: %v", c.typ)
	}
	table := constraintTable(c.typ)
	descriptions, ok := table[path]
	if !ok {
		return nil, domain.NewFieldNotFoundError(c.typ.Name(), path)
	}
	return descriptions, nil
}

// Describe joins the constraint sentences for path with ". ". A field
// without constraints yields the empty string.
func (c *ConstraintDescriptions) Describe(path string) (string, error) {
	descriptions, err := c.DescriptionsForField(path)
	if err != nil {
		return "", err
	}
	return strings.Join(descriptions, ". "), nil
}

// tableCache memoizes the field-path table per type. Constraint metadata
// for a type never changes after load, so entries are write-once.
var tableCache sync.Map // reflect.Type -> map[string][]string

func constraintTable(t reflect.Type) map[string][]string {
	if cached, ok := tableCache.Load(t); ok {
		return cached.(map[string][]string)
	}
	table := make(map[string][]string)
	collectFields(t, "", table)
	actual, _ := tableCache.LoadOrStore(t, table)
	return actual.(map[string][]string)
}

func collectFields(t reflect.Type, prefix string, table map[string][]string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonName(field)
		if name == "-" {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		table[path] = renderRules(field.Tag.Get("binding"))

		elem := field.Type
		for elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
		switch elem.Kind() {
		case reflect.Struct:
			if !isLeafStruct(elem) {
				collectFields(elem, path, table)
			}
		case reflect.Slice, reflect.Array:
			item := elem.Elem()
			for item.Kind() == reflect.Pointer {
				item = item.Elem()
			}
			if item.Kind() == reflect.Struct && !isLeafStruct(item) {
				collectFields(item, path+"[]", table)
			}
		}
	}
}

// isLeafStruct reports whether a struct type serializes as a scalar
// (custom JSON marshaling) and should not be descended into.
func isLeafStruct(t reflect.Type) bool {
	marshaler := reflect.TypeOf((*interface{ MarshalJSON() ([]byte, error) })(nil)).Elem()
	return t.Implements(marshaler) || reflect.PointerTo(t).Implements(marshaler)
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

// renderRules converts a binding tag into ordered sentences. min and max
// pair up into a single "size must be between" sentence at the position of
// whichever appears first; unknown rules render visibly as
// `must satisfy "<rule>"` so drift is noticed rather than hidden.
func renderRules(tag string) []string {
	if tag == "" {
		return []string{}
	}

	type rule struct{ name, param string }
	var rules []rule
	for _, token := range strings.Split(tag, ",") {
		token = strings.TrimSpace(token)
		if token == "" || modifierRules[token] {
			continue
		}
		name, param, _ := strings.Cut(token, "=")
		rules = append(rules, rule{name: name, param: param})
	}

	params := make(map[string]string, len(rules))
	for _, r := range rules {
		params[r.name] = r.param
	}

	sentences := make([]string, 0, len(rules))
	sizeRendered := false
	for _, r := range rules {
		switch r.name {
		case "min", "max":
			if sizeRendered {
				continue
			}
			sizeRendered = true
			minP, hasMin := params["min"]
			maxP, hasMax := params["max"]
			switch {
			case hasMin && hasMax:
				sentences = append(sentences, fmt.Sprintf("size must be between %s and %s", minP, maxP))
			case hasMax:
				sentences = append(sentences, fmt.Sprintf("size must be between 0 and %s", maxP))
			default:
				sentences = append(sentences, fmt.Sprintf("size must be at least %s", minP))
			}
		case "oneof":
			values := strings.Join(strings.Fields(r.param), ", ")
			sentences = append(sentences, fmt.Sprintf(sentence("oneof"), values))
		default:
			tmpl := sentence(r.name)
			if strings.Contains(tmpl, "%s") {
				sentences = append(sentences, fmt.Sprintf(tmpl, r.param))
			} else {
				sentences = append(sentences, tmpl)
			}
		}
	}
	return sentences
}

func sentence(rule string) string {
	constraintSentences.RLock()
	defer constraintSentences.RUnlock()
	if tmpl, ok := constraintSentences.m[rule]; ok {
		return tmpl
	}
	return fmt.Sprintf("must satisfy %q", rule)
}
