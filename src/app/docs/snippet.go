package docs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Snippet is one rendered documentation fragment of an interaction.
type Snippet interface {
	filename() string
	render() ([]byte, error)
}

// Recorder persists documentation snippets generated from recorded test
// interactions. Each documented interaction gets its own directory under
// the recorder's output root.
type Recorder struct {
	dir string
}

// NewRecorder creates a Recorder writing under dir.
func NewRecorder(dir string) *Recorder {
	return &Recorder{dir: dir}
}

// Document renders the given snippets into <dir>/<name>/. Rendering fails
// if any descriptor carried a constraint-lookup error or a field section
// does not match its payload; nothing is written for a failed snippet.
func (r *Recorder) Document(name string, snippets ...Snippet) error {
	target := filepath.Join(r.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("docs: create snippet dir: %w", err)
	}
	for _, s := range snippets {
		content, err := s.render()
		if err != nil {
			return fmt.Errorf("docs: %s/%s: %w", name, s.filename(), err)
		}
		if err := os.WriteFile(filepath.Join(target, s.filename()), content, 0o644); err != nil {
			return fmt.Errorf("docs: write snippet: %w", err)
		}
	}
	return nil
}

// parameterSnippet renders a two-column parameter table.
type parameterSnippet struct {
	file   string
	title  string
	params []*ParameterDescriptor
}

// PathParameters documents the path parameters of an interaction.
func PathParameters(params ...*ParameterDescriptor) Snippet {
	return &parameterSnippet{file: "path-parameters.md", title: "Parameter", params: params}
}

// QueryParameters documents the query parameters of an interaction.
func QueryParameters(params ...*ParameterDescriptor) Snippet {
	return &parameterSnippet{file: "query-parameters.md", title: "Parameter", params: params}
}

func (s *parameterSnippet) filename() string { return s.file }

func (s *parameterSnippet) render() ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "| %s | Description |\n", s.title)
	b.WriteString("| --- | --- |\n")
	for _, p := range s.params {
		fmt.Fprintf(&b, "| `%s` | %s |\n", p.Name, p.Description)
	}
	return []byte(b.String()), nil
}

// fieldSnippet renders a field table and verifies it against the actual
// payload: every payload field must be documented and every documented,
// non-ignored field must appear in the payload.
type fieldSnippet struct {
	file    string
	payload []byte
	fields  []*FieldDescriptor
}

// RequestFields documents the body fields of a recorded request.
func RequestFields(payload []byte, fields ...*FieldDescriptor) Snippet {
	return &fieldSnippet{file: "request-fields.md", payload: payload, fields: fields}
}

// ResponseFields documents the body fields of a recorded response.
func ResponseFields(payload []byte, fields ...*FieldDescriptor) Snippet {
	return &fieldSnippet{file: "response-fields.md", payload: payload, fields: fields}
}

func (s *fieldSnippet) filename() string { return s.file }

func (s *fieldSnippet) render() ([]byte, error) {
	for _, f := range s.fields {
		if f.err != nil {
			return nil, f.err
		}
	}
	if err := s.verify(); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("| Path | Description | Constraints |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, f := range s.fields {
		if f.Ignored {
			continue
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", f.Path, f.Description, f.Attributes[AttrConstraints])
	}
	return []byte(b.String()), nil
}

func (s *fieldSnippet) verify() error {
	var body any
	if err := json.Unmarshal(s.payload, &body); err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}

	actual := map[string]struct{}{}
	flattenJSON("", body, actual)

	documented := make(map[string]struct{}, len(s.fields))
	for _, f := range s.fields {
		documented[f.Path] = struct{}{}
	}

	var undocumented, missing []string
	for path := range actual {
		if _, ok := documented[path]; !ok {
			undocumented = append(undocumented, path)
		}
	}
	for _, f := range s.fields {
		if f.Ignored {
			continue
		}
		if _, ok := actual[f.Path]; !ok {
			missing = append(missing, f.Path)
		}
	}
	sort.Strings(undocumented)
	sort.Strings(missing)

	if len(undocumented) > 0 {
		return fmt.Errorf("undocumented payload fields: %s", strings.Join(undocumented, ", "))
	}
	if len(missing) > 0 {
		return fmt.Errorf("documented fields missing from payload: %s", strings.Join(missing, ", "))
	}
	return nil
}

// flattenJSON records every field path present in a decoded JSON value.
// Object keys join with "."; array elements contribute their paths under
// "<path>[]". A key whose value is null still counts as present.
func flattenJSON(prefix string, v any, out map[string]struct{}) {
	switch value := v.(type) {
	case map[string]any:
		for key, child := range value {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			out[path] = struct{}{}
			flattenJSON(path, child, out)
		}
	case []any:
		path := prefix + "[]"
		if prefix != "" {
			out[path] = struct{}{}
		}
		for _, child := range value {
			flattenJSON(path, child, out)
		}
	}
}
