package docs

// FieldDescriptor documents a single request or response field. Build one
// with FieldWithPath or ConstrainedFields.WithPath and chain the setters.
type FieldDescriptor struct {
	Path        string
	Description string
	Ignored     bool
	Attributes  map[string]string

	// err carries a constraint-lookup failure until the descriptor is
	// rendered into a snippet, keeping call sites fluent.
	err error
}

// FieldWithPath starts a descriptor for the given field path.
func FieldWithPath(path string) *FieldDescriptor {
	return &FieldDescriptor{Path: path, Attributes: map[string]string{}}
}

// WithDescription sets the human-readable description.
func (f *FieldDescriptor) WithDescription(text string) *FieldDescriptor {
	f.Description = text
	return f
}

// Ignore marks the field as documented but omitted from the rendered
// snippet. Ignored fields still count when the payload is verified.
func (f *FieldDescriptor) Ignore() *FieldDescriptor {
	f.Ignored = true
	return f
}

// WithAttribute attaches arbitrary snippet metadata, e.g. constraint text.
func (f *FieldDescriptor) WithAttribute(key, value string) *FieldDescriptor {
	f.Attributes[key] = value
	return f
}

// ParameterDescriptor documents a path or query parameter.
type ParameterDescriptor struct {
	Name        string
	Description string
}

// ParameterWithName starts a descriptor for the given parameter.
func ParameterWithName(name string) *ParameterDescriptor {
	return &ParameterDescriptor{Name: name}
}

// WithDescription sets the human-readable description.
func (p *ParameterDescriptor) WithDescription(text string) *ParameterDescriptor {
	p.Description = text
	return p
}

// AttrConstraints is the attribute key under which constraint text is
// attached to field descriptors.
const AttrConstraints = "constraints"

// ConstrainedFields builds field descriptors that carry the constraint
// text declared on a transfer shape, so request documentation always
// reflects the validation rules actually in force.
type ConstrainedFields struct {
	descriptions *ConstraintDescriptions
}

// NewConstrainedFields inspects the type of v (a struct or pointer to
// struct) for binding constraints.
func NewConstrainedFields(v any) *ConstrainedFields {
	return &ConstrainedFields{descriptions: NewConstraintDescriptions(v)}
}

// WithPath builds a descriptor for path with its constraint sentences
// attached under AttrConstraints. An unknown path surfaces as an error
// when the descriptor is rendered into a snippet.
func (c *ConstrainedFields) WithPath(path string) *FieldDescriptor {
	f := FieldWithPath(path)
	text, err := c.descriptions.Describe(path)
	if err != nil {
		f.err = err
		return f
	}
	return f.WithAttribute(AttrConstraints, text)
}
