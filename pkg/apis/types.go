// Package apis defines the domain types shared across the apidrift system:
// extracted API entries, documentation pages, code-analysis records, and
// issue-tracker data. All types are plain data — extraction, detection, and
// merging logic live in their own packages.
package apis

import (
	"fmt"
	"strings"
)

// Kind identifies what sort of callable surface an APIEntry describes.
type Kind string

// Supported API entry kinds.
const (
	KindFunction Kind = "function"
	KindMethod   Kind = "method"
	KindClass    Kind = "class"
)

// Parameter is a single parameter of a function, method, or class
// constructor. Type and Default are optional; not every source records them.
type Parameter struct {
	Name    string `json:"name" mapstructure:"name"`
	Type    string `json:"type,omitempty" mapstructure:"type"`
	Default string `json:"default,omitempty" mapstructure:"default"`
}

// APIEntry is one named, callable surface extracted from a single source.
// Name is the unique key within one index; methods use the dotted form
// "ClassName.method".
type APIEntry struct {
	Name         string      `json:"name"`
	Kind         Kind        `json:"kind"`
	Parameters   []Parameter `json:"parameters"`
	ReturnType   string      `json:"return_type,omitempty"`
	Docstring    string      `json:"docstring,omitempty"`
	Source       string      `json:"source"`
	RawSignature string      `json:"raw_signature,omitempty"`
	IsAsync      bool        `json:"is_async"`

	// Template names the extraction template that produced this entry and
	// Confidence scores how specific that template's captured structure is.
	// Both are populated on documentation-extracted entries only; code
	// analysis records are structural and carry neither.
	Template   string  `json:"template,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Signature renders the entry as a canonical one-line signature, e.g.
// "fetch(url: str, timeout=30) -> Response".
func (e *APIEntry) Signature() string {
	var b strings.Builder
	if e.IsAsync {
		b.WriteString("async ")
	}
	b.WriteString(e.Name)
	b.WriteString("(")
	for i, p := range e.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if p.Type != "" {
			b.WriteString(": ")
			b.WriteString(p.Type)
		}
		if p.Default != "" {
			b.WriteString("=")
			b.WriteString(p.Default)
		}
	}
	b.WriteString(")")
	if e.ReturnType != "" {
		b.WriteString(" -> ")
		b.WriteString(e.ReturnType)
	}
	return b.String()
}

// ParameterNames returns the ordered parameter names.
func (e *APIEntry) ParameterNames() []string {
	names := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		names[i] = p.Name
	}
	return names
}

// String implements fmt.Stringer.
func (e *APIEntry) String() string {
	return fmt.Sprintf("%s %s", e.Kind, e.Signature())
}
