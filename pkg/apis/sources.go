package apis

// Page is one documentation page as delivered by the external fetch layer.
// Content is the already-extracted text; URL identifies the source.
type Page struct {
	Title   string `json:"title" mapstructure:"title"`
	URL     string `json:"url" mapstructure:"url"`
	Content string `json:"content" mapstructure:"content"`
}

// FunctionInfo is one function or method record produced by the external
// static-analysis layer, with parameter and type metadata already parsed.
type FunctionInfo struct {
	Name       string      `json:"name" mapstructure:"name"`
	Parameters []Parameter `json:"parameters" mapstructure:"parameters"`
	ReturnType string      `json:"return_type,omitempty" mapstructure:"return_type"`
	Docstring  string      `json:"docstring,omitempty" mapstructure:"docstring"`
	LineNumber int         `json:"line_number,omitempty" mapstructure:"line_number"`
	IsAsync    bool        `json:"is_async,omitempty" mapstructure:"is_async"`
}

// ClassInfo is one class record with its nested methods.
type ClassInfo struct {
	Name        string         `json:"name" mapstructure:"name"`
	BaseClasses []string       `json:"base_classes,omitempty" mapstructure:"base_classes"`
	Methods     []FunctionInfo `json:"methods,omitempty" mapstructure:"methods"`
	Docstring   string         `json:"docstring,omitempty" mapstructure:"docstring"`
	LineNumber  int            `json:"line_number,omitempty" mapstructure:"line_number"`
}

// FileAnalysis is the per-file output of the static-analysis layer: zero or
// more classes (containing nested methods) plus top-level functions.
type FileAnalysis struct {
	Path      string         `json:"path" mapstructure:"path"`
	Classes   []ClassInfo    `json:"classes,omitempty" mapstructure:"classes"`
	Functions []FunctionInfo `json:"functions,omitempty" mapstructure:"functions"`
}
