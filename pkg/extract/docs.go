// Package extract builds API indexes from the two structured provenances:
// free-text documentation pages (pattern-template scanning) and static
// code-analysis records (lossless flattening). It also owns the input
// boundary that normalizes loosely-shaped source collections.
package extract

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/apidrift/apidrift/pkg/apis"
	"github.com/apidrift/apidrift/pkg/logging"
)

// template is one signature-shaped pattern convention. Confidence scores how
// much structure the template captures; when several templates match the
// same name, the highest-confidence candidate is retained and the matching
// template is recorded on the entry for debuggability.
type template struct {
	name       string
	re         *regexp.Regexp
	confidence float64
}

// Template evaluation order. Submatch layout per template:
//
//	definition:  1=async 2=name 3=params 4=return type
//	declaration: 1=return type 2=name 3=params
//	method-call: 1=dotted name 2=params
var docTemplates = []template{
	{
		name:       "definition",
		re:         regexp.MustCompile(`(?m)^[ \t>]*(async[ \t]+)?def[ \t]+([A-Za-z_]\w*(?:\.[A-Za-z_]\w*)?)[ \t]*\(([^)]*)\)[ \t]*(?:->[ \t]*([^\n:]+))?`),
		confidence: 0.9,
	},
	{
		name:       "declaration",
		re:         regexp.MustCompile(`(?m)^[ \t>]*([A-Za-z_][\w.\[\]]*)[ \t]+([A-Za-z_]\w*)[ \t]*\(([^)]*)\)`),
		confidence: 0.6,
	},
	{
		name:       "method-call",
		re:         regexp.MustCompile(`\b([A-Za-z_]\w*\.[A-Za-z_]\w*)[ \t]*\(([^)]*)\)`),
		confidence: 0.4,
	},
}

// declarationKeywords are leading words that disqualify a declaration-style
// match; they indicate control flow or a convention another template owns.
var declarationKeywords = map[string]bool{
	"def": true, "async": true, "await": true, "return": true,
	"if": true, "elif": true, "else": true, "for": true, "while": true,
	"class": true, "new": true, "import": true, "from": true,
}

// DocExtractor scans documentation text for signature-shaped patterns and
// emits a name-keyed candidate API index. Matches are not verified to occur
// inside code samples; noisy candidates are tolerated downstream because
// doc entries carry low default confidence and the code index is
// authoritative.
type DocExtractor struct {
	templates []template
	logger    *zerolog.Logger
}

// DocOption configures a DocExtractor.
type DocOption func(*DocExtractor)

// WithDocLogger sets the logger used for skipped-record diagnostics.
func WithDocLogger(logger *zerolog.Logger) DocOption {
	return func(x *DocExtractor) {
		if logger != nil {
			x.logger = logger
		}
	}
}

// NewDocExtractor creates a DocExtractor with the standard template set.
func NewDocExtractor(opts ...DocOption) *DocExtractor {
	x := &DocExtractor{
		templates: docTemplates,
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Extract scans every page and returns the combined candidate index. When
// two pages (or two templates) yield the same name, the higher-confidence
// candidate wins.
func (x *DocExtractor) Extract(pages []apis.Page) apis.Index {
	index := make(apis.Index)
	for _, page := range pages {
		for name, entry := range x.ExtractPage(page) {
			KeepBest(index, name, entry)
		}
	}
	return index
}

// ExtractPage scans a single page. A malformed match is skipped with a
// debug log; the page is never aborted.
func (x *DocExtractor) ExtractPage(page apis.Page) apis.Index {
	index := make(apis.Index)
	for _, tmpl := range x.templates {
		for _, match := range tmpl.re.FindAllStringSubmatch(page.Content, -1) {
			entry, ok := x.entryFromMatch(tmpl, match, page)
			if !ok {
				x.logger.Debug().
					Str("template", tmpl.name).
					Str("page", page.URL).
					Str("match", truncate(match[0], 80)).
					Msg("skipping malformed signature match")
				continue
			}
			KeepBest(index, entry.Name, entry)
		}
	}
	return index
}

// entryFromMatch converts one regex match into a candidate APIEntry.
func (x *DocExtractor) entryFromMatch(tmpl template, match []string, page apis.Page) (*apis.APIEntry, bool) {
	var (
		name, params, returnType string
		isAsync                  bool
	)

	switch tmpl.name {
	case "definition":
		isAsync = strings.TrimSpace(match[1]) == "async"
		name = match[2]
		params = match[3]
		returnType = strings.TrimSpace(match[4])
	case "declaration":
		returnType = strings.TrimSpace(match[1])
		if declarationKeywords[returnType] {
			return nil, false
		}
		name = match[2]
		params = match[3]
	case "method-call":
		name = match[1]
		params = match[2]
	default:
		return nil, false
	}

	if name == "" {
		return nil, false
	}

	kind := apis.KindFunction
	if strings.Contains(name, ".") {
		kind = apis.KindMethod
	}

	return &apis.APIEntry{
		Name:         name,
		Kind:         kind,
		Parameters:   parseParameters(params),
		ReturnType:   returnType,
		Source:       page.URL,
		RawSignature: strings.TrimSpace(match[0]),
		IsAsync:      isAsync,
		Template:     tmpl.name,
		Confidence:   tmpl.confidence,
	}, true
}

// KeepBest retains the higher-confidence candidate for a name. Ties keep
// the existing entry so earlier templates and pages win deterministically.
func KeepBest(index apis.Index, name string, entry *apis.APIEntry) {
	if existing, ok := index[name]; ok && existing.Confidence >= entry.Confidence {
		return
	}
	index[name] = entry
}

// parseParameters splits a raw parameter list on top-level commas, then each
// parameter on the ":" type separator and "=" default separator.
func parseParameters(raw string) []apis.Parameter {
	parts := splitTopLevel(raw, ',')
	params := make([]apis.Parameter, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		params = append(params, parseParameter(part))
	}
	return params
}

// parseParameter handles the three observed shapes: "name", "name: type"
// (optionally with "=default"), and the declaration-style "type name".
func parseParameter(raw string) apis.Parameter {
	var p apis.Parameter

	if eq := indexTopLevel(raw, '='); eq >= 0 {
		p.Default = strings.TrimSpace(raw[eq+1:])
		raw = strings.TrimSpace(raw[:eq])
	}

	if colon := indexTopLevel(raw, ':'); colon >= 0 {
		p.Name = strings.TrimSpace(raw[:colon])
		p.Type = strings.TrimSpace(raw[colon+1:])
		return p
	}

	// Declaration-style "type name": the final word is the name.
	if fields := strings.Fields(raw); len(fields) > 1 {
		p.Name = fields[len(fields)-1]
		p.Type = strings.Join(fields[:len(fields)-1], " ")
		return p
	}

	p.Name = raw
	return p
}

// splitTopLevel splits s on sep, ignoring separators nested inside
// brackets or quotes.
func splitTopLevel(s string, sep byte) []string {
	var (
		parts []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// indexTopLevel returns the index of the first top-level occurrence of sep,
// or -1 when sep only appears nested or not at all.
func indexTopLevel(s string, sep byte) int {
	var depth int
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == sep && depth == 0:
			return i
		}
	}
	return -1
}

// truncate shortens a string for log output.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
