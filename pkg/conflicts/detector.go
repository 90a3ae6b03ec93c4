package conflicts

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/apidrift/apidrift/pkg/apis"
)

// SimilarityThreshold is the minimum normalized string-similarity ratio at
// which two positional parameter names are considered the same parameter.
// Names scoring below it ("items" vs "item_list") are flagged as mismatches;
// near-synonyms at or above it ("item" vs "items") are tolerated. The ratio
// is Levenshtein distance normalized by the longer name's length, which
// tracks the sequence-matching ratio the rest of the toolchain uses closely
// enough at this threshold. Tunable per detector via WithSimilarityThreshold.
const SimilarityThreshold = 0.8

// Detector compares a documentation index against the authoritative code
// index and reports every disagreement. Construct once per reconciliation
// pass; both indexes are treated as immutable snapshots.
type Detector struct {
	docs      apis.Index
	code      apis.Index
	threshold float64
}

// Option configures a Detector.
type Option func(*Detector)

// WithSimilarityThreshold overrides the parameter-name similarity threshold.
// Values outside (0, 1] are ignored.
func WithSimilarityThreshold(threshold float64) Option {
	return func(d *Detector) {
		if threshold > 0 && threshold <= 1 {
			d.threshold = threshold
		}
	}
}

// NewDetector creates a Detector over the two indexes.
func NewDetector(docs, code apis.Index, opts ...Option) *Detector {
	d := &Detector{
		docs:      docs,
		code:      code,
		threshold: SimilarityThreshold,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectAll runs the three detection passes and returns their concatenated
// results: missing_in_docs, then missing_in_code, then signature mismatches.
// Within each pass, conflicts are ordered by API name, so identical inputs
// always yield an identical list.
func (d *Detector) DetectAll() []Conflict {
	var conflicts []Conflict
	conflicts = append(conflicts, d.missingInDocs()...)
	conflicts = append(conflicts, d.missingInCode()...)
	conflicts = append(conflicts, d.signatureMismatches()...)
	return conflicts
}

// missingInDocs reports every code-index name absent from the docs index.
// Internal naming conventions (leading underscore, double underscore)
// downgrade severity: undocumented private helpers are expected.
func (d *Detector) missingInDocs() []Conflict {
	var conflicts []Conflict
	for _, name := range d.code.Names() {
		if d.docs.Has(name) {
			continue
		}
		severity := SeverityMedium
		if isInternalName(name) {
			severity = SeverityLow
		}
		entry := d.code[name]
		conflicts = append(conflicts, Conflict{
			Type:       MissingInDocs,
			Severity:   severity,
			APIName:    name,
			CodeInfo:   entry,
			Difference: fmt.Sprintf("%s %s exists in code but is not documented", entry.Kind, name),
			Suggestion: fmt.Sprintf("add documentation for %s", entry.Signature()),
		})
	}
	return conflicts
}

// missingInCode reports every doc-index name absent from the code index.
// A documented-but-nonexistent API is the most actively misleading class of
// drift, so severity is always high.
func (d *Detector) missingInCode() []Conflict {
	var conflicts []Conflict
	for _, name := range d.docs.Names() {
		if d.code.Has(name) {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Type:       MissingInCode,
			Severity:   SeverityHigh,
			APIName:    name,
			DocsInfo:   d.docs[name],
			Difference: fmt.Sprintf("%s is documented but does not exist in code", name),
			Suggestion: fmt.Sprintf("remove or update documentation for %s", name),
		})
	}
	return conflicts
}

// signatureMismatches compares every name present in both indexes. Rules
// run in order and short-circuit at the first one that fires, so a
// parameter-count mismatch suppresses any name or type report for the same
// API.
func (d *Detector) signatureMismatches() []Conflict {
	var conflicts []Conflict
	for _, name := range d.docs.Names() {
		codeEntry, ok := d.code[name]
		if !ok {
			continue
		}
		if c := d.compareSignatures(d.docs[name], codeEntry); c != nil {
			conflicts = append(conflicts, *c)
		}
	}
	return conflicts
}

// compareSignatures applies the ordered mismatch rules to one API present
// in both indexes. Returns nil when the signatures agree.
func (d *Detector) compareSignatures(docsEntry, codeEntry *apis.APIEntry) *Conflict {
	if len(docsEntry.Parameters) != len(codeEntry.Parameters) {
		return d.mismatch(docsEntry, codeEntry, SeverityMedium,
			fmt.Sprintf("documentation lists %d parameters, code has %d",
				len(docsEntry.Parameters), len(codeEntry.Parameters)))
	}

	for i := range codeEntry.Parameters {
		docName := docsEntry.Parameters[i].Name
		codeName := codeEntry.Parameters[i].Name
		if docName == codeName {
			continue
		}
		if similarity(docName, codeName) < d.threshold {
			return d.mismatch(docsEntry, codeEntry, SeverityMedium,
				fmt.Sprintf("parameter %d is %q in documentation but %q in code",
					i+1, docName, codeName))
		}
	}

	for i := range codeEntry.Parameters {
		docType := docsEntry.Parameters[i].Type
		codeType := codeEntry.Parameters[i].Type
		if docType == "" || codeType == "" || docType == codeType {
			continue
		}
		return d.mismatch(docsEntry, codeEntry, SeverityLow,
			fmt.Sprintf("parameter %q is typed %q in documentation but %q in code",
				codeEntry.Parameters[i].Name, docType, codeType))
	}

	if docsEntry.ReturnType != "" && codeEntry.ReturnType != "" &&
		docsEntry.ReturnType != codeEntry.ReturnType {
		return d.mismatch(docsEntry, codeEntry, SeverityLow,
			fmt.Sprintf("return type is %q in documentation but %q in code",
				docsEntry.ReturnType, codeEntry.ReturnType))
	}

	return nil
}

// mismatch builds a signature_mismatch conflict carrying both sides.
func (d *Detector) mismatch(docsEntry, codeEntry *apis.APIEntry, severity Severity, difference string) *Conflict {
	return &Conflict{
		Type:       SignatureMismatch,
		Severity:   severity,
		APIName:    codeEntry.Name,
		DocsInfo:   docsEntry,
		CodeInfo:   codeEntry,
		Difference: difference,
		Suggestion: fmt.Sprintf("update documentation to match %s", codeEntry.Signature()),
	}
}

// similarity returns the normalized similarity ratio of two strings in
// [0, 1], where 1 means identical.
func similarity(a, b string) float64 {
	return levenshtein.Similarity(a, b, levenshtein.NewParams())
}

// isInternalName reports whether a name follows an internal naming
// convention: a leading underscore or a double underscore anywhere.
func isInternalName(name string) bool {
	return strings.HasPrefix(name, "_") || strings.Contains(name, "__")
}

// Summary aggregates a conflict list by type and by severity.
type Summary struct {
	Total      int            `json:"total"`
	ByType     map[Type]int   `json:"by_type"`
	BySeverity map[string]int `json:"by_severity"`
}

// Summarize builds a Summary over the given conflicts.
func Summarize(conflicts []Conflict) Summary {
	summary := Summary{
		Total:      len(conflicts),
		ByType:     make(map[Type]int),
		BySeverity: make(map[string]int),
	}
	for _, c := range conflicts {
		summary.ByType[c.Type]++
		summary.BySeverity[c.Severity.String()]++
	}
	return summary
}
