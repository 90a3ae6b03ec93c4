// Package conflicts detects and classifies disagreements between the
// documentation view and the code view of an API surface. Detection is a
// deterministic pure function of the two indexes; no I/O is performed.
package conflicts

import (
	"fmt"

	"github.com/apidrift/apidrift/pkg/apis"
)

// Type classifies what kind of disagreement a Conflict records.
type Type string

// Conflict types.
const (
	MissingInDocs       Type = "missing_in_docs"
	MissingInCode       Type = "missing_in_code"
	SignatureMismatch   Type = "signature_mismatch"
	DescriptionMismatch Type = "description_mismatch"
)

// Severity is an ordered measure of how misleading a conflict is. The zero
// value is SeverityLow; ordering is Low < Medium < High so severity-based
// filtering and aggregation compare correctly by construction.
type Severity int

// Severity levels.
const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalJSON encodes the severity as its string name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a severity from its string name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	parsed, err := ParseSeverity(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a severity name to its ordered value.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	default:
		return SeverityLow, fmt.Errorf("unknown severity %q", name)
	}
}

// Conflict is one detected, severity-tagged disagreement between two sources
// about one API's existence or shape. For missing_* types exactly one of
// DocsInfo/CodeInfo is present; for signature_mismatch both are. Conflicts
// are immutable once created and consumed only by merging and reporting.
type Conflict struct {
	Type       Type            `json:"type"`
	Severity   Severity        `json:"severity"`
	APIName    string          `json:"api_name"`
	DocsInfo   *apis.APIEntry  `json:"docs_info,omitempty"`
	CodeInfo   *apis.APIEntry  `json:"code_info,omitempty"`
	Difference string          `json:"difference"`
	Suggestion string          `json:"suggestion"`
}

// String implements fmt.Stringer.
func (c Conflict) String() string {
	return fmt.Sprintf("[%s/%s] %s: %s", c.Type, c.Severity, c.APIName, c.Difference)
}
