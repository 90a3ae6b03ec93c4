package extract

import (
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/apidrift/apidrift/pkg/apis"
	"github.com/apidrift/apidrift/pkg/errors"
)

// NormalizePages resolves the ambiguity in how page collections arrive from
// the fetch layer: some producers emit an ordered list of page records,
// others a mapping keyed by page name. The ambiguity is resolved once, here,
// at the input boundary; everything downstream sees a plain slice.
//
// Mapping keys are visited in sorted order so the normalized slice is
// deterministic. A record that cannot be decoded as a page is skipped; the
// collection is only rejected when its top-level shape is neither a list nor
// a mapping.
func NormalizePages(source string, raw any) ([]apis.Page, error) {
	switch v := raw.(type) {
	case []apis.Page:
		return v, nil
	case []any:
		return decodePageList(v), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pages := make([]apis.Page, 0, len(v))
		for _, k := range keys {
			page, ok := decodePage(v[k])
			if !ok {
				continue
			}
			if page.Title == "" {
				page.Title = k
			}
			pages = append(pages, page)
		}
		return pages, nil
	case nil:
		return nil, nil
	default:
		return nil, errors.NewShapeError(source, "list or mapping of pages", typeName(raw))
	}
}

func decodePageList(items []any) []apis.Page {
	pages := make([]apis.Page, 0, len(items))
	for _, item := range items {
		if page, ok := decodePage(item); ok {
			pages = append(pages, page)
		}
	}
	return pages
}

// decodePage decodes a single loosely-shaped page record. Records that are
// not mappings, or that carry no content, are dropped rather than failing
// the batch.
func decodePage(raw any) (apis.Page, bool) {
	var page apis.Page
	if err := mapstructure.Decode(raw, &page); err != nil {
		return apis.Page{}, false
	}
	if page.Content == "" {
		return apis.Page{}, false
	}
	return page, true
}

// DecodeAnalyses decodes loosely-shaped code-analysis records into typed
// FileAnalysis values. Individual records that fail to decode are skipped.
func DecodeAnalyses(source string, raw any) ([]apis.FileAnalysis, error) {
	switch v := raw.(type) {
	case []apis.FileAnalysis:
		return v, nil
	case []any:
		analyses := make([]apis.FileAnalysis, 0, len(v))
		for _, item := range v {
			var fa apis.FileAnalysis
			if err := mapstructure.Decode(item, &fa); err != nil {
				continue
			}
			analyses = append(analyses, fa)
		}
		return analyses, nil
	case nil:
		return nil, nil
	default:
		return nil, errors.NewShapeError(source, "list of file analyses", typeName(raw))
	}
}

// DecodeInsights decodes the optional GitHub insights layer. A malformed
// layer degrades to nil rather than failing the run.
func DecodeInsights(raw any) *apis.GitHubInsights {
	if raw == nil {
		return nil
	}
	if typed, ok := raw.(*apis.GitHubInsights); ok {
		return typed
	}
	var insights apis.GitHubInsights
	if err := mapstructure.Decode(raw, &insights); err != nil {
		return nil
	}
	return &insights
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64, int:
		return "number"
	case bool:
		return "bool"
	default:
		return "unknown"
	}
}
