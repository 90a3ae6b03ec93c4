// Package cmdutil owns the CLI's file I/O: loading pre-parsed source
// snapshots from JSON/YAML files and writing result documents. The library
// core stays free of any file handling.
package cmdutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/apidrift/apidrift/pkg/apis"
	"github.com/apidrift/apidrift/pkg/constants"
	"github.com/apidrift/apidrift/pkg/errors"
	"github.com/apidrift/apidrift/pkg/extract"
)

// LoadPages reads a documentation-page collection from a JSON file. The
// file may hold either an ordered list of page records or a mapping keyed
// by page name; normalization happens once, here.
func LoadPages(path string) ([]apis.Page, error) {
	raw, err := loadJSON(path)
	if err != nil {
		return nil, err
	}
	return extract.NormalizePages(path, raw)
}

// LoadAnalyses reads code-analysis records from a JSON file.
func LoadAnalyses(path string) ([]apis.FileAnalysis, error) {
	raw, err := loadJSON(path)
	if err != nil {
		return nil, err
	}
	return extract.DecodeAnalyses(path, raw)
}

// LoadInsights reads the optional GitHub insights layer from a JSON file.
// A missing or malformed file degrades to nil rather than failing the run.
func LoadInsights(path string) *apis.GitHubInsights {
	if path == "" {
		return nil
	}
	raw, err := loadJSON(path)
	if err != nil {
		return nil
	}
	return extract.DecodeInsights(raw)
}

// topicsFile is the YAML shape of a topic vocabulary file.
type topicsFile struct {
	Topics []string `yaml:"topics"`
}

// LoadTopics reads a topic vocabulary from a YAML file. Both a bare list
// and a document with a top-level "topics" key are accepted.
func LoadTopics(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var doc topicsFile
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Topics) > 0 {
		return doc.Topics, nil
	}

	var topics []string
	if err := yaml.Unmarshal(data, &topics); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return topics, nil
}

// WriteJSON writes v as indented JSON to path, or to stdout when path is
// empty or "-".
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// loadJSON reads a file into an untyped value for boundary normalization.
func loadJSON(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return raw, nil
}
