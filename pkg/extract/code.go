package extract

import (
	"github.com/apidrift/apidrift/pkg/apis"
)

// BuildCodeIndex flattens per-file static-analysis records into a uniform
// name-keyed API index: classes keyed by class name, methods keyed by
// "ClassName.method", top-level functions by name. The transformation is
// pure and lossless; this index is the ground-truth layer for
// reconciliation.
func BuildCodeIndex(analyses []apis.FileAnalysis) apis.Index {
	index := make(apis.Index)

	for _, file := range analyses {
		for _, class := range file.Classes {
			index.Add(&apis.APIEntry{
				Name:      class.Name,
				Kind:      apis.KindClass,
				Docstring: class.Docstring,
				Source:    file.Path,
			})

			for _, method := range class.Methods {
				index.Add(codeEntry(class.Name+"."+method.Name, apis.KindMethod, method, file.Path))
			}
		}

		for _, fn := range file.Functions {
			index.Add(codeEntry(fn.Name, apis.KindFunction, fn, file.Path))
		}
	}

	return index
}

// codeEntry converts one analysis record into an APIEntry.
func codeEntry(name string, kind apis.Kind, info apis.FunctionInfo, path string) *apis.APIEntry {
	return &apis.APIEntry{
		Name:       name,
		Kind:       kind,
		Parameters: info.Parameters,
		ReturnType: info.ReturnType,
		Docstring:  info.Docstring,
		Source:     path,
		IsAsync:    info.IsAsync,
	}
}
