package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apidrift/apidrift/pkg/apis"
)

func TestBuildCodeIndex(t *testing.T) {
	analyses := []apis.FileAnalysis{
		{
			Path: "src/client.py",
			Classes: []apis.ClassInfo{
				{
					Name:      "Client",
					Docstring: "HTTP client.",
					Methods: []apis.FunctionInfo{
						{
							Name:       "request",
							Parameters: []apis.Parameter{{Name: "url", Type: "str"}},
							ReturnType: "Response",
						},
						{Name: "close"},
					},
				},
			},
			Functions: []apis.FunctionInfo{
				{
					Name:       "connect",
					Parameters: []apis.Parameter{{Name: "host"}},
					IsAsync:    true,
				},
			},
		},
		{
			Path:      "src/util.py",
			Functions: []apis.FunctionInfo{{Name: "retry"}},
		},
	}

	index := BuildCodeIndex(analyses)

	require.Len(t, index, 5)
	assert.Equal(t, []string{"Client", "Client.close", "Client.request", "connect", "retry"}, index.Names())

	class := index["Client"]
	assert.Equal(t, apis.KindClass, class.Kind)
	assert.Equal(t, "HTTP client.", class.Docstring)
	assert.Equal(t, "src/client.py", class.Source)

	method := index["Client.request"]
	assert.Equal(t, apis.KindMethod, method.Kind)
	assert.Equal(t, "Response", method.ReturnType)
	require.Len(t, method.Parameters, 1)
	assert.Equal(t, "url", method.Parameters[0].Name)

	fn := index["connect"]
	assert.Equal(t, apis.KindFunction, fn.Kind)
	assert.True(t, fn.IsAsync)
	assert.Equal(t, "src/client.py", fn.Source)
}

func TestBuildCodeIndexEmpty(t *testing.T) {
	assert.Empty(t, BuildCodeIndex(nil))
	assert.Empty(t, BuildCodeIndex([]apis.FileAnalysis{{Path: "empty.py"}}))
}

func TestCodeEntriesCarryNoConfidence(t *testing.T) {
	index := BuildCodeIndex([]apis.FileAnalysis{
		{Path: "a.py", Functions: []apis.FunctionInfo{{Name: "f"}}},
	})

	entry := index["f"]
	assert.Empty(t, entry.Template)
	assert.Zero(t, entry.Confidence)
}
