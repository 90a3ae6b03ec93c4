package apis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	tests := []struct {
		name  string
		entry APIEntry
		want  string
	}{
		{
			name:  "bare",
			entry: APIEntry{Name: "reset"},
			want:  "reset()",
		},
		{
			name: "typed with default",
			entry: APIEntry{
				Name: "fetch",
				Parameters: []Parameter{
					{Name: "url", Type: "str"},
					{Name: "timeout", Type: "int", Default: "30"},
				},
				ReturnType: "Response",
			},
			want: "fetch(url: str, timeout: int=30) -> Response",
		},
		{
			name: "async method",
			entry: APIEntry{
				Name:       "Client.stream",
				Kind:       KindMethod,
				Parameters: []Parameter{{Name: "chunk_size", Default: "1024"}},
				IsAsync:    true,
			},
			want: "async Client.stream(chunk_size=1024)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Signature())
		})
	}
}

func TestParameterNames(t *testing.T) {
	entry := APIEntry{Parameters: []Parameter{{Name: "a"}, {Name: "b"}}}
	assert.Equal(t, []string{"a", "b"}, entry.ParameterNames())
	assert.Empty(t, (&APIEntry{}).ParameterNames())
}

func TestIndexNamesSorted(t *testing.T) {
	idx := make(Index)
	idx.Add(&APIEntry{Name: "zeta"})
	idx.Add(&APIEntry{Name: "alpha"})
	idx.Add(&APIEntry{Name: "Mid.point"})

	assert.Equal(t, []string{"Mid.point", "alpha", "zeta"}, idx.Names())
	assert.True(t, idx.Has("alpha"))
	assert.False(t, idx.Has("missing"))
}

func TestUnion(t *testing.T) {
	a := make(Index)
	a.Add(&APIEntry{Name: "shared"})
	a.Add(&APIEntry{Name: "only_a"})
	b := make(Index)
	b.Add(&APIEntry{Name: "shared"})
	b.Add(&APIEntry{Name: "only_b"})

	assert.Equal(t, []string{"only_a", "only_b", "shared"}, Union(a, b))
	assert.Empty(t, Union())
}

func TestInsightsIssuesNilSafe(t *testing.T) {
	var insights *GitHubInsights
	assert.Nil(t, insights.Issues())

	insights = &GitHubInsights{
		CommonProblems: []Issue{{Number: 1}},
		KnownSolutions: []Issue{{Number: 2}},
	}
	all := insights.Issues()
	assert.Equal(t, []Issue{{Number: 1}, {Number: 2}}, all)
}
