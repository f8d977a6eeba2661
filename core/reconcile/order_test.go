package reconcile

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func internal(parent string) bool {
	return strings.HasPrefix(parent, "org/")
}

func TestOrderByParent(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		want  []int
	}{
		{
			name:  "external parents keep input order",
			nodes: []Node{{"org/a", "upper"}, {"org/b", "lower"}},
			want:  []int{0, 1},
		},
		{
			name:  "child listed before parent",
			nodes: []Node{{"org/child", "org/parent"}, {"org/parent", "upper"}},
			want:  []int{1, 0},
		},
		{
			name: "chain",
			nodes: []Node{
				{"org/c", "org/b"},
				{"org/b", "org/a"},
				{"org/a", "lower"},
				{"org/x", "upper"},
			},
			want: []int{2, 1, 0, 3},
		},
		{
			name:  "empty",
			nodes: nil,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OrderByParent(tt.nodes, internal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderByParent_ParentsFirst(t *testing.T) {
	nodes := []Node{
		{"org/4", "org/3"},
		{"org/2", "org/1"},
		{"org/3", "org/1"},
		{"org/1", "upper"},
		{"org/5", "org/2"},
	}

	order, err := OrderByParent(nodes, internal)
	require.NoError(t, err)
	require.Len(t, order, len(nodes))

	pos := make(map[string]int)
	for i, idx := range order {
		pos[nodes[idx].ID] = i
	}
	for _, n := range nodes {
		if internal(n.Parent) {
			assert.Less(t, pos[n.Parent], pos[n.ID], "%s must come after %s", n.ID, n.Parent)
		}
	}
}

func TestOrderByParent_Fatal(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		wantIDs string
	}{
		{
			name:    "cycle",
			nodes:   []Node{{"org/a", "org/b"}, {"org/b", "org/a"}, {"org/c", "upper"}},
			wantIDs: "org/a,org/b",
		},
		{
			name:    "self reference",
			nodes:   []Node{{"org/a", "org/a"}},
			wantIDs: "org/a",
		},
		{
			name:    "parent outside the batch",
			nodes:   []Node{{"org/a", "org/missing"}},
			wantIDs: "org/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OrderByParent(tt.nodes, internal)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCancelled))
			assert.Equal(t, KindOrdering, KindOf(err))

			var fe *FatalError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantIDs, fe.Context["ids"])
		})
	}
}
