package relax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAlignmentIndexingScenario4 reproduces spec.md's concrete alignment
// scenario: α over variables (0,1,2) with domains (3,4,5), β = variable 1.
func TestAlignmentIndexingScenario4(t *testing.T) {
	ai := newAlignmentIndexing(
		[]int{0, 1, 2}, []int{3, 4, 5},
		[]int{1}, []int{4},
	)
	require.Equal(t, []int{0, 5, 10, 15}, ai.IndexFirst)
	require.Equal(t, []int{
		0, 1, 2, 3, 4,
		20, 21, 22, 23, 24,
		40, 41, 42, 43, 44,
	}, ai.IndexSecond)
}

func TestAlignmentIndexingNullaryBeta(t *testing.T) {
	ai := newAlignmentIndexing(
		[]int{0, 1}, []int{2, 3},
		nil, nil,
	)
	require.Equal(t, []int{0}, ai.IndexFirst)
	require.Len(t, ai.IndexSecond, 6)
}

func TestAlignmentIndexingCoversEveryAlphaOffsetExactlyOnce(t *testing.T) {
	ai := newAlignmentIndexing(
		[]int{0, 1, 2}, []int{2, 2, 2},
		[]int{0, 2}, []int{2, 2},
	)
	seen := make(map[int]bool)
	for _, f := range ai.IndexFirst {
		for _, s := range ai.IndexSecond {
			require.False(t, seen[f+s], "offset %d produced more than once", f+s)
			seen[f+s] = true
		}
	}
	require.Len(t, seen, 8)
}
