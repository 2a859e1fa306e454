package redline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestComputeHunks_NoChange(t *testing.T) {
	_, err := ComputeHunks("a\nb\n", "a\nb\n")
	require.ErrorIs(t, err, ErrNoChangeDetected)

	// Differences only in line endings are not differences.
	_, err = ComputeHunks("a\r\nb\r\n", "a\nb\n")
	require.ErrorIs(t, err, ErrNoChangeDetected)

	_, err = ComputeHunks("", "")
	require.ErrorIs(t, err, ErrNoChangeDetected)
}

// TestComputeHunks_TwoEditsBridgedByOneLine is the canonical merge case: a single unchanged line
// between two edits is under the default threshold, so the two modifications review as one unit.
func TestComputeHunks_TwoEditsBridgedByOneLine(t *testing.T) {
	hunks, err := ComputeHunks("A\nB\nC\nD\n", "A\nX\nC\nY\n")
	require.NoError(t, err)

	want := []Hunk{
		{
			ID:            1,
			StartLine:     1,
			EndLine:       3,
			OriginalLines: []string{"B", "C", "D"},
			NewLines:      []string{"X", "C", "Y"},
			Type:          HunkModify,
			Status:        StatusPending,
		},
	}
	if diff := cmp.Diff(want, hunks); diff != "" {
		t.Errorf("hunks are different (-want, +got):\n%s", diff)
	}
}

func TestComputeHunks_PureAddition(t *testing.T) {
	hunks, err := ComputeHunks("line1\nline2\n", "line1\nline2\nline3\n")
	require.NoError(t, err)

	require.Len(t, hunks, 1)
	require.Equal(t, HunkAdd, hunks[0].Type)
	require.Equal(t, []string{"line3"}, hunks[0].NewLines)
	require.Empty(t, hunks[0].OriginalLines)
}

func TestComputeHunks_DistantEditsStaySeparate(t *testing.T) {
	// Two single-line edits separated by five unchanged lines: over the default threshold of 2,
	// so they must remain two hunks.
	o := "a\nu1\nu2\nu3\nu4\nu5\nb\n"
	m := "A\nu1\nu2\nu3\nu4\nu5\nB\n"

	hunks, err := ComputeHunks(o, m)
	require.NoError(t, err)

	require.Len(t, hunks, 2)
	require.Equal(t, HunkModify, hunks[0].Type)
	require.Equal(t, []string{"a"}, hunks[0].OriginalLines)
	require.Equal(t, HunkModify, hunks[1].Type)
	require.Equal(t, []string{"b"}, hunks[1].OriginalLines)
	require.Equal(t, 1, hunks[0].ID)
	require.Equal(t, 2, hunks[1].ID)
}

func TestComputeHunks_ThresholdControlsMerging(t *testing.T) {
	o := "a\nb\nc\nd\ne\n"
	m := "A\nb\nc\nd\nE\n"

	// Gap of three unchanged lines: separate at the default threshold, merged at 3.
	def, err := ComputeHunks(o, m)
	require.NoError(t, err)
	require.Len(t, def, 2)

	merged, err := ComputeHunksThreshold(o, m, 3)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, merged[0].OriginalLines)
	require.Equal(t, []string{"A", "b", "c", "d", "E"}, merged[0].NewLines)

	// Merging is conservative: every line of the unmerged hunks survives, and the count never
	// grows.
	require.LessOrEqual(t, len(merged), len(def))
}

func TestComputeHunks_IDsAreSessionUnique(t *testing.T) {
	hunks, err := ComputeHunksThreshold("a\nb\nc\nd\ne\nf\ng\n", "A\nb\nC\nd\nE\nf\nG\n", -1)
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, h := range hunks {
		require.False(t, seen[h.ID], "duplicate hunk id %d", h.ID)
		seen[h.ID] = true
	}
}

func TestComputeHunks_WholeDocumentReplaced(t *testing.T) {
	hunks, err := ComputeHunks("old text\n", "completely different\n")
	require.NoError(t, err)

	require.Len(t, hunks, 1)
	require.Equal(t, HunkModify, hunks[0].Type)
	require.Equal(t, []string{"old text"}, hunks[0].OriginalLines)
	require.Equal(t, []string{"completely different"}, hunks[0].NewLines)
}

func TestComputeHunks_EmptyOriginal(t *testing.T) {
	hunks, err := ComputeHunks("", "a\nb\n")
	require.NoError(t, err)

	require.Len(t, hunks, 1)
	require.Equal(t, HunkAdd, hunks[0].Type)
	require.Equal(t, []string{"a", "b"}, hunks[0].NewLines)
}
