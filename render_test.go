package redline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderUnified_SingleHunk(t *testing.T) {
	hunks, err := ComputeHunks("a\nb\nc\nd\ne\n", "a\nb\nX\nd\ne\n")
	require.NoError(t, err)

	got := RenderUnified("a\nb\nc\nd\ne\n", hunks, false, 1)

	want := strings.Join([]string{
		"@@ -2,3 +2,3 @@ hunk 1: pending",
		" b",
		"-c",
		"+X",
		" d",
	}, "\n")
	require.Equal(t, want, got)
}

func TestRenderUnified_CloseHunksShareABlock(t *testing.T) {
	// Merging disabled so two separate hunks sit one unchanged line apart; with contextSize 1
	// their context runs together and they render as a single block.
	hunks, err := ComputeHunksThreshold("a\nb\nc\nd\ne\n", "a\nX\nc\nY\ne\n", -1)
	require.NoError(t, err)
	require.Len(t, hunks, 2)

	got := RenderUnified("a\nb\nc\nd\ne\n", hunks, false, 1)

	want := strings.Join([]string{
		"@@ -1,5 +1,5 @@ hunk 1: pending, hunk 2: pending",
		" a",
		"-b",
		"+X",
		" c",
		"-d",
		"+Y",
		" e",
	}, "\n")
	require.Equal(t, want, got)
}

func TestRenderUnified_DistantHunksGetSeparateBlocks(t *testing.T) {
	o := "a\nu1\nu2\nu3\nu4\nu5\nb\n"
	hunks, err := ComputeHunks(o, "A\nu1\nu2\nu3\nu4\nu5\nB\n")
	require.NoError(t, err)
	require.Len(t, hunks, 2)

	got := RenderUnified(o, hunks, false, 1)

	// The second block's trailing context is the line after b, which is the empty final segment
	// of a newline-terminated document; assert structure rather than the exact tail.
	lines := strings.Split(got, "\n")
	require.Equal(t, "@@ -1,2 +1,2 @@ hunk 1: pending", lines[0])
	require.Equal(t, "-a", lines[1])
	require.Equal(t, "+A", lines[2])
	require.Equal(t, " u1", lines[3])
	require.True(t, strings.HasPrefix(lines[4], "@@ -6,3 +6,3 @@ hunk 2: pending"))
	require.Equal(t, " u5", lines[5])
	require.Equal(t, "-b", lines[6])
	require.Equal(t, "+B", lines[7])
}

func TestRenderUnified_StatusAppearsInHeader(t *testing.T) {
	hunks, err := ComputeHunks("a\nb\nc\n", "a\nB\nc\n")
	require.NoError(t, err)
	hunks[0].Status = StatusAccepted

	got := RenderUnified("a\nb\nc\n", hunks, false, 0)
	require.Contains(t, got, "hunk 1: accepted")
}

func TestRenderUnified_ColorMarkers(t *testing.T) {
	hunks, err := ComputeHunks("a\nb\nc\n", "a\nB\nc\n")
	require.NoError(t, err)

	got := RenderUnified("a\nb\nc\n", hunks, true, 0)
	require.Contains(t, got, "\x1b[31m-b\x1b[0m")
	require.Contains(t, got, "\x1b[32m+B\x1b[0m")
}
