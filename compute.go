package redline

import (
	"errors"
	"fmt"
)

// Errors surfaced by hunk computation and session operations. Callers match with errors.Is.
var (
	// ErrNoChangeDetected means the candidate text equals the original after normalization. No
	// session may be opened for a no-op proposal.
	ErrNoChangeDetected = errors.New("redline: candidate text is identical to the original")

	// ErrEmptyHunkSet means differencing produced zero hunks despite textual differences. It should
	// be unreachable when ErrNoChangeDetected is checked first; it exists so hunk computation fails
	// closed instead of opening an empty session.
	ErrEmptyHunkSet = errors.New("redline: differencing produced no hunks")
)

// ComputeHunks diffs the original text against the candidate text and returns the merged,
// review-ready hunk list using DefaultMergeGapThreshold. Inputs are normalized to "\n" line
// endings before diffing.
//
// It returns ErrNoChangeDetected when the normalized inputs are identical and ErrEmptyHunkSet if
// differencing yields nothing despite a textual difference.
func ComputeHunks(original, modified string) ([]Hunk, error) {
	return ComputeHunksThreshold(original, modified, DefaultMergeGapThreshold)
}

// ComputeHunksThreshold is ComputeHunks with an explicit merge gap threshold. A threshold of 0
// merges only hunks whose occupied ranges touch; a negative threshold disables merging.
func ComputeHunksThreshold(original, modified string, gapThreshold int) ([]Hunk, error) {
	original = Normalize(original)
	modified = Normalize(modified)
	if original == modified {
		return nil, ErrNoChangeDetected
	}

	oldLines := splitLines(original)
	newLines := splitLines(modified)

	ops := diffLines(oldLines, newLines)
	if err := validateOps(ops, oldLines, newLines); err != nil {
		return nil, fmt.Errorf("redline: compute hunks: %w", err)
	}

	hunks := buildHunks(ops)
	hunks = mergeHunks(hunks, oldLines, gapThreshold)
	if len(hunks) == 0 {
		return nil, ErrEmptyHunkSet
	}
	for i := range hunks {
		hunks[i].ID = i + 1
	}
	if err := validateHunks(hunks, oldLines); err != nil {
		return nil, fmt.Errorf("redline: compute hunks: %w", err)
	}
	return hunks, nil
}
