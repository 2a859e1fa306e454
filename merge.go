package redline

import "slices"

// DefaultMergeGapThreshold is the maximum number of unchanged lines between two hunks for them to
// be fused into one review unit.
const DefaultMergeGapThreshold = 2

// mergeHunks fuses hunks separated by at most gapThreshold unchanged original lines, so a cluster
// of small edits is reviewed as one unit instead of many. hunks must be sorted ascending by
// StartLine and non-overlapping; origLines is the split original text the hunk indices refer to.
//
// The bridging unchanged lines are identical on both sides, so they are absorbed into both
// OriginalLines and NewLines of the merged hunk, the occupied ranges are unioned, and the type is
// recomputed from whichever line lists ended up non-empty. The result never gains hunks and never
// fabricates or drops a line.
func mergeHunks(hunks []Hunk, origLines []string, gapThreshold int) []Hunk {
	if len(hunks) <= 1 {
		return hunks
	}

	var out []Hunk
	acc := cloneHunk(hunks[0])
	for _, next := range hunks[1:] {
		gap := next.StartLine - acc.occupiedEnd()
		if gap > gapThreshold {
			out = append(out, acc)
			acc = cloneHunk(next)
			continue
		}

		bridge := origLines[acc.occupiedEnd():next.StartLine]
		acc.OriginalLines = append(acc.OriginalLines, bridge...)
		acc.NewLines = append(acc.NewLines, bridge...)
		acc.OriginalLines = append(acc.OriginalLines, next.OriginalLines...)
		acc.NewLines = append(acc.NewLines, next.NewLines...)

		// The merged hunk's occupied range is the union [acc.StartLine, next.occupiedEnd()): the
		// bridge fills any space between the two. A merged hunk with no original coverage can only
		// be two Adds fused at the same point.
		switch {
		case len(acc.OriginalLines) == 0:
			acc.Type = HunkAdd
			acc.EndLine = acc.StartLine
		case len(acc.NewLines) == 0:
			acc.Type = HunkRemove
			acc.EndLine = next.occupiedEnd() - 1
		default:
			acc.Type = HunkModify
			acc.EndLine = next.occupiedEnd() - 1
		}
	}
	out = append(out, acc)
	return out
}

// cloneHunk copies h with fresh line slices, so merging never appends into a slice the raw hunk
// list still references.
func cloneHunk(h Hunk) Hunk {
	h.OriginalLines = slices.Clone(h.OriginalLines)
	h.NewLines = slices.Clone(h.NewLines)
	return h
}
