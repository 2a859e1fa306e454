package redline

import (
	"fmt"
	"slices"
)

// HunkType classifies what a hunk does to the original text.
type HunkType int

// Hunk types.
const (
	HunkAdd    HunkType = iota // Pure insertion at a zero-width point.
	HunkRemove                 // Pure deletion of a line range.
	HunkModify                 // Replacement of a line range.
)

// String returns the hunk type name.
func (t HunkType) String() string {
	switch t {
	case HunkAdd:
		return "add"
	case HunkRemove:
		return "remove"
	case HunkModify:
		return "modify"
	default:
		return fmt.Sprintf("HunkType(%d)", int(t))
	}
}

// HunkStatus is the reviewer's decision on a hunk.
type HunkStatus int

// Hunk statuses. Pending is the initial status; Accepted and Rejected are terminal.
const (
	StatusPending HunkStatus = iota
	StatusAccepted
	StatusRejected
)

// String returns the status name.
func (s HunkStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	default:
		return fmt.Sprintf("HunkStatus(%d)", int(s))
	}
}

// Hunk is a contiguous, independently accept/reject-able unit of difference between the original
// and candidate text. StartLine and EndLine are inclusive indices into splitLines(original).
//
// Invariants:
//   - HunkAdd: OriginalLines is empty, NewLines is not, and the hunk is a zero-width insertion
//     point before original line StartLine (EndLine == StartLine).
//   - HunkRemove: NewLines is empty and len(OriginalLines) == EndLine - StartLine + 1.
//   - HunkModify: both line lists are non-empty and len(OriginalLines) == EndLine - StartLine + 1.
//
// OriginalLines and NewLines are never mutated after the hunk is built; sessions share them across
// clones.
type Hunk struct {
	ID            int // Unique within a session; assigned after merging.
	StartLine     int
	EndLine       int
	OriginalLines []string
	NewLines      []string
	Type          HunkType
	Status        HunkStatus
}

// occupiedEnd returns the exclusive end of the hunk's occupied range in original-line coordinates:
// [StartLine, occupiedEnd). An Add hunk occupies nothing, so its range is empty. Deriving gaps from
// this one half-open interval is what keeps Add/Remove boundary arithmetic honest.
func (h Hunk) occupiedEnd() int {
	if h.Type == HunkAdd {
		return h.StartLine
	}
	return h.EndLine + 1
}

// buildHunks walks the op stream and produces the raw (unmerged) hunk list, tracking lineNumber,
// the next line index in the original coordinate space.
//
// A deletion directly followed by an insertion is the differ saying "replace these lines": the
// just-emitted Remove hunk is retyped to Modify and the inserted lines become its NewLines. An
// insertion with no adjacent deletion becomes a standalone zero-width Add. Non-adjacent additions
// and deletions stay separate hunks.
func buildHunks(ops []LineOp) []Hunk {
	var hunks []Hunk
	lineNumber := 0
	prevDelete := false
	for _, op := range ops {
		switch op.Op {
		case OpEqual:
			lineNumber += len(op.Lines)
			prevDelete = false
		case OpDelete:
			hunks = append(hunks, Hunk{
				StartLine:     lineNumber,
				EndLine:       lineNumber + len(op.Lines) - 1,
				OriginalLines: slices.Clone(op.Lines),
				Type:          HunkRemove,
				Status:        StatusPending,
			})
			lineNumber += len(op.Lines)
			prevDelete = true
		case OpInsert:
			if prevDelete {
				h := &hunks[len(hunks)-1]
				h.Type = HunkModify
				h.NewLines = slices.Clone(op.Lines)
			} else {
				hunks = append(hunks, Hunk{
					StartLine: lineNumber,
					EndLine:   lineNumber,
					NewLines:  slices.Clone(op.Lines),
					Type:      HunkAdd,
					Status:    StatusPending,
				})
			}
			prevDelete = false
		}
	}
	return hunks
}
