// Package redline reconciles an AI-proposed rewrite of a document with the original text, one
// reviewable hunk at a time.
//
// An external collaborator supplies two full-text snapshots: the original document and a candidate
// replacement. ComputeHunks diffs them line by line and groups the differences into ordered,
// non-overlapping hunks; nearby hunks separated by at most a small run of unchanged lines are fused
// into a single review unit. NewSession wraps the hunk list in a Session, which tracks a per-hunk
// Pending/Accepted/Rejected decision and recomputes the document text after every decision.
//
// Representation: Hunk ranges are line indices into the original text. A Remove or Modify hunk
// occupies [StartLine, EndLine] inclusive; an Add hunk is a zero-width insertion point at StartLine.
// OriginalLines and NewLines hold the affected lines without line terminators; text is split and
// joined on "\n", so reconstruction is byte-exact, including documents without a trailing newline.
//
// Invariants:
//   - Hunks are sorted ascending by StartLine and never overlap.
//   - For Remove/Modify, len(OriginalLines) == EndLine - StartLine + 1 and the lines match the
//     original text verbatim. For Add, OriginalLines is empty. For Remove, NewLines is empty.
//   - Accepting every hunk reproduces the candidate text exactly; rejecting every hunk (or deciding
//     nothing) reproduces the original exactly. Reconstruction is idempotent.
//
// Sessions are values: AcceptHunk, RejectHunk, AcceptAll, and End return a new *Session and leave
// the receiver untouched, so a host can keep session state wherever it likes (an editor buffer, an
// undo stack) without this package knowing. The instant no hunk is Pending the session resolves
// itself and Content holds the committed document text.
//
// The package does no I/O and defines no wire format; it is consumed in-process by the surrounding
// editor. Callers mutating the same logical session from multiple goroutines must serialize those
// calls themselves.
//
// Typical use:
//
//	s, err := redline.NewSession(docID, original, proposed, "Tighten the abstract")
//	if err != nil {
//		// redline.ErrNoChangeDetected: the proposal changes nothing; don't open review UI.
//	}
//	s2, err := s.AcceptHunk(s.Hunks[0].ID)
//	// s2.Content is the document with hunk 1 applied; push it into the live buffer.
package redline
