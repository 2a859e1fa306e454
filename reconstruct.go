package redline

import "fmt"

// Reconstruct derives the document text from the original text, the candidate text, and the
// per-hunk decisions. It is a pure function: calling it again with unchanged statuses yields
// byte-identical output.
//
// Full-accept and full-reject take fast paths that return the candidate or original verbatim, so
// those fidelity guarantees never depend on line reassembly. In the mixed case, Accepted hunks
// contribute their NewLines, Rejected and Pending hunks render as unchanged, and everything between
// hunks is copied from the original untouched.
//
// hunks must be sorted, non-overlapping, and consistent with original; a malformed list is an
// error, never silently absorbed.
func Reconstruct(original, modified string, hunks []Hunk) (string, error) {
	if len(hunks) == 0 {
		return original, nil
	}

	accepted, rejected, pending := 0, 0, 0
	for _, h := range hunks {
		switch h.Status {
		case StatusAccepted:
			accepted++
		case StatusRejected:
			rejected++
		case StatusPending:
			pending++
		default:
			return "", fmt.Errorf("redline: reconstruct: hunk %d has unknown status %d", h.ID, int(h.Status))
		}
	}
	switch {
	case pending == len(hunks):
		return original, nil
	case accepted == len(hunks):
		return modified, nil
	case rejected == len(hunks):
		return original, nil
	}

	origLines := splitLines(original)
	if err := validateHunks(hunks, origLines); err != nil {
		return "", fmt.Errorf("redline: reconstruct: %w", err)
	}

	out := make([]string, 0, len(origLines))
	origIdx := 0
	for _, h := range hunks {
		out = append(out, origLines[origIdx:h.StartLine]...)
		if h.Status == StatusAccepted {
			out = append(out, h.NewLines...)
		} else {
			out = append(out, h.OriginalLines...)
		}
		// Adds occupy nothing, so they consume no original lines.
		origIdx = h.occupiedEnd()
	}
	out = append(out, origLines[origIdx:]...)
	return joinLines(out), nil
}
