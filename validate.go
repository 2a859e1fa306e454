package redline

import "fmt"

// validateHunks checks the Hunk invariants against the split original text and returns an error on
// the first violation. A malformed hunk list must fail loudly here rather than let reconstruction
// produce plausible-but-wrong document content.
func validateHunks(hunks []Hunk, origLines []string) error {
	prevEnd := 0
	for i, h := range hunks {
		if h.StartLine < 0 {
			return fmt.Errorf("hunk[%d]: negative StartLine %d", i, h.StartLine)
		}
		if h.StartLine < prevEnd {
			return fmt.Errorf("hunk[%d]: overlaps or precedes previous hunk (StartLine %d < %d)", i, h.StartLine, prevEnd)
		}

		switch h.Type {
		case HunkAdd:
			if len(h.OriginalLines) != 0 {
				return fmt.Errorf("hunk[%d]: add hunk has OriginalLines", i)
			}
			if len(h.NewLines) == 0 {
				return fmt.Errorf("hunk[%d]: add hunk has no NewLines", i)
			}
			if h.EndLine != h.StartLine {
				return fmt.Errorf("hunk[%d]: add hunk must be zero-width (StartLine %d, EndLine %d)", i, h.StartLine, h.EndLine)
			}
			if h.StartLine > len(origLines) {
				return fmt.Errorf("hunk[%d]: insertion point %d beyond original (%d lines)", i, h.StartLine, len(origLines))
			}
		case HunkRemove, HunkModify:
			if h.EndLine < h.StartLine {
				return fmt.Errorf("hunk[%d]: EndLine %d before StartLine %d", i, h.EndLine, h.StartLine)
			}
			if h.EndLine >= len(origLines) {
				return fmt.Errorf("hunk[%d]: EndLine %d beyond original (%d lines)", i, h.EndLine, len(origLines))
			}
			if want := h.EndLine - h.StartLine + 1; len(h.OriginalLines) != want {
				return fmt.Errorf("hunk[%d]: OriginalLines has %d lines, range [%d, %d] needs %d", i, len(h.OriginalLines), h.StartLine, h.EndLine, want)
			}
			for j, ln := range h.OriginalLines {
				if origLines[h.StartLine+j] != ln {
					return fmt.Errorf("hunk[%d]: OriginalLines[%d] does not match original line %d", i, j, h.StartLine+j)
				}
			}
			if h.Type == HunkRemove && len(h.NewLines) != 0 {
				return fmt.Errorf("hunk[%d]: remove hunk has NewLines", i)
			}
			if h.Type == HunkModify && len(h.NewLines) == 0 {
				return fmt.Errorf("hunk[%d]: modify hunk has no NewLines", i)
			}
		default:
			return fmt.Errorf("hunk[%d]: unknown type %d", i, int(h.Type))
		}

		switch h.Status {
		case StatusPending, StatusAccepted, StatusRejected:
		default:
			return fmt.Errorf("hunk[%d]: unknown status %d", i, int(h.Status))
		}

		prevEnd = h.occupiedEnd()
	}
	return nil
}
