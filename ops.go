package redline

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is a line-level edit operation from the original text to the candidate text.
type Op int

// Operations from original text to candidate text.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// LineOp is one run of consecutive lines sharing an operation. The ordered stream of LineOps covers
// both inputs completely: concatenating the OpEqual and OpDelete lines reproduces the original
// line sequence, and the OpEqual and OpInsert lines reproduce the candidate line sequence.
type LineOp struct {
	Op    Op
	Lines []string // The literal lines involved, without line terminators.
}

// Normalize converts all line-ending variants to "\n". Diffing unnormalized inputs would report
// every line as changed when only the line endings differ.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitLines and joinLines are exact inverses: strings.Split keeps the (possibly empty) final
// segment, so a trailing newline survives a split/join round trip and so does its absence. All hunk
// line indices are indices into splitLines(original).
func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// diffLines computes the minimal line-level edit operations between two line sequences. Equality is
// exact per-line string equality.
//
// Each distinct line is encoded as a single rune so that diffmatchpatch's rune-based Myers diff
// compares whole lines at once; the resulting diffs are decoded back into lines. DiffCleanupMerge
// guarantees that within one changed region deletions precede insertions, which buildHunks relies
// on to pair a deletion directly followed by an insertion into a single Modify hunk.
func diffLines(oldLines, newLines []string) []LineOp {
	encoding := make(map[string]rune)
	decoding := make(map[rune]string)
	next := rune(1)
	encode := func(lines []string) []rune {
		rs := make([]rune, 0, len(lines))
		for _, ln := range lines {
			r, ok := encoding[ln]
			if !ok {
				r = next
				next++
				if next == 0xD800 {
					// Surrogates don't survive the []rune -> string conversion inside
					// diffmatchpatch.
					next = 0xE000
				}
				encoding[ln] = r
				decoding[r] = ln
			}
			rs = append(rs, r)
		}
		return rs
	}
	rOld := encode(oldLines)
	rNew := encode(newLines)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var ops []LineOp
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		lines := make([]string, 0, len(d.Text))
		for _, r := range d.Text {
			lines = append(lines, decoding[r])
		}
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op = OpEqual
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		}
		ops = append(ops, LineOp{Op: op, Lines: lines})
	}
	return ops
}

// validateOps checks that ops covers both inputs exactly.
func validateOps(ops []LineOp, oldLines, newLines []string) error {
	var oldConcat, newConcat []string
	for _, op := range ops {
		switch op.Op {
		case OpEqual:
			oldConcat = append(oldConcat, op.Lines...)
			newConcat = append(newConcat, op.Lines...)
		case OpDelete:
			oldConcat = append(oldConcat, op.Lines...)
		case OpInsert:
			newConcat = append(newConcat, op.Lines...)
		}
	}
	if joinLines(oldConcat) != joinLines(oldLines) {
		return fmt.Errorf("ops do not reconstruct the original lines")
	}
	if joinLines(newConcat) != joinLines(newLines) {
		return fmt.Errorf("ops do not reconstruct the candidate lines")
	}
	return nil
}
