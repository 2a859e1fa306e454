package redline

import (
	"fmt"
	"strings"
)

// RenderUnified returns a unified-diff style rendering of the hunk list against the original text,
// for review logs and debugging rather than for any particular UI. Each block carries an "@@"
// header with 1-based line ranges on both sides, followed by " "/"-"/"+" prefixed lines; the
// header's trailing section names the hunk ids and their current statuses. Blocks whose context
// regions would run together (gap <= 2*contextSize) are emitted as one block with the intervening
// lines shown as context.
//
// If color, the output includes ANSI color markers. The result is not a parseable patch: this
// package defines no file format, and ids/statuses in headers are for human eyes.
func RenderUnified(original string, hunks []Hunk, color bool, contextSize int) string {
	// Colors (ANSI). Applied only if color==true.
	const (
		reset   = "\x1b[0m"
		red     = "\x1b[31m"
		green   = "\x1b[32m"
		magenta = "\x1b[35m"
	)
	colorize := func(s, code string) string {
		if !color {
			return s
		}
		return code + s + reset
	}

	origLines := splitLines(Normalize(original))

	type outLine struct {
		tag  byte // ' ', '+', '-'
		text string
	}

	var out []string

	// delta is the cumulative new-side line offset from hunks already rendered.
	delta := 0
	i := 0
	for i < len(hunks) {
		// Collect one block: hunks close enough that their context would run together.
		j := i + 1
		for j < len(hunks) && hunks[j].StartLine-hunks[j-1].occupiedEnd() <= 2*contextSize {
			j++
		}
		block := hunks[i:j]

		preStart := block[0].StartLine - contextSize
		if preStart < 0 {
			preStart = 0
		}

		var lines []outLine
		var sections []string
		for _, ln := range origLines[preStart:block[0].StartLine] {
			lines = append(lines, outLine{tag: ' ', text: ln})
		}
		blockDelta := 0
		for k, h := range block {
			if k > 0 {
				for _, ln := range origLines[block[k-1].occupiedEnd():h.StartLine] {
					lines = append(lines, outLine{tag: ' ', text: ln})
				}
			}
			for _, ln := range h.OriginalLines {
				lines = append(lines, outLine{tag: '-', text: ln})
			}
			for _, ln := range h.NewLines {
				lines = append(lines, outLine{tag: '+', text: ln})
			}
			blockDelta += len(h.NewLines) - len(h.OriginalLines)
			sections = append(sections, fmt.Sprintf("hunk %d: %s", h.ID, h.Status))
		}
		postEnd := block[len(block)-1].occupiedEnd() + contextSize
		if postEnd > len(origLines) {
			postEnd = len(origLines)
		}
		for _, ln := range origLines[block[len(block)-1].occupiedEnd():postEnd] {
			lines = append(lines, outLine{tag: ' ', text: ln})
		}

		oldCount, newCount := 0, 0
		for _, ol := range lines {
			switch ol.tag {
			case ' ':
				oldCount++
				newCount++
			case '-':
				oldCount++
			case '+':
				newCount++
			}
		}

		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@ %s", preStart+1, oldCount, preStart+1+delta, newCount, strings.Join(sections, ", "))
		out = append(out, colorize(header, magenta))
		for _, ol := range lines {
			line := string(ol.tag) + ol.text
			switch ol.tag {
			case '+':
				out = append(out, colorize(line, green))
			case '-':
				out = append(out, colorize(line, red))
			default:
				out = append(out, line)
			}
		}

		delta += blockDelta
		i = j
	}

	return strings.Join(out, "\n")
}
