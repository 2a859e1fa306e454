package redline

import (
	"errors"
	"fmt"
	"slices"

	"github.com/quillpad/redline/internal/simplelogger"
)

// Session errors. Callers match with errors.Is.
var (
	// ErrNoActiveSession means a mutating call was made on a nil or already-resolved session.
	ErrNoActiveSession = errors.New("redline: no active session")

	// ErrInvalidHunkReference means the named hunk id is absent from the session.
	ErrInvalidHunkReference = errors.New("redline: unknown hunk")

	// ErrHunkResolved means the named hunk already left Pending; decisions are terminal.
	ErrHunkResolved = errors.New("redline: hunk already resolved")
)

// Session tracks one in-flight proposed rewrite of a single document: two immutable full-text
// snapshots, the ordered hunk list, and the document text implied by the decisions so far.
//
// A Session is a value. Transitions return a new *Session and leave the receiver untouched; a
// failed transition returns the receiver unchanged alongside the error. At most one session should
// be active per document, and callers mutating the same session concurrently must serialize those
// calls themselves.
type Session struct {
	DocumentID       string
	OriginalContent  string // Normalized original snapshot; immutable for the session's lifetime.
	ModifiedContent  string // Normalized candidate snapshot; immutable for the session's lifetime.
	Summary          string // Optional human-readable description of the proposed change.
	Hunks            []Hunk // Sorted ascending by StartLine, non-overlapping.
	CurrentHunkIndex int    // Index into Hunks of the hunk under review; -1 once none are Pending.
	Active           bool   // False once resolved or cancelled.
	Content          string // Document text implied by the decisions so far; final once !Active.
}

// NewSession computes hunks for the proposed rewrite and opens a review session. Creation is
// atomic: if hunk computation fails (including ErrNoChangeDetected for a no-op proposal), no
// session exists.
func NewSession(documentID, original, modified, summary string) (*Session, error) {
	hunks, err := ComputeHunks(original, modified)
	if err != nil {
		return nil, err
	}
	s := &Session{
		DocumentID:       documentID,
		OriginalContent:  Normalize(original),
		ModifiedContent:  Normalize(modified),
		Summary:          summary,
		Hunks:            hunks,
		CurrentHunkIndex: 0,
		Active:           true,
	}
	s.Content = s.OriginalContent
	simplelogger.Log("redline: session %s: opened with %d hunks", documentID, len(hunks))
	return s, nil
}

// AcceptHunk marks the named hunk Accepted and recomputes Content. If this leaves no hunk Pending,
// the session resolves: Active becomes false and Content is the committed document text.
func (s *Session) AcceptHunk(id int) (*Session, error) {
	return s.decide(id, StatusAccepted)
}

// RejectHunk marks the named hunk Rejected and recomputes Content. If this leaves no hunk Pending,
// the session resolves: Active becomes false and Content is the committed document text.
func (s *Session) RejectHunk(id int) (*Session, error) {
	return s.decide(id, StatusRejected)
}

func (s *Session) decide(id int, status HunkStatus) (*Session, error) {
	if s == nil || !s.Active {
		return s, ErrNoActiveSession
	}
	idx := -1
	for i := range s.Hunks {
		if s.Hunks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, fmt.Errorf("%w: id %d", ErrInvalidHunkReference, id)
	}
	if s.Hunks[idx].Status != StatusPending {
		return s, fmt.Errorf("%w: id %d is %s", ErrHunkResolved, id, s.Hunks[idx].Status)
	}

	n := s.clone()
	n.Hunks[idx].Status = status
	content, err := Reconstruct(n.OriginalContent, n.ModifiedContent, n.Hunks)
	if err != nil {
		return s, err
	}
	n.Content = content
	n.CurrentHunkIndex = n.nextPending(idx)
	if n.CurrentHunkIndex < 0 {
		n.Active = false
	}
	simplelogger.Log("redline: session %s: hunk %d -> %s (active=%t)", n.DocumentID, id, status, n.Active)
	return n, nil
}

// AcceptAll accepts the whole proposal in one step: every hunk becomes Accepted, Content is set to
// ModifiedContent verbatim, and the session resolves immediately. Accepting every hunk is defined
// as equivalent to accepting the whole document, so no line reassembly happens and the result is
// byte-identical to the candidate text. Hunks already Rejected are overridden; the whole-document
// action supersedes individual decisions.
func (s *Session) AcceptAll() (*Session, error) {
	if s == nil || !s.Active {
		return s, ErrNoActiveSession
	}
	n := s.clone()
	for i := range n.Hunks {
		n.Hunks[i].Status = StatusAccepted
	}
	n.Content = n.ModifiedContent
	n.CurrentHunkIndex = -1
	n.Active = false
	simplelogger.Log("redline: session %s: accept all (%d hunks)", n.DocumentID, len(n.Hunks))
	return n, nil
}

// End cancels the session: Content reverts to OriginalContent verbatim and the session closes.
// Partial progress is discarded; nothing is ever committed on cancellation.
func (s *Session) End() (*Session, error) {
	if s == nil || !s.Active {
		return s, ErrNoActiveSession
	}
	n := s.clone()
	n.Content = n.OriginalContent
	n.CurrentHunkIndex = -1
	n.Active = false
	simplelogger.Log("redline: session %s: cancelled", n.DocumentID)
	return n, nil
}

// Resolved reports whether every hunk has left Pending and the session committed its Content.
func (s *Session) Resolved() bool {
	return s != nil && !s.Active
}

// PendingCount returns the number of hunks still awaiting a decision.
func (s *Session) PendingCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, h := range s.Hunks {
		if h.Status == StatusPending {
			n++
		}
	}
	return n
}

// clone copies the session with a fresh hunk slice. Hunk line slices are shared: they are immutable
// after construction, and cloning exists so status changes never leak into older session values.
func (s *Session) clone() *Session {
	n := *s
	n.Hunks = slices.Clone(s.Hunks)
	return &n
}

// nextPending returns the index of the next Pending hunk, scanning forward from the hunk after
// `from` and wrapping around, or -1 if every hunk is decided.
func (s *Session) nextPending(from int) int {
	for i := 1; i <= len(s.Hunks); i++ {
		idx := (from + i) % len(s.Hunks)
		if s.Hunks[idx].Status == StatusPending {
			return idx
		}
	}
	return -1
}
