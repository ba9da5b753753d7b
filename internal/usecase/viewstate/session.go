// Package viewstate holds the per-session presentation state of the
// dashboard: expanded record cards, in-progress note drafts and the
// transient "saved" indicators. All state is keyed by record id, never
// by list position, so identity stays stable across pagination and
// reordering.
package viewstate

import (
	"context"
	"sync"
	"time"

	"github.com/avamus/visionboard/internal/domain/entities"
	"github.com/avamus/visionboard/internal/usecase/dashboard"
)

// NotesSaver persists the call_notes field of one record. The update is
// partial: exactly call_notes, nothing else.
type NotesSaver interface {
	SaveNotes(ctx context.Context, id int64, notes string) (*entities.CallLog, error)
}

// Session is the view state for one dashboard visit over one member's
// call snapshot. Methods are safe for concurrent use.
type Session struct {
	ID       string
	MemberID string
	LastUsed time.Time

	mu       sync.Mutex
	logs     []*entities.CallLog
	byID     map[int64]*entities.CallLog
	expanded map[int64]bool
	drafts   map[int64]string
	saved    map[int64]bool

	savedTTL time.Duration
	// afterFunc schedules the saved-flag decay; replaced in tests.
	afterFunc func(time.Duration, func()) *time.Timer
}

// NewSession creates a session over an ascending-by-date call snapshot.
// The snapshot is copied: callers may hand in a shared list (the call
// list cache returns one backing array to every reader) and the session
// patches its records in place on note saves, so it must own them.
// savedTTL is how long the "saved" indicator stays lit after a
// successful note save.
func NewSession(id string, snapshot []*entities.CallLog, savedTTL time.Duration) *Session {
	logs := make([]*entities.CallLog, 0, len(snapshot))
	byID := make(map[int64]*entities.CallLog, len(snapshot))
	for _, l := range snapshot {
		c := *l
		logs = append(logs, &c)
		byID[c.ID] = &c
	}
	return &Session{
		ID:        id,
		LastUsed:  time.Now(),
		logs:      logs,
		byID:      byID,
		expanded:  make(map[int64]bool),
		drafts:    make(map[int64]string),
		saved:     make(map[int64]bool),
		savedTTL:  savedTTL,
		afterFunc: time.AfterFunc,
	}
}

// Records returns the session's call snapshot in ascending date order.
func (s *Session) Records() []*entities.CallLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.CallLog, len(s.logs))
	copy(out, s.logs)
	return out
}

// ToggleExpanded flips one record's expanded state and returns the new
// value. Other records' state is untouched: any number of cards can be
// expanded at once.
func (s *Session) ToggleExpanded(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expanded[id] = !s.expanded[id]
	return s.expanded[id]
}

// IsExpanded reports one record's expanded state.
func (s *Session) IsExpanded(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded[id]
}

// OpenCall deep-links a chart point to its record card: it computes the
// containing page for the 1-based call ordinal, expands that record and
// returns the page. Unknown ordinals return the clamped page with
// nothing expanded.
func (s *Session) OpenCall(callNumber, perPage int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	page := dashboard.PageForCall(callNumber, perPage)
	if callNumber >= 1 && callNumber <= len(s.logs) {
		s.expanded[s.logs[callNumber-1].ID] = true
	}
	return dashboard.ClampPage(page, dashboard.TotalPages(len(s.logs), perPage))
}

// SetDraft records in-progress note text for one record. The draft
// overlays the stored call_notes without replacing it.
func (s *Session) SetDraft(id int64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[id] = text
}

// NotesValue returns the text the notes editor should display: the
// draft if one exists, else the last-saved call_notes.
func (s *Session) NotesValue(id int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if draft, ok := s.drafts[id]; ok {
		return draft
	}
	if l, ok := s.byID[id]; ok {
		return l.CallNotes
	}
	return ""
}

// Saved reports whether the transient "saved" indicator is lit for a
// record.
func (s *Session) Saved(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved[id]
}

// SaveNotes persists the record's current draft through the saver. On
// success the in-memory record is patched with the saved text, the
// "saved" indicator lights up and clears itself after savedTTL. On
// failure the draft is left intact so no typed text is lost, and the
// indicator stays off. A record without a draft is a no-op.
//
// There is no version check: if a slow save races a later edit, the
// last write to complete wins on call_notes.
func (s *Session) SaveNotes(ctx context.Context, saver NotesSaver, id int64) error {
	s.mu.Lock()
	draft, ok := s.drafts[id]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	if _, err := saver.SaveNotes(ctx, id, draft); err != nil {
		return err
	}

	s.mu.Lock()
	if l, found := s.byID[id]; found {
		l.CallNotes = draft
	}
	s.saved[id] = true
	s.mu.Unlock()

	s.afterFunc(s.savedTTL, func() {
		s.mu.Lock()
		s.saved[id] = false
		s.mu.Unlock()
	})
	return nil
}
