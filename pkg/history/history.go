// Package history implements the bounded back/forward stack used by the
// navigation router.
//
// The stack is index-addressed: a current index moves backward and forward
// over the recorded entries without removing them. Pushing a new entry from
// a non-tip position discards the forward branch, and pushing past the
// size limit evicts the oldest entry.
//
// The stack is not safe for concurrent use; callers that share it across
// goroutines must serialize access externally.
package history

import "time"

// DefaultLimit is the entry limit used when New is given a non-positive
// limit.
const DefaultLimit = 100

// Entry is one visited path in the history stack.
type Entry[S any] struct {
	// Path is the navigation path as it was pushed.
	Path string

	// State is an opaque caller payload. The stack never inspects or
	// copies it; it is carried by reference only.
	State S

	// Time is when the entry was pushed, from the stack's clock.
	Time time.Time
}

// Stack is a bounded back/forward history.
//
// The zero value is not usable; use New.
type Stack[S any] struct {
	entries []Entry[S]
	index   int // -1 when empty, otherwise a valid position in entries
	limit   int
	now     func() time.Time
}

// Option configures a Stack.
type Option[S any] func(*Stack[S])

// WithClock sets the timestamp source for new entries. The default is
// time.Now.
func WithClock[S any](now func() time.Time) Option[S] {
	return func(s *Stack[S]) {
		s.now = now
	}
}

// New creates a history stack holding at most limit entries. A
// non-positive limit falls back to DefaultLimit.
func New[S any](limit int, opts ...Option[S]) *Stack[S] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	s := &Stack[S]{
		index: -1,
		limit: limit,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push records a new entry and makes it current.
//
// Entries after the current index are discarded first: stepping forward
// onto a new path invalidates the old forward branch. If the stack is full
// after truncation, the oldest entry is evicted and the index adjusted so
// the remaining entries keep their relative order.
func (s *Stack[S]) Push(path string, state S) {
	if s.index >= 0 {
		s.entries = s.entries[:s.index+1]
	}

	if len(s.entries) >= s.limit {
		s.entries = append(s.entries[:0], s.entries[1:]...)
		s.index--
	}

	s.entries = append(s.entries, Entry[S]{
		Path:  path,
		State: state,
		Time:  s.now(),
	})
	s.index = len(s.entries) - 1
}

// Back moves the current index one step back and returns the new current
// entry. It reports false, leaving the stack unchanged, when there is no
// earlier entry.
func (s *Stack[S]) Back() (Entry[S], bool) {
	if !s.CanGoBack() {
		var zero Entry[S]
		return zero, false
	}
	s.index--
	return s.entries[s.index], true
}

// Forward moves the current index one step forward and returns the new
// current entry. It reports false, leaving the stack unchanged, when there
// is no later entry.
func (s *Stack[S]) Forward() (Entry[S], bool) {
	if !s.CanGoForward() {
		var zero Entry[S]
		return zero, false
	}
	s.index++
	return s.entries[s.index], true
}

// CanGoBack reports whether Back would succeed.
func (s *Stack[S]) CanGoBack() bool {
	return s.index > 0
}

// CanGoForward reports whether Forward would succeed.
func (s *Stack[S]) CanGoForward() bool {
	return s.index >= 0 && s.index < len(s.entries)-1
}

// Current returns the entry at the current index. It reports false when
// the stack is empty.
func (s *Stack[S]) Current() (Entry[S], bool) {
	if s.index < 0 {
		var zero Entry[S]
		return zero, false
	}
	return s.entries[s.index], true
}

// Len returns the number of recorded entries.
func (s *Stack[S]) Len() int {
	return len(s.entries)
}

// Index returns the current index, or -1 when the stack is empty.
func (s *Stack[S]) Index() int {
	return s.index
}

// Entries returns a copy of the recorded entries in order.
func (s *Stack[S]) Entries() []Entry[S] {
	out := make([]Entry[S], len(s.entries))
	copy(out, s.entries)
	return out
}
