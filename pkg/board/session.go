package board

import (
	"sync"
)

// Identity is the current user as supplied by the auth collaborator.
type Identity struct {
	UserID string
	Name   string
	Token  string
}

// Guest is the identity used when nobody is logged in.
var Guest = Identity{UserID: GuestUserID}

func (i Identity) IsGuest() bool {
	return i.UserID == "" || i.UserID == GuestUserID
}

// SessionEvent is emitted whenever the scope or the user changes.
type SessionEvent struct {
	Scope Scope
	User  Identity
}

// Session tracks the current view scope and user identity. Switching scope
// does not reload anything by itself; the collection cache reads the scope
// on its next refresh. The zero state is the shared board as guest.
type Session struct {
	mu    sync.Mutex
	scope Scope
	user  Identity
	subs  []chan SessionEvent
}

func NewSession() *Session {
	return &Session{
		scope: ScopeShared,
		user:  Guest,
	}
}

func (s *Session) Scope() Scope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scope
}

func (s *Session) User() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SetScope switches between the shared and the personal board. Invalid
// values fall back to the shared board.
func (s *Session) SetScope(scope Scope) {
	if !scope.Valid() {
		scope = ScopeShared
	}
	s.mu.Lock()
	if s.scope == scope {
		s.mu.Unlock()
		return
	}
	s.scope = scope
	ev := SessionEvent{Scope: s.scope, User: s.user}
	subs := append([]chan SessionEvent(nil), s.subs...)
	s.mu.Unlock()

	notify(subs, ev)
}

// SetUser installs the identity from a fresh login.
func (s *Session) SetUser(user Identity) {
	if user.UserID == "" {
		user = Guest
	}
	s.mu.Lock()
	s.user = user
	ev := SessionEvent{Scope: s.scope, User: s.user}
	subs := append([]chan SessionEvent(nil), s.subs...)
	s.mu.Unlock()

	notify(subs, ev)
}

// Clear drops the session back to the shared board as guest (logout).
func (s *Session) Clear() {
	s.mu.Lock()
	s.scope = ScopeShared
	s.user = Guest
	ev := SessionEvent{Scope: s.scope, User: s.user}
	subs := append([]chan SessionEvent(nil), s.subs...)
	s.mu.Unlock()

	notify(subs, ev)
}

// Subscribe returns a stream of scope/user changes. Slow subscribers miss
// intermediate events instead of blocking the session.
func (s *Session) Subscribe() <-chan SessionEvent {
	ch := make(chan SessionEvent, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func notify(subs []chan SessionEvent, ev SessionEvent) {
	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
