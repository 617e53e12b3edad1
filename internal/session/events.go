package session

import "takatrack-client/internal/models"

// EventType names a session lifecycle change
type EventType string

const (
	EventLoggedIn  EventType = "session.logged_in"
	EventLoggedOut EventType = "session.logged_out"
)

type Event struct {
	Type EventType    `json:"type"`
	User *models.User `json:"user,omitempty"`
}

// Subscribe registers fn for session events and returns a function that
// removes it. The navigation shell uses this to return to the login surface.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

func (s *Store) publish(ev Event) {
	s.subsMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
