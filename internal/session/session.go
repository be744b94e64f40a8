// Package session owns the client-side session credential: an opaque bearer
// token and the user profile it was issued for. The two are one unit — they
// are stored and cleared together, never one without the other.
package session

import "context"

// Profile is the account summary returned by the backend on login and kept
// alongside the token so the CLI can show who is signed in without a
// network round-trip.
type Profile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Plan    string `json:"plan"`
	Role    string `json:"role"`
}

// Session is a stored credential: the bearer token plus its profile.
type Session struct {
	Token   string
	Profile Profile
}

// Store persists at most one session across process restarts.
//
// Contract:
//   - Load returns nil (not an error) when no session is stored.
//   - Save writes token and profile atomically, replacing any previous session.
//   - Clear removes both; clearing an empty store is not an error.
type Store interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}
