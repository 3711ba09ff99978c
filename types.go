package exeq

import "time"

// SessionStatus is the server-side lifecycle state of a session.
type SessionStatus string

// Session lifecycle states.
const (
	SessionStatusCreating SessionStatus = "creating"
	SessionStatusQueued   SessionStatus = "queued"
	SessionStatusActive   SessionStatus = "active"
	SessionStatusStopping SessionStatus = "stopping"
	SessionStatusStopped  SessionStatus = "stopped"
	SessionStatusFailed   SessionStatus = "failed"
)

// IsValid reports whether s is one of the known lifecycle states.
func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusCreating, SessionStatusQueued, SessionStatusActive,
		SessionStatusStopping, SessionStatusStopped, SessionStatusFailed:
		return true
	}
	return false
}

// Session is a remote browser instance managed by exeq.
//
// Sessions are owned by the server; the client only observes them and
// requests transitions with [Client.StopSession] and [Client.ExtendSession]:
//
//	session, err := client.GetSession(ctx, "sess_abc123")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if session.IsActive() {
//	    fmt.Println("connect to", session.CDPURL)
//	}
type Session struct {
	// ID is the server-assigned session identifier.
	ID string `json:"id" yaml:"id"`

	// Status is the current lifecycle state.
	Status SessionStatus `json:"status" yaml:"status"`

	// CDPURL is the Chrome DevTools Protocol endpoint.
	CDPURL string `json:"cdpUrl" yaml:"cdpUrl"`

	// VNCURL is the VNC endpoint for watching or driving the browser.
	VNCURL string `json:"vncUrl" yaml:"vncUrl"`

	// VNCPassword authenticates against VNCURL.
	VNCPassword string `json:"vncPassword" yaml:"vncPassword"`

	// ExpiresAt is when the session will be stopped by the server.
	// Nil when no expiry is known.
	ExpiresAt *time.Time `json:"expiresAt" yaml:"expiresAt"`

	// CreatedAt is when the session was created.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	// SessionRecordingEnabled is set when recording was requested at creation.
	SessionRecordingEnabled *bool `json:"sessionRecordingEnabled,omitempty" yaml:"sessionRecordingEnabled,omitempty"`

	// SessionRecordingURL points at the recording once it exists.
	SessionRecordingURL *string `json:"sessionRecordingUrl" yaml:"sessionRecordingUrl"`

	// ResidentialProxyEnabled is set when the session routes through a
	// residential proxy.
	ResidentialProxyEnabled *bool `json:"residentialProxyEnabled,omitempty" yaml:"residentialProxyEnabled,omitempty"`
}

// IsActive returns true if the session is ready for connections.
func (s *Session) IsActive() bool {
	return s.Status == SessionStatusActive
}

// IsTerminal returns true if the session will not change state again.
func (s *Session) IsTerminal() bool {
	return s.Status == SessionStatusStopped || s.Status == SessionStatusFailed
}

// HasExpiry returns true if the server reported an expiry time.
func (s *Session) HasExpiry() bool {
	return s.ExpiresAt != nil
}

// Profile is a named, reusable browser configuration that can be
// referenced when creating a session.
type Profile struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// CreateSessionOptions configures a new session.
//
// Every field is optional. Empty strings and nil pointers are left out of
// the request so the server applies its own defaults. An empty string can
// therefore not be sent explicitly for Duration, ProfileID or the
// residential proxy location fields.
//
// The residential proxy location fields only matter when
// ResidentialProxyEnabled is true; the server, not the client, enforces
// that.
type CreateSessionOptions struct {
	// Duration is the requested lifetime in the server's duration format,
	// for example "30m". It is sent as-is.
	Duration string

	// SessionRecordingEnabled requests a recording of the session.
	SessionRecordingEnabled *bool

	// ProfileID starts the session from a saved [Profile].
	ProfileID string

	ResidentialProxyEnabled *bool
	ResidentialProxyCountry string
	ResidentialProxyState   string
	ResidentialProxyCity    string
}

// ListSessionsOptions controls pagination for [Client.ListSessions].
// Nil fields are not sent.
type ListSessionsOptions struct {
	Limit  *int
	Offset *int
}

// Bool returns a pointer to v, for optional boolean fields.
func Bool(v bool) *bool {
	return &v
}

// Int returns a pointer to v, for optional integer fields.
func Int(v int) *int {
	return &v
}
