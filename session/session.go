package session

import "time"

// Profile is the display-only identity cached next to the credentials.
// The backend stays authoritative; nothing authorizes against this copy.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials is the bearer pair handed out at sign-in. Both tokens are
// opaque strings; the access token authenticates API calls and the refresh
// token exists solely to mint a replacement access token.
type Credentials struct {
	Access  string
	Refresh string
	User    *Profile
}

// DurationClass selects how long the access entry survives in the primary
// store, matching the remember-me choice made at sign-in.
type DurationClass int

const (
	Standard DurationClass = iota
	Remembered
)

const (
	standardTTL   = 2 * time.Hour
	rememberedTTL = 7 * 24 * time.Hour
)

func (c DurationClass) TTL() time.Duration {
	if c == Remembered {
		return rememberedTTL
	}
	return standardTTL
}

// Store holds the session credentials across runs. Set and Clear must be
// atomic across whatever backings exist so a reader never observes a
// half-updated session.
type Store interface {
	Access() string
	Refresh() string
	User() *Profile
	SetCredentials(creds Credentials, class DurationClass) error
	SetAccess(token string) error
	Clear() error
}
