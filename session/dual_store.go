package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Keys shared by both backings.
const (
	AccessKey  = "access"
	RefreshKey = "refresh"
	UserKey    = "user"
)

// ExpiringStore is the primary backing: entries carry a TTL and stop being
// readable once it elapses. An entry is cleared by re-setting it with a zero
// TTL, never by a delete operation.
type ExpiringStore interface {
	Set(key, value string, ttl time.Duration)
	Get(key string) string
}

// KeyValue is the secondary backing, a plain store with no expiry semantics.
type KeyValue interface {
	Get(key string) string
	Set(key, value string) error
	Delete(key string) error
}

// DualStore mirrors the access token into an expiring primary and a plain
// secondary backing. Reads prefer the primary and fall back to the secondary;
// writes always cover both, under one lock, so the two stay consistent.
type DualStore struct {
	mu        sync.Mutex
	primary   ExpiringStore
	secondary KeyValue
	class     DurationClass
}

var _ Store = (*DualStore)(nil)

func NewDualStore(primary ExpiringStore, secondary KeyValue) *DualStore {
	return &DualStore{primary: primary, secondary: secondary}
}

func (s *DualStore) Access() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v := s.primary.Get(AccessKey); v != "" {
		return v
	}
	return s.secondary.Get(AccessKey)
}

func (s *DualStore) Refresh() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.secondary.Get(RefreshKey)
}

func (s *DualStore) User() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw := s.secondary.Get(UserKey)
	if raw == "" {
		return nil
	}
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	return &p
}

// SetCredentials installs a full session, remembering the duration class so
// later SetAccess calls (token refresh) keep the same lifetime.
func (s *DualStore) SetCredentials(creds Credentials, class DurationClass) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.class = class
	s.primary.Set(AccessKey, creds.Access, class.TTL())

	if err := s.secondary.Set(AccessKey, creds.Access); err != nil {
		return errors.Wrap(err, "[DualStore.SetCredentials] access")
	}
	if err := s.secondary.Set(RefreshKey, creds.Refresh); err != nil {
		return errors.Wrap(err, "[DualStore.SetCredentials] refresh")
	}
	if creds.User != nil {
		raw, err := json.Marshal(creds.User)
		if err != nil {
			return errors.Wrap(err, "[DualStore.SetCredentials] marshal profile")
		}
		if err := s.secondary.Set(UserKey, string(raw)); err != nil {
			return errors.Wrap(err, "[DualStore.SetCredentials] user")
		}
	}
	return nil
}

func (s *DualStore) SetAccess(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.primary.Set(AccessKey, token, s.class.TTL())
	if err := s.secondary.Set(AccessKey, token); err != nil {
		return errors.Wrap(err, "[DualStore.SetAccess] access")
	}
	return nil
}

// Clear removes the whole session. Clearing an already cleared store is a
// no-op, not an error.
func (s *DualStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.primary.Set(AccessKey, "", 0)
	for _, key := range []string{AccessKey, RefreshKey, UserKey} {
		if err := s.secondary.Delete(key); err != nil {
			return errors.Wrapf(err, "[DualStore.Clear] %s", key)
		}
	}
	return nil
}
