package storefakes

import (
	"sync"

	"github.com/black301/quiz-system-client/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore records every mutation so tests can assert on store traffic
// without wiring real backings.
type FakeStore struct {
	mu sync.Mutex

	AccessToken  string
	RefreshToken string
	Profile      *session.Profile
	Class        session.DurationClass

	SetCredentialsCalls int
	SetAccessCalls      int
	ClearCalls          int

	SetAccessErr error
	ClearErr     error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) Access() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.AccessToken
}

func (f *FakeStore) Refresh() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.RefreshToken
}

func (f *FakeStore) User() *session.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Profile
}

func (f *FakeStore) SetCredentials(creds session.Credentials, class session.DurationClass) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetCredentialsCalls++
	f.AccessToken = creds.Access
	f.RefreshToken = creds.Refresh
	f.Profile = creds.User
	f.Class = class
	return nil
}

func (f *FakeStore) SetAccess(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetAccessCalls++
	if f.SetAccessErr != nil {
		return f.SetAccessErr
	}
	f.AccessToken = token
	return nil
}

func (f *FakeStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ClearCalls++
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.AccessToken = ""
	f.RefreshToken = ""
	f.Profile = nil
	f.Class = session.Standard
	return nil
}
