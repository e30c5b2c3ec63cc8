package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/black301/quiz-system-client/session"
)

func frozenClock(t *testing.T) func(d time.Duration) {
	t.Helper()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	original := session.NowTimeFunc
	session.NowTimeFunc = func() time.Time { return now }
	t.Cleanup(func() { session.NowTimeFunc = original })

	return func(d time.Duration) { now = now.Add(d) }
}

func newStore() (*session.DualStore, *session.MemoryExpiring, *session.MemoryKV) {
	primary := session.NewMemoryExpiring()
	secondary := session.NewMemoryKV()
	return session.NewDualStore(primary, secondary), primary, secondary
}

func testCredentials() session.Credentials {
	return session.Credentials{
		Access:  "a1",
		Refresh: "r1",
		User:    &session.Profile{Name: "Jane Doe", Email: "jane@example.com"},
	}
}

func TestSetCredentialsMirrorsBothBackings(t *testing.T) {
	frozenClock(t)
	store, primary, secondary := newStore()

	require.NoError(t, store.SetCredentials(testCredentials(), session.Standard))

	require.Equal(t, "a1", primary.Get(session.AccessKey))
	require.Equal(t, "a1", secondary.Get(session.AccessKey))
	require.Equal(t, "r1", secondary.Get(session.RefreshKey))
	require.JSONEq(t, `{"name":"Jane Doe","email":"jane@example.com"}`, secondary.Get(session.UserKey))

	require.Equal(t, "a1", store.Access())
	require.Equal(t, "r1", store.Refresh())
	user := store.User()
	require.NotNil(t, user)
	require.Equal(t, "Jane Doe", user.Name)
}

func TestAccessFallsBackToSecondaryWhenPrimaryExpires(t *testing.T) {
	advance := frozenClock(t)
	store, primary, _ := newStore()

	require.NoError(t, store.SetCredentials(testCredentials(), session.Standard))

	advance(3 * time.Hour)
	require.Empty(t, primary.Get(session.AccessKey))
	require.Equal(t, "a1", store.Access())
}

func TestRememberedClassOutlivesStandardTTL(t *testing.T) {
	advance := frozenClock(t)
	store, primary, _ := newStore()

	require.NoError(t, store.SetCredentials(testCredentials(), session.Remembered))

	advance(3 * 24 * time.Hour)
	require.Equal(t, "a1", primary.Get(session.AccessKey))

	advance(5 * 24 * time.Hour)
	require.Empty(t, primary.Get(session.AccessKey))
}

func TestSetAccessKeepsSignInDurationClass(t *testing.T) {
	advance := frozenClock(t)
	store, primary, secondary := newStore()

	require.NoError(t, store.SetCredentials(testCredentials(), session.Remembered))
	require.NoError(t, store.SetAccess("a2"))

	require.Equal(t, "a2", secondary.Get(session.AccessKey))
	advance(3 * 24 * time.Hour)
	require.Equal(t, "a2", primary.Get(session.AccessKey))
	// Refresh token and profile are untouched by an access rotation.
	require.Equal(t, "r1", store.Refresh())
	require.NotNil(t, store.User())
}

func TestClearRemovesEverythingAndIsIdempotent(t *testing.T) {
	frozenClock(t)
	store, primary, secondary := newStore()

	require.NoError(t, store.SetCredentials(testCredentials(), session.Standard))
	require.NoError(t, store.Clear())

	require.Empty(t, primary.Get(session.AccessKey))
	require.Empty(t, secondary.Get(session.AccessKey))
	require.Empty(t, secondary.Get(session.RefreshKey))
	require.Empty(t, secondary.Get(session.UserKey))
	require.Empty(t, store.Access())
	require.Empty(t, store.Refresh())
	require.Nil(t, store.User())

	require.NoError(t, store.Clear())
	require.Empty(t, store.Access())
}

func TestUserReturnsNilOnCorruptProfile(t *testing.T) {
	store, _, secondary := newStore()

	require.NoError(t, secondary.Set(session.UserKey, "not-json"))
	require.Nil(t, store.User())
}
