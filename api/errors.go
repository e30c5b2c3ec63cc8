package api

// Kind classifies a client failure beyond its message text. It is an
// addition for callers that want structure; existing callers match on the
// message, which is unchanged.
type Kind int

const (
	// KindAPI is a backend failure that is not a credential problem.
	KindAPI Kind = iota
	// KindSessionExpired means the session could not be recovered and has
	// been torn down.
	KindSessionExpired
	// KindTransport covers network failures and unparseable bodies.
	KindTransport
)

// Messages surfaced to callers. ExpiredSessionMessage is load-bearing:
// calling code matches on it verbatim, so it must never change.
const (
	ExpiredSessionMessage = "Session expired. Please sign in again."
	GenericErrorMessage   = "API Error"
)

// Error is the single failure type the client surfaces. Error() returns
// Message exactly, with no prefix.
type Error struct {
	Message string
	Kind    Kind
	Status  int
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}
