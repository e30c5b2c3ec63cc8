package auth

import "github.com/pkg/errors"

var (
	// InvalidCredentialsErr carries the exact message the sign-in form
	// displays when the backend gives no detail of its own.
	InvalidCredentialsErr = errors.New("Invalid credentials.")

	MissingTokensErr = errors.New("sign-in response missing tokens")
)
