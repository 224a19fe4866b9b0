package auth

import "errors"

var (
	// ErrAlreadyExists is returned by Register when the email is taken.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenMissing is returned by Authenticate when no bearer token was presented.
	ErrTokenMissing = errors.New("token required")
	// ErrTokenInvalid wraps every rejected token.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is wrapped with ErrTokenInvalid when the token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenMalformed is wrapped with ErrTokenInvalid when the token cannot be parsed.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenSignature is wrapped with ErrTokenInvalid when the signature or algorithm is wrong.
	ErrTokenSignature = errors.New("token signature is invalid")
)
