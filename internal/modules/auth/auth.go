package auth

import "context"

// SessionCookie is the cookie carrying the operator's session token.
const SessionCookie = "xpoint_session"

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
	Verify(token string) error
}
