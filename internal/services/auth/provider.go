// Package auth implements the credentials sign-in behind the dashboard login
// form and the session tokens it issues.
package auth

import (
	"context"
	"fmt"
	"time"

	"charty-dashboard-backend/internal/validation"
)

const SchemeCredentials = "credentials"

// Error types reported by a Provider.
const (
	ErrTypeCredentialsSignin = "CredentialsSignin"
	ErrTypeCallbackRoute     = "CallbackRouteError"
	ErrTypeConfiguration     = "Configuration"
)

// AuthError is a provider-reported sign-in failure. Type says which kind.
type AuthError struct {
	Type  string
	Cause error
}

func (e *AuthError) Error() string {
	if e.Cause == nil {
		return "auth: " + e.Type
	}
	return fmt.Sprintf("auth: %s: %v", e.Type, e.Cause)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// Session is what a successful sign-in hands back.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
}

// Provider verifies credentials for a named scheme. Verification failures are
// returned as *AuthError.
type Provider interface {
	SignIn(ctx context.Context, scheme string, form validation.Form) (*Session, error)
}

// Claims is the identity carried by a session token.
type Claims struct {
	UserID string
	Email  string
	Name   string
}
