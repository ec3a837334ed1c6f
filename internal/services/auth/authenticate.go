package auth

import (
	"context"
	"errors"

	"charty-dashboard-backend/internal/logger"
	"charty-dashboard-backend/internal/validation"
)

const (
	MessageInvalidCredentials = "Invalid credentials."
	MessageSomethingWrong     = "Something went wrong."
)

// LoginState is the result of one login attempt. Message is empty on success.
type LoginState struct {
	Message string   `json:"message,omitempty"`
	Session *Session `json:"-"`
}

type Service struct {
	provider Provider
	log      *logger.Logger
}

func NewService(provider Provider, log *logger.Logger) *Service {
	return &Service{provider: provider, log: log.Named("auth")}
}

// Authenticate signs in with the credentials scheme. Provider failures become
// one of two fixed messages; any other error is returned unchanged.
func (s *Service) Authenticate(ctx context.Context, _ string, form validation.Form) (LoginState, error) {
	session, err := s.provider.SignIn(ctx, SchemeCredentials, form)
	if err == nil {
		s.log.Infow("signed in", "user_id", session.UserID)
		return LoginState{Session: session}, nil
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		return LoginState{}, err
	}

	switch authErr.Type {
	case ErrTypeCredentialsSignin:
		s.log.Infow("sign in rejected", "reason", authErr.Type)
		return LoginState{Message: MessageInvalidCredentials}, nil
	default:
		s.log.Warnw("sign in failed", "reason", authErr.Type, "error", authErr)
		return LoginState{Message: MessageSomethingWrong}, nil
	}
}
