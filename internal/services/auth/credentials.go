package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	ierr "charty-dashboard-backend/internal/errors"
	"charty-dashboard-backend/internal/models"
	"charty-dashboard-backend/internal/validation"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "charty"

// UserStore looks up dashboard operators.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type credentialsInput struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// CredentialsProvider checks an email and password against the users table
// and issues an HS256 session token.
type CredentialsProvider struct {
	users   UserStore
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
	compare func(hash, password []byte) error
}

func NewCredentialsProvider(users UserStore, secret string, ttl time.Duration) *CredentialsProvider {
	return &CredentialsProvider{
		users:   users,
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
		compare: bcrypt.CompareHashAndPassword,
	}
}

var (
	unknownUserHash     []byte
	unknownUserHashOnce sync.Once
)

// absentUserHash is compared against when the email has no account, so both
// outcomes pay for one bcrypt comparison.
func absentUserHash() []byte {
	unknownUserHashOnce.Do(func() {
		unknownUserHash, _ = bcrypt.GenerateFromPassword([]byte("charty-absent-user"), bcrypt.DefaultCost)
	})
	return unknownUserHash
}

func (p *CredentialsProvider) SignIn(ctx context.Context, scheme string, form validation.Form) (*Session, error) {
	if scheme != SchemeCredentials {
		return nil, &AuthError{Type: ErrTypeConfiguration, Cause: errors.New("unknown scheme " + scheme)}
	}

	email, _ := form.Lookup("email")
	password, _ := form.Lookup("password")
	in := credentialsInput{Email: strings.TrimSpace(email), Password: password}
	if err := validation.GetValidator().Struct(in); err != nil {
		return nil, &AuthError{Type: ErrTypeCredentialsSignin}
	}

	user, err := p.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if ierr.IsNotFound(err) {
			_ = p.compare(absentUserHash(), []byte(in.Password))
			return nil, &AuthError{Type: ErrTypeCredentialsSignin}
		}
		return nil, &AuthError{Type: ErrTypeCallbackRoute, Cause: err}
	}

	if err := p.compare([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, &AuthError{Type: ErrTypeCredentialsSignin}
	}

	return p.issue(user)
}

func (p *CredentialsProvider) issue(user *models.User) (*Session, error) {
	now := p.now()
	expiresAt := now.Add(p.ttl)
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return nil, &AuthError{Type: ErrTypeConfiguration, Cause: err}
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
	}, nil
}

// VerifyToken checks the signature and expiry of a session token.
func (p *CredentialsProvider) VerifyToken(token string) (*Claims, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHintf("unexpected signing method: %v", t.Header["alg"]).
				Mark(ierr.ErrAuth)
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid session").
			Mark(ierr.ErrAuth)
	}
	if !parsed.Valid || claims.Subject == "" || claims.Issuer != tokenIssuer {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid session").
			Mark(ierr.ErrAuth)
	}

	return &Claims{UserID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}

// HashPassword returns the bcrypt hash stored in users.password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to hash password").
			Mark(ierr.ErrSystem)
	}
	return string(hashed), nil
}
