package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/cras-office/agenda/internal/core/domain"
)

// AuthService implements login, logout and session lookup.
type AuthService struct {
	records   *Records
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

// NewAuthService returns an AuthService. A tokenTTL of zero issues tokens
// without expiry; sessions then last until logout.
func NewAuthService(records *Records, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{records: records, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login looks for a user with exactly this email and password. On success
// the user (without secret) becomes the current session. On failure the
// existing session is left alone and ErrInvalidCredentials is returned,
// whatever the reason.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	defer s.records.lock()()

	users, err := s.records.loadUsers(ctx)
	if err != nil {
		return "", nil, err
	}

	for i, u := range users {
		if u.Email != email {
			continue
		}
		matched, legacy := checkSecret(u, password)
		if !matched {
			continue
		}

		if legacy {
			s.upgradeLegacySecret(ctx, users, i, password)
		}

		session := u.public()
		if err := s.records.saveSession(ctx, session); err != nil {
			return "", nil, err
		}

		token, err := s.generateToken(session)
		if err != nil {
			return "", nil, err
		}

		s.log.Info().Str("user_id", session.ID).Str("role", string(session.Role)).Msg("login")
		return token, &session, nil
	}

	return "", nil, domain.ErrInvalidCredentials
}

// Logout clears the current session unconditionally.
func (s *AuthService) Logout(ctx context.Context) error {
	defer s.records.lock()()
	return s.records.clearSession(ctx)
}

// CurrentSession returns the stored session, or nil when there is none.
func (s *AuthService) CurrentSession(ctx context.Context) (*domain.User, error) {
	return s.records.loadSession(ctx)
}

// checkSecret compares password with the stored hash, or with a plaintext
// secret left by earlier builds (legacy=true).
func checkSecret(u userRecord, password string) (matched, legacy bool) {
	switch {
	case u.PasswordHash != "":
		return secretMatches(u.PasswordHash, password), false
	case u.Password != "":
		return subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1, true
	default:
		return false, false
	}
}

// upgradeLegacySecret replaces a plaintext secret by its hash. Failure is
// logged and does not affect the login.
func (s *AuthService) upgradeLegacySecret(ctx context.Context, users []userRecord, i int, password string) {
	hash, err := hashSecret(password)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", users[i].ID).Msg("failed to hash legacy secret")
		return
	}
	users[i].PasswordHash = hash
	users[i].Password = ""
	if err := s.records.saveUsers(ctx, users); err != nil {
		s.log.Warn().Err(err).Str("user_id", users[i].ID).Msg("failed to store upgraded secret")
	}
}

func (s *AuthService) generateToken(u domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"name": u.Name,
		"role": string(u.Role),
		"iat":  now.Unix(),
	}
	if s.tokenTTL > 0 {
		claims["exp"] = now.Add(s.tokenTTL).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
