package ports

import (
	"context"

	"github.com/cras-office/agenda/internal/core/domain"
)

// SessionReader exposes the stored current session.
type SessionReader interface {
	CurrentSession(ctx context.Context) (*domain.User, error)
}

// AuthService authenticates staff and owns the single current session.
type AuthService interface {
	SessionReader
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context) error
}
