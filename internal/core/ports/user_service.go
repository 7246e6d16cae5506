package ports

import (
	"context"

	"github.com/cras-office/agenda/internal/core/domain"
)

// NewUserInput carries the fields of a user account being created.
type NewUserInput struct {
	Name     string
	Email    string
	Role     domain.Role
	Password string
}

// UserPatch is a shallow merge onto a stored user. Nil fields keep their
// stored value.
type UserPatch struct {
	ID       string
	Name     *string
	Email    *string
	Role     *domain.Role
	Password *string
	// IfMatch, when set, must equal the stored version for the patch to apply.
	IfMatch string
}

// VersionedUser is a user together with its current content version.
type VersionedUser struct {
	domain.User
	Version string
}

// UserService manages staff accounts.
type UserService interface {
	ListUsers(ctx context.Context) ([]VersionedUser, error)
	AddUser(ctx context.Context, in NewUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, patch UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
