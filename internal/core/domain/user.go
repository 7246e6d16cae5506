package domain

import "errors"

// Role is the staff role attached to a user account.
type Role string

const (
	RoleAdmin     Role = "Administrador"
	RoleRegistrar Role = "Cadastrador"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleRegistrar
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionEnded       = errors.New("session ended")
)

// User models a staff account as seen by callers. The password hash never
// leaves the storage layer.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
