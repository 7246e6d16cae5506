package ports

import "context"

// Storage keys. They are shared with data written by earlier builds and
// must not change.
const (
	KeyUsers          = "cras_users"
	KeyAppointments   = "cras_appointments"
	KeyCurrentSession = "cras_current_user"
)

// Store is a durable string-keyed store holding JSON documents.
type Store interface {
	// Read returns the raw value for key. ok is false when the key is absent.
	Read(ctx context.Context, key string) (value []byte, ok bool, err error)
	Write(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by stores that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
