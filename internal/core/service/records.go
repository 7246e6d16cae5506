package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

// userRecord is the persisted form of a user account.
type userRecord struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
	PasswordHash string      `json:"passwordHash,omitempty"`
	// Password holds a plaintext secret written by earlier builds. It is
	// replaced by PasswordHash on the next successful login.
	Password string `json:"password,omitempty"`
}

func (u userRecord) public() domain.User {
	return domain.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Records is the typed view over the three persisted documents. Every read
// goes back to the store; nothing is cached.
//
// Mutations hold mu for their whole read-modify-write sequence so that
// requests served by one process never interleave.
type Records struct {
	store ports.Store
	mu    sync.Mutex
}

// NewRecords wraps store. Share one Records between all services using the
// same store.
func NewRecords(store ports.Store) *Records {
	return &Records{store: store}
}

func (r *Records) lock() func() {
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *Records) exists(ctx context.Context, key string) (bool, error) {
	_, ok, err := r.store.Read(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	return ok, nil
}

func (r *Records) loadUsers(ctx context.Context) ([]userRecord, error) {
	return readList[userRecord](ctx, r.store, ports.KeyUsers)
}

func (r *Records) saveUsers(ctx context.Context, users []userRecord) error {
	return writeJSON(ctx, r.store, ports.KeyUsers, users)
}

func (r *Records) loadAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return readList[domain.Appointment](ctx, r.store, ports.KeyAppointments)
}

func (r *Records) saveAppointments(ctx context.Context, appointments []domain.Appointment) error {
	return writeJSON(ctx, r.store, ports.KeyAppointments, appointments)
}

// loadSession returns nil when no session is stored or the stored value
// cannot be decoded.
func (r *Records) loadSession(ctx context.Context) (*domain.User, error) {
	raw, ok, err := r.store.Read(ctx, ports.KeyCurrentSession)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ports.KeyCurrentSession, err)
	}
	if !ok {
		return nil, nil
	}
	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil || u.ID == "" {
		return nil, nil
	}
	return &u, nil
}

func (r *Records) saveSession(ctx context.Context, u domain.User) error {
	return writeJSON(ctx, r.store, ports.KeyCurrentSession, u)
}

func (r *Records) clearSession(ctx context.Context) error {
	if err := r.store.Remove(ctx, ports.KeyCurrentSession); err != nil {
		return fmt.Errorf("remove %s: %w", ports.KeyCurrentSession, err)
	}
	return nil
}

// readList decodes the JSON array stored under key. An absent key is an
// empty list; an undecodable one is an error.
func readList[T any](ctx context.Context, store ports.Store, key string) ([]T, error) {
	raw, ok, err := store.Read(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func writeJSON(ctx context.Context, store ports.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Write(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
