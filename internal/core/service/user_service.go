package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

// UserService manages staff accounts. Stored secrets are never returned.
type UserService struct {
	records *Records
	log     zerolog.Logger
}

func NewUserService(records *Records, log zerolog.Logger) *UserService {
	return &UserService{records: records, log: log}
}

// ListUsers returns every account in storage order.
func (s *UserService) ListUsers(ctx context.Context) ([]ports.VersionedUser, error) {
	users, err := s.records.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.VersionedUser, len(users))
	for i, u := range users {
		out[i] = ports.VersionedUser{User: u.public(), Version: versionOf(u)}
	}
	return out, nil
}

// AddUser appends a new account with a freshly generated id.
func (s *UserService) AddUser(ctx context.Context, in ports.NewUserInput) (*domain.User, error) {
	rec := userRecord{
		ID:    newID(),
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	}
	if in.Password != "" {
		hash, err := hashSecret(in.Password)
		if err != nil {
			return nil, err
		}
		rec.PasswordHash = hash
	}

	defer s.records.lock()()

	users, err := s.records.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	users = append(users, rec)
	if err := s.records.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", rec.ID).Str("role", string(rec.Role)).Msg("user created")
	u := rec.public()
	return &u, nil
}

// UpdateUser merges patch onto the stored user with the same id and returns
// the merged record, so a partial patch answers with the full user. An
// unknown id changes nothing and echoes the patch back.
func (s *UserService) UpdateUser(ctx context.Context, patch ports.UserPatch) (*domain.User, error) {
	var hash string
	if patch.Password != nil && *patch.Password != "" {
		h, err := hashSecret(*patch.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	defer s.records.lock()()

	users, err := s.records.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range users {
		if users[i].ID == patch.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.log.Debug().Str("user_id", patch.ID).Msg("update of unknown user ignored")
		return patchedView(patch), nil
	}

	rec := users[idx]
	if patch.IfMatch != "" && patch.IfMatch != versionOf(rec) {
		return nil, domain.ErrVersionConflict
	}
	if patch.Name != nil {
		rec.Name = *patch.Name
	}
	if patch.Email != nil {
		rec.Email = *patch.Email
	}
	if patch.Role != nil {
		rec.Role = *patch.Role
	}
	if hash != "" {
		rec.PasswordHash = hash
		rec.Password = ""
	}
	users[idx] = rec

	if err := s.records.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", rec.ID).Msg("user updated")
	u := rec.public()
	return &u, nil
}

// DeleteUser removes the user with id, if any.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	defer s.records.lock()()

	users, err := s.records.loadUsers(ctx)
	if err != nil {
		return err
	}

	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return nil
	}

	if err := s.records.saveUsers(ctx, kept); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func patchedView(p ports.UserPatch) *domain.User {
	u := &domain.User{ID: p.ID}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}
