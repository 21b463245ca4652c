package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/hajz/pkg/identity"
	"tableflip.dev/hajz/pkg/session"
	"tableflip.dev/hajz/pkg/store"
)

// Service provides high-level operations on sessions and students. It wraps
// persistence and the identity gate so the TUI and the CLI share logic.
type Service struct {
	Persistence store.Persistence

	id *identity.Identity
}

// SetIdentity records the established identity. Submissions are blocked
// until this has happened.
func (s *Service) SetIdentity(id identity.Identity) {
	s.id = &id
}

// Ready reports whether the identity bootstrap has completed.
func (s *Service) Ready() bool {
	return s != nil && s.id != nil
}

// Identity returns the established identity, or false before bootstrap.
func (s *Service) Identity() (identity.Identity, bool) {
	if s.id == nil {
		return identity.Identity{}, false
	}
	return *s.id, true
}

// Sessions returns the full sessions snapshot.
func (s *Service) Sessions(ctx context.Context) ([]*session.Session, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Sessions(ctx), nil
}

// Students returns the full roster snapshot.
func (s *Service) Students(ctx context.Context) ([]*session.Student, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Students(ctx), nil
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// SaveSession creates the session when it has no id and overwrites the
// existing record otherwise.
func (s *Service) SaveSession(ctx context.Context, sess *session.Session) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	if sess == nil {
		return errors.New("app: nil session")
	}
	return s.Persistence.PutSession(sess)
}

// DeleteSession removes a session permanently.
func (s *Service) DeleteSession(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	return s.Persistence.DeleteSession(id)
}

// AddStudent registers a roster entry. Name and phone are required; there is
// no update operation for students, only create and delete.
func (s *Service) AddStudent(ctx context.Context, name, phone, email string) (*session.Student, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, errors.New("app: student name required")
	}
	if phone == "" {
		return nil, errors.New("app: student phone required")
	}
	st := &session.Student{
		Name:      name,
		Phone:     phone,
		Email:     strings.TrimSpace(email),
		CreatedAt: session.Now(),
	}
	if err := s.Persistence.PutStudent(st); err != nil {
		return nil, fmt.Errorf("app: add student: %w", err)
	}
	return st, nil
}

// DeleteStudent removes a roster entry permanently. Sessions that reference
// the student keep their denormalized contact fields.
func (s *Service) DeleteStudent(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	return s.Persistence.DeleteStudent(id)
}
