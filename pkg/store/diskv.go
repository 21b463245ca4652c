// Package store persists the sessions and students collections and streams
// change notifications back to the UI. The filesystem is the sole source of
// truth; callers hold read-only snapshots they refresh wholesale on every
// change event.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/hajz/pkg/session"
)

const (
	// CollectionSessions and CollectionStudents are the two record buckets.
	CollectionSessions = "sessions"
	CollectionStudents = "students"
)

// Persistence is the document-store contract. Put operations assign an id on
// create and overwrite every field on update; list operations return the full
// collection, sorted deterministically.
type Persistence interface {
	Sessions(ctx context.Context) []*session.Session
	Students(ctx context.Context) []*session.Student
	PutSession(s *session.Session) error
	DeleteSession(id string) error
	PutStudent(s *session.Student) error
	DeleteStudent(id string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config. The
// two collections live under basePath/appID so multiple tenants can share a
// store root.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := fmt.Sprintf("%s/%s", strings.TrimRight(cfg.BasePath(), "/"), cfg.AppID())
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Sessions(ctx context.Context) []*session.Session {
	all := make([]*session.Session, 0)
	for key := range p.d.Keys(ctx.Done()) {
		pk := keyToPathTransform(key)
		if pk.Path[0] != CollectionSessions {
			continue
		}
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		s := &session.Session{}
		if err := json.Unmarshal(val, s); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		s.ID = pk.FileName
		all = append(all, s)
	}
	sortSessions(all)
	return all
}

func (p *persistence) Students(ctx context.Context) []*session.Student {
	all := make([]*session.Student, 0)
	for key := range p.d.Keys(ctx.Done()) {
		pk := keyToPathTransform(key)
		if pk.Path[0] != CollectionStudents {
			continue
		}
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		s := &session.Student{}
		if err := json.Unmarshal(val, s); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		s.ID = pk.FileName
		all = append(all, s)
	}
	sortStudents(all)
	return all
}

func (p *persistence) PutSession(s *session.Session) error {
	if s == nil {
		return errors.New("store: nil session")
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: marshal session: %w", err)
	}
	if err := p.d.Write(toKey(CollectionSessions, s.ID), data); err != nil {
		return fmt.Errorf("store: write session: %w", err)
	}
	return nil
}

func (p *persistence) DeleteSession(id string) error {
	if id == "" {
		return errors.New("store: session id required")
	}
	if err := p.d.Erase(toKey(CollectionSessions, id)); err != nil {
		return fmt.Errorf("store: delete session %s: %w", id, err)
	}
	return nil
}

func (p *persistence) PutStudent(s *session.Student) error {
	if s == nil {
		return errors.New("store: nil student")
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: marshal student: %w", err)
	}
	if err := p.d.Write(toKey(CollectionStudents, s.ID), data); err != nil {
		return fmt.Errorf("store: write student: %w", err)
	}
	return nil
}

func (p *persistence) DeleteStudent(id string) error {
	if id == "" {
		return errors.New("store: student id required")
	}
	if err := p.d.Erase(toKey(CollectionStudents, id)); err != nil {
		return fmt.Errorf("store: delete student %s: %w", id, err)
	}
	return nil
}

// sortSessions orders by calendar day, then start time, then id so snapshots
// are stable between refreshes.
func sortSessions(sessions []*session.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		left := sessions[i]
		right := sessions[j]
		if left.Date != right.Date {
			return left.Date < right.Date
		}
		if left.StartTime != right.StartTime {
			return left.StartTime < right.StartTime
		}
		return left.ID < right.ID
	})
}

// sortStudents keeps registration order; ids break ties for records that
// predate CreatedAt.
func sortStudents(students []*session.Student) {
	sort.SliceStable(students, func(i, j int) bool {
		lt := students[i].CreatedAt.Time
		rt := students[j].CreatedAt.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return students[i].ID < students[j].ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return students[i].ID < students[j].ID
			}
			return lt.Before(rt)
		}
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:1],
		FileName: strings.Join(parts[1:], "-"),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `collection-id`
func toKey(collection, id string) string {
	return fmt.Sprintf("%s-%s", collection, id)
}
