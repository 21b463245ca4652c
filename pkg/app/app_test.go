package app

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"tableflip.dev/hajz/pkg/identity"
	"tableflip.dev/hajz/pkg/session"
	"tableflip.dev/hajz/pkg/store"
)

type memoryPersistence struct {
	mu       sync.Mutex
	counter  int
	sessions map[string]*session.Session
	students map[string]*session.Student
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{
		sessions: make(map[string]*session.Session),
		students: make(map[string]*session.Student),
	}
}

func (m *memoryPersistence) newID() string {
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

func (m *memoryPersistence) Sessions(_ context.Context) []*session.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*session.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		cp := *s
		out = append(out, &cp)
	}
	return out
}

func (m *memoryPersistence) Students(_ context.Context) []*session.Student {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*session.Student, 0, len(m.students))
	for _, s := range m.students {
		cp := *s
		out = append(out, &cp)
	}
	return out
}

func (m *memoryPersistence) PutSession(s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = m.newID()
	}
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *memoryPersistence) DeleteSession(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("store: delete session %s: not found", id)
	}
	delete(m.sessions, id)
	return nil
}

func (m *memoryPersistence) PutStudent(s *session.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = m.newID()
	}
	cp := *s
	m.students[s.ID] = &cp
	return nil
}

func (m *memoryPersistence) DeleteStudent(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.students[id]; !ok {
		return fmt.Errorf("store: delete student %s: not found", id)
	}
	delete(m.students, id)
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func TestReadinessGate(t *testing.T) {
	svc := &Service{Persistence: newMemoryPersistence()}
	if svc.Ready() {
		t.Fatalf("service must not be ready before identity bootstrap")
	}
	if _, ok := svc.Identity(); ok {
		t.Fatalf("identity should be absent before bootstrap")
	}

	svc.SetIdentity(identity.Anonymous())
	if !svc.Ready() {
		t.Fatalf("service should be ready after identity bootstrap")
	}
	if id, ok := svc.Identity(); !ok || !id.Anonymous {
		t.Fatalf("unexpected identity: %+v ok=%v", id, ok)
	}
}

func TestAddStudentValidation(t *testing.T) {
	svc := &Service{Persistence: newMemoryPersistence()}
	if _, err := svc.AddStudent(context.Background(), "", "0100", "x@y.z"); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if _, err := svc.AddStudent(context.Background(), "Omar", "  ", ""); err == nil {
		t.Fatalf("expected error for missing phone")
	}

	st, err := svc.AddStudent(context.Background(), "  Omar Farouk  ", "0101234567", "omar@example.com")
	if err != nil {
		t.Fatalf("add student: %v", err)
	}
	if st.ID == "" || st.Name != "Omar Farouk" || st.CreatedAt.IsZero() {
		t.Fatalf("unexpected student: %+v", st)
	}

	students, err := svc.Students(context.Background())
	if err != nil {
		t.Fatalf("students: %v", err)
	}
	if len(students) != 1 {
		t.Fatalf("expected 1 student, got %d", len(students))
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc := &Service{Persistence: newMemoryPersistence()}
	ctx := context.Background()

	sess := &session.Session{
		Date: "2024-03-10", StartTime: "10:00", EndTime: "11:00",
		Status: session.Scheduled, Duration: 60,
	}
	if err := svc.SaveSession(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	if sess.ID == "" {
		t.Fatalf("create should assign id")
	}

	if err := svc.DeleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteSession(ctx, sess.ID); err == nil {
		t.Fatalf("second delete should fail; the store never acknowledged a record")
	}
}

func TestNoPersistenceConfigured(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Sessions(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
	if err := svc.SaveSession(context.Background(), &session.Session{}); err == nil {
		t.Fatalf("expected error without persistence")
	}
	if _, err := svc.AddStudent(context.Background(), "a", "b", ""); err == nil {
		t.Fatalf("expected error without persistence")
	}
}
