package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/hajz/pkg/session"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string  { return t.path }
func (t testConfig) AppID() string     { return "booking-app-test" }
func (t testConfig) AuthToken() string { return "" }

func TestSessionRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	s := &session.Session{
		Date:        "2024-03-10",
		StartTime:   "10:00",
		EndTime:     "11:00",
		Lecturer:    "د. أحمد علي",
		StudentID:   "st-1",
		Subject:     "رياضيات",
		Status:      session.Scheduled,
		Duration:    60,
		StudentName: "Omar Farouk",
		UpdatedAt:   session.Now(),
	}
	if err := p.PutSession(s); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if s.ID == "" {
		t.Fatalf("create must assign an id")
	}

	got := p.Sessions(ctx)
	if len(got) != 1 {
		t.Fatalf("expected 1 session, got %d", len(got))
	}
	if got[0].ID != s.ID || got[0].Subject != "رياضيات" || got[0].Status != session.Scheduled {
		t.Fatalf("round trip mismatch: %+v", got[0])
	}

	// Full-field overwrite update.
	s.Status = session.Completed
	s.EndTime = "11:30"
	s.Duration = 90
	if err := p.PutSession(s); err != nil {
		t.Fatalf("update session: %v", err)
	}
	got = p.Sessions(ctx)
	if len(got) != 1 || got[0].Status != session.Completed || got[0].Duration != 90 {
		t.Fatalf("update not applied: %+v", got[0])
	}

	if err := p.DeleteSession(s.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if got := p.Sessions(ctx); len(got) != 0 {
		t.Fatalf("expected empty collection after delete, got %d", len(got))
	}
}

func TestSessionsSortedByDateThenStart(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	put := func(id, date, start string) {
		t.Helper()
		if err := p.PutSession(&session.Session{ID: id, Date: date, StartTime: start, Status: session.Scheduled}); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	put("b", "2024-03-11", "09:00")
	put("a", "2024-03-10", "15:00")
	put("c", "2024-03-10", "09:00")

	got := p.Sessions(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(got))
	}
	for i, id := range []string{"c", "a", "b"} {
		if got[i].ID != id {
			t.Fatalf("order mismatch at %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestStudentsKeepRegistrationOrder(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		st := &session.Student{
			Name:      name,
			Phone:     "0100000000",
			CreatedAt: session.Timestamp{Time: base.Add(time.Duration(i) * time.Minute)},
		}
		if err := p.PutStudent(st); err != nil {
			t.Fatalf("put student: %v", err)
		}
	}

	got := p.Students(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected 3 students, got %d", len(got))
	}
	for i, name := range []string{"first", "second", "third"} {
		if got[i].Name != name {
			t.Fatalf("order mismatch at %d: got %s", i, got[i].Name)
		}
	}
}

func TestDeleteMissingRecordFails(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.DeleteSession("nope"); err == nil {
		t.Fatalf("expected error deleting unknown session")
	}
	if err := p.DeleteStudent(""); err == nil {
		t.Fatalf("expected error for empty student id")
	}
}

func TestWatchEmitsCollectionChanges(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.PutStudent(&session.Student{Name: "watched", Phone: "0101111111"}); err != nil {
		t.Fatalf("put student: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				t.Fatalf("event channel closed before delivering a change")
			}
			// Either a classified students event or a full refresh (new
			// collection bucket) satisfies the snapshot contract.
			if evt.Collection == CollectionStudents || evt.Collection == "" {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for watch event")
		}
	}
}
