package booking

import (
	"testing"

	"tableflip.dev/hajz/pkg/session"
)

func TestSummarize(t *testing.T) {
	sessions := []*session.Session{
		{Status: session.Scheduled, Duration: 60},
		{Status: session.Scheduled, Duration: 30},
		{Status: session.Completed, Duration: 90},
		{Status: session.Cancelled, Duration: 45},
		nil,
	}

	sum := Summarize(sessions)
	if sum.Total != 4 {
		t.Fatalf("total = %d, want 4", sum.Total)
	}
	if sum.Count(session.Scheduled) != 2 || sum.Count(session.Completed) != 1 || sum.Count(session.Cancelled) != 1 {
		t.Fatalf("per-status counts wrong: %+v", sum.ByStatus)
	}
	if sum.TotalMinutes != 225 {
		t.Fatalf("total minutes = %d, want 225", sum.TotalMinutes)
	}
	if got := sum.TotalDurationLabel(); got != "3 ساعة 45 دقيقة" {
		t.Fatalf("duration label = %q", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.Total != 0 || sum.TotalMinutes != 0 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if got := sum.TotalDurationLabel(); got != "0 دقيقة" {
		t.Fatalf("zero duration label = %q", got)
	}
}
