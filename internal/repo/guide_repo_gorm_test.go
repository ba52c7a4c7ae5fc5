package repo

import (
	"context"
	"testing"
	"time"

	"zenzone-admin/internal/domain"
)

func seedGuide(t *testing.T, r *GuideRepo, serial int, title string, createdAt time.Time) *domain.BreathingGuide {
	t.Helper()
	g := &domain.BreathingGuide{
		Serial:      serial,
		Title:       title,
		Description: title + " desc",
		Guide:       "inhale 4, hold 7, exhale 8",
		CreatedAt:   createdAt,
	}
	if err := r.Create(context.Background(), g); err != nil {
		t.Fatalf("create guide: %v", err)
	}
	return g
}

func TestGuideSearchBySerial(t *testing.T) {
	r := NewGuideRepo(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	box := seedGuide(t, r, 7, "Box breathing", base)
	seedGuide(t, r, 12, "Guide 7 lookalike", base.Add(time.Hour)) // title contains "7"

	// integer search matches the serial exactly, never the text
	got, err := r.List(ctx, domain.ContentFilter{Search: "7"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != box.ID {
		t.Fatalf("serial search = %+v, want only serial 7", got)
	}
}

func TestGuideSearchByText(t *testing.T) {
	r := NewGuideRepo(newTestDB(t))
	ctx := context.Background()

	g := seedGuide(t, r, 1, "Box breathing", time.Now())
	seedGuide(t, r, 2, "Body scan", time.Now())

	got, err := r.List(ctx, domain.ContentFilter{Search: "box"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != g.ID {
		t.Fatalf("text search = %+v, want only box breathing", got)
	}
}

func TestGuideSerialExistsScopes(t *testing.T) {
	r := NewGuideRepo(newTestDB(t))
	ctx := context.Background()

	g := seedGuide(t, r, 42, "Retired", time.Now())
	if _, err := r.SoftDelete(ctx, g.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	// a soft-deleted row still occupies its serial for creation...
	all, err := r.SerialExists(ctx, 42, false)
	if err != nil {
		t.Fatalf("serial exists: %v", err)
	}
	if !all {
		t.Fatal("global check missed the soft-deleted row")
	}
	// ...but not for updates, which only compete with live rows
	live, err := r.SerialExists(ctx, 42, true)
	if err != nil {
		t.Fatalf("serial exists: %v", err)
	}
	if live {
		t.Fatal("live-only check counted a soft-deleted row")
	}
}

func TestGuideUpdateOptionalColumns(t *testing.T) {
	r := NewGuideRepo(newTestDB(t))
	ctx := context.Background()
	g := seedGuide(t, r, 3, "With audio", time.Now())

	audio := "https://utfs.io/f/abc123"
	got, err := r.Update(ctx, g.ID, map[string]any{"audio_url": audio, "duration": 180})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.AudioURL == nil || *got.AudioURL != audio {
		t.Fatalf("audio_url = %v, want %q", got.AudioURL, audio)
	}
	if got.Duration == nil || *got.Duration != 180 {
		t.Fatalf("duration = %v, want 180", got.Duration)
	}

	// nulling out works the same way
	got, err = r.Update(ctx, g.ID, map[string]any{"audio_url": nil})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.AudioURL != nil {
		t.Fatalf("audio_url = %v, want nil", got.AudioURL)
	}
}
