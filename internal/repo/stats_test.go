package repo

import (
	"context"
	"testing"
	"time"

	"github.com/tbourn/daily-lines-backend/internal/domain"
)

func TestEntriesStats_EmptyAuthor(t *testing.T) {
	db := newRepoDB(t, true)

	count, ts, err := EntriesStats(context.Background(), db, "nobody")
	if err != nil {
		t.Fatalf("EntriesStats: %v", err)
	}
	if count != 0 || ts != nil {
		t.Fatalf("empty author: count=%d ts=%v", count, ts)
	}
}

func TestEntriesStats_CountAndMaxTimestamp(t *testing.T) {
	db := newRepoDB(t, true)
	ctx := context.Background()

	t1 := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(2 * time.Hour) // newest
	for i, ts := range []time.Time{t1, t2} {
		s := seedSentence(t, db, "base", i+1)
		e := domain.Entry{
			ID:         s.ID[:8] + "-entry",
			AuthorID:   "u1",
			SentenceID: s.ID,
			Text:       "t",
			CreatedAt:  ts,
			UpdatedAt:  ts,
		}
		if err := db.Create(&e).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	count, maxTS, err := EntriesStats(ctx, db, "u1")
	if err != nil {
		t.Fatalf("EntriesStats: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d; want 2", count)
	}
	if maxTS == nil || !maxTS.Equal(t2) {
		t.Fatalf("max updated_at = %v; want %v", maxTS, t2)
	}
}

func TestSentenceFeedStats(t *testing.T) {
	db := newRepoDB(t, true)
	ctx := context.Background()
	s := seedSentence(t, db, "base", 1)

	count, ts, err := SentenceFeedStats(ctx, db, s.ID)
	if err != nil || count != 0 || ts != nil {
		t.Fatalf("empty feed: count=%d ts=%v err=%v", count, ts, err)
	}

	if _, err := UpsertEntry(ctx, db, "u1", s.ID, "a"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := UpsertEntry(ctx, db, "u2", s.ID, "b"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	count, ts, err = SentenceFeedStats(ctx, db, s.ID)
	if err != nil {
		t.Fatalf("SentenceFeedStats: %v", err)
	}
	if count != 2 || ts == nil {
		t.Fatalf("feed stats: count=%d ts=%v", count, ts)
	}
}

func TestEntriesStats_Error_NoTable(t *testing.T) {
	db := newRepoDB(t, false)
	if _, _, err := EntriesStats(context.Background(), db, "u1"); err == nil {
		t.Fatalf("expected error when table missing")
	}
}
