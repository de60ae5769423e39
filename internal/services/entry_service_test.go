package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tbourn/daily-lines-backend/internal/catalog"
	"github.com/tbourn/daily-lines-backend/internal/domain"
	"github.com/tbourn/daily-lines-backend/internal/repo"
	"gorm.io/gorm"
)

// seedSvcSentence materializes one slot for entry tests.
func seedSvcSentence(t *testing.T, db *gorm.DB, day int) *domain.Sentence {
	t.Helper()
	cat := catalog.New()
	content, _ := cat.Get("base", day)
	s, err := repo.EnsureSentence(context.Background(), db, "base", day, content)
	if err != nil {
		t.Fatalf("seed sentence: %v", err)
	}
	return s
}

func TestSubmit_EmptyAfterTrim(t *testing.T) {
	svc := &EntryService{DB: newServiceDB(t)}
	for _, text := range []string{"", "   ", "\n\t "} {
		if _, err := svc.Submit(context.Background(), "u1", "sid", text); err != ErrEmptyEntry {
			t.Fatalf("text %q: expected ErrEmptyEntry, got %v", text, err)
		}
	}
}

func TestSubmit_TooLong_CountsRunesNotBytes(t *testing.T) {
	svc := &EntryService{DB: newServiceDB(t)}
	db := svc.DB
	s := seedSvcSentence(t, db, 1)

	// 500 multibyte runes are exactly at the bound and must pass.
	atLimit := strings.Repeat("あ", MaxEntryRunes)
	if _, err := svc.Submit(context.Background(), "u1", s.ID, atLimit); err != nil {
		t.Fatalf("at-limit submit: %v", err)
	}

	over := strings.Repeat("あ", MaxEntryRunes+1)
	if _, err := svc.Submit(context.Background(), "u1", s.ID, over); err != ErrEntryTooLong {
		t.Fatalf("expected ErrEntryTooLong, got %v", err)
	}
}

func TestSubmit_ConfiguredBoundOverride(t *testing.T) {
	svc := &EntryService{DB: newServiceDB(t), MaxRunes: 10}
	s := seedSvcSentence(t, svc.DB, 1)

	if _, err := svc.Submit(context.Background(), "u1", s.ID, "exactly10!"); err != nil {
		t.Fatalf("10-rune submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), "u1", s.ID, "eleven chars"); err != ErrEntryTooLong {
		t.Fatalf("expected ErrEntryTooLong with MaxRunes=10, got %v", err)
	}
}

func TestSubmit_UnknownSentence(t *testing.T) {
	svc := &EntryService{DB: newServiceDB(t)}
	_, err := svc.Submit(context.Background(), "u1", "141add05-4415-4938-b5a1-17e0d3171aff", "some text")
	if err != ErrSentenceNotFound {
		t.Fatalf("expected ErrSentenceNotFound, got %v", err)
	}
}

func TestSubmit_ResubmissionOverwrites(t *testing.T) {
	svc := &EntryService{DB: newServiceDB(t)}
	ctx := context.Background()
	s := seedSvcSentence(t, svc.DB, 1)

	first, err := svc.Submit(ctx, "u1", s.ID, "first attempt")
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.Submit(ctx, "u1", s.ID, "  revised attempt  ")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("resubmission split into two rows: %s vs %s", second.ID, first.ID)
	}
	if second.Text != "revised attempt" {
		t.Fatalf("text = %q; want trimmed revision", second.Text)
	}

	count, err := repo.CountEntriesByAuthor(ctx, svc.DB, "u1")
	if err != nil || count != 1 {
		t.Fatalf("rows = %d (err=%v); want 1", count, err)
	}
}

func TestListPage_NewestFirstWithTotal(t *testing.T) {
	svc := &EntryService{DB: newServiceDB(t)}
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	cat := catalog.New()
	for i := 1; i <= 5; i++ {
		content, _ := cat.Get("base", i)
		s, err := repo.EnsureSentence(ctx, svc.DB, "base", i, content)
		if err != nil {
			t.Fatalf("seed sentence %d: %v", i, err)
		}
		e := domain.Entry{
			ID:         fmt.Sprintf("e%d", i),
			AuthorID:   "u1",
			SentenceID: s.ID,
			Text:       fmt.Sprintf("entry %d", i),
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
			UpdatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		if err := svc.DB.Create(&e).Error; err != nil {
			t.Fatalf("seed entry %d: %v", i, err)
		}
	}

	items, total, err := svc.ListPage(ctx, "u1", 1, 2)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 5 {
		t.Fatalf("total = %d; want 5", total)
	}
	if len(items) != 2 || items[0].ID != "e5" || items[1].ID != "e4" {
		t.Fatalf("page 1: %+v", items)
	}

	items, _, err = svc.ListPage(ctx, "u1", 3, 2)
	if err != nil || len(items) != 1 || items[0].ID != "e1" {
		t.Fatalf("page 3: %+v err=%v", items, err)
	}
}

func TestListPage_EmptyArchive(t *testing.T) {
	svc := &EntryService{DB: newServiceDB(t)}
	items, total, err := svc.ListPage(context.Background(), "nobody", 1, 20)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Fatalf("empty archive: total=%d items=%d", total, len(items))
	}
}

func TestFeedPage_UnknownSentence(t *testing.T) {
	svc := &EntryService{DB: newServiceDB(t)}
	_, _, err := svc.FeedPage(context.Background(), "141add05-4415-4938-b5a1-17e0d3171aff", 1, 20)
	if err != ErrSentenceNotFound {
		t.Fatalf("expected ErrSentenceNotFound, got %v", err)
	}
}

func TestFeedPage_IncludesLikeCounts(t *testing.T) {
	svc := &EntryService{DB: newServiceDB(t)}
	ctx := context.Background()
	s := seedSvcSentence(t, svc.DB, 1)

	liked, err := svc.Submit(ctx, "u1", s.ID, "a popular line")
	if err != nil {
		t.Fatalf("submit u1: %v", err)
	}
	if _, err := svc.Submit(ctx, "u2", s.ID, "a quiet line"); err != nil {
		t.Fatalf("submit u2: %v", err)
	}
	if err := repo.CreateLike(ctx, svc.DB, liked.ID, "u2"); err != nil {
		t.Fatalf("like: %v", err)
	}

	items, total, err := svc.FeedPage(ctx, s.ID, 1, 20)
	if err != nil {
		t.Fatalf("FeedPage: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("feed: total=%d items=%d", total, len(items))
	}
	for _, e := range items {
		want := int64(0)
		if e.ID == liked.ID {
			want = 1
		}
		if e.LikeCount != want {
			t.Fatalf("entry %s like_count=%d; want %d", e.ID, e.LikeCount, want)
		}
	}
}
