package services

import (
	"context"
	"testing"

	"github.com/tbourn/daily-lines-backend/internal/repo"
)

func TestLike_EntryNotFound(t *testing.T) {
	svc := &LikeService{DB: newServiceDB(t)}
	err := svc.Like(context.Background(), "u2", "141add05-4415-4938-b5a1-17e0d3171aff")
	if err != ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestLike_OwnEntryRejected(t *testing.T) {
	db := newServiceDB(t)
	svc := &LikeService{DB: db}
	ctx := context.Background()

	s := seedSvcSentence(t, db, 1)
	e, err := repo.UpsertEntry(ctx, db, "u1", s.ID, "mine")
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	if err := svc.Like(ctx, "u1", e.ID); err != ErrOwnEntryLike {
		t.Fatalf("expected ErrOwnEntryLike, got %v", err)
	}
	if n, _ := repo.CountLikes(ctx, db, e.ID); n != 0 {
		t.Fatalf("rejected like persisted: %d", n)
	}
}

func TestLike_SuccessThenDuplicate(t *testing.T) {
	db := newServiceDB(t)
	svc := &LikeService{DB: db}
	ctx := context.Background()

	s := seedSvcSentence(t, db, 1)
	e, err := repo.UpsertEntry(ctx, db, "u1", s.ID, "a line")
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	if err := svc.Like(ctx, "u2", e.ID); err != nil {
		t.Fatalf("first like: %v", err)
	}
	if err := svc.Like(ctx, "u2", e.ID); err != ErrDuplicateLike {
		t.Fatalf("expected ErrDuplicateLike, got %v", err)
	}
	if n, _ := repo.CountLikes(ctx, db, e.ID); n != 1 {
		t.Fatalf("likes = %d; want 1", n)
	}

	// A different reader can still like the same entry.
	if err := svc.Like(ctx, "u3", e.ID); err != nil {
		t.Fatalf("second reader: %v", err)
	}
}

func TestIsDuplicate(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"UNIQUE constraint failed: likes.entry_id, likes.user_id", true},
		{"duplicate key value violates unique constraint \"ux_like_entry_user\"", true},
		{"connection refused", false},
	}
	for _, tc := range cases {
		if got := isDuplicate(errorString(tc.msg)); got != tc.want {
			t.Fatalf("isDuplicate(%q) = %v; want %v", tc.msg, got, tc.want)
		}
	}
}

// errorString is a trivial error for table-driven message matching.
type errorString string

func (e errorString) Error() string { return string(e) }
