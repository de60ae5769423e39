package services

import (
	"context"
	"strings"
	"testing"
)

func TestAuthorGet_CreatesDefaultProfile(t *testing.T) {
	svc := NewAuthorService(newServiceDB(t))
	ctx := context.Background()

	a, err := svc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a.ID != "u1" || a.AgeBracket != "general" || a.GenderBracket != "none" || a.GroupCode != "base" {
		t.Fatalf("default profile: %+v", a)
	}

	// Repeat contact returns the same profile, not a second row.
	again, err := svc.Get(ctx, "u1")
	if err != nil || again.ID != "u1" {
		t.Fatalf("second Get: %+v err=%v", again, err)
	}
	var count int64
	svc.DB.Table("authors").Count(&count)
	if count != 1 {
		t.Fatalf("author rows = %d; want 1", count)
	}
}

func TestUpdateProfile_RederivesGroup(t *testing.T) {
	svc := NewAuthorService(newServiceDB(t))
	ctx := context.Background()

	a, err := svc.UpdateProfile(ctx, "u1", "quiet-river", "20s", "female")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if a.Nickname != "quiet-river" || a.GroupCode != "f20" {
		t.Fatalf("updated profile: %+v", a)
	}

	// A later demographic change must re-run the resolver; the group code
	// is never frozen.
	a, err = svc.UpdateProfile(ctx, "u1", "quiet-river", "30s", "female")
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if a.GroupCode != "f30" {
		t.Fatalf("group not re-derived: %+v", a)
	}
}

func TestUpdateProfile_UnknownBracketsCollapseToDefault(t *testing.T) {
	svc := NewAuthorService(newServiceDB(t))
	ctx := context.Background()

	a, err := svc.UpdateProfile(ctx, "u1", "n", "90s", "other")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if a.AgeBracket != "general" || a.GenderBracket != "none" || a.GroupCode != "base" {
		t.Fatalf("unknown brackets should collapse to the general cohort: %+v", a)
	}
}

func TestUpdateProfile_ClipsNickname(t *testing.T) {
	svc := NewAuthorService(newServiceDB(t))
	long := strings.Repeat("ら", 40)

	a, err := svc.UpdateProfile(context.Background(), "u1", long, "20s", "male")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got := len([]rune(a.Nickname)); got != 32 {
		t.Fatalf("nickname clipped to %d runes; want 32", got)
	}
}
