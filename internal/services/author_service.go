// Package services – AuthorService
//
// This file implements the AuthorService, which manages author profiles and
// keeps the derived group assignment current. Group codes are never frozen:
// every demographic change re-runs the resolver, so an author who moves
// brackets starts seeing that cohort's programme immediately.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/tbourn/daily-lines-backend/internal/catalog"
	"github.com/tbourn/daily-lines-backend/internal/domain"
	"github.com/tbourn/daily-lines-backend/internal/repo"
)

// AuthorService provides author-level operations: lazy profile creation on
// first contact and profile updates with group re-derivation.
type AuthorService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// NicknameMaxLen caps stored nicknames by rune length.
	NicknameMaxLen int
}

// NewAuthorService constructs an AuthorService with sane defaults.
func NewAuthorService(db *gorm.DB) *AuthorService {
	return &AuthorService{DB: db, NicknameMaxLen: 32}
}

// Get returns the author row for id, creating it with the general-bracket
// defaults on first contact. The create path is an insert-or-fetch on the
// primary key, so concurrent first requests are safe.
func (s *AuthorService) Get(ctx context.Context, id string) (*domain.Author, error) {
	return repo.EnsureAuthor(ctx, s.DB, id,
		string(catalog.AgeGeneral),
		string(catalog.GenderNone),
		catalog.DefaultGroupCode,
	)
}

// UpdateProfile rewrites the author's nickname and demographic brackets and
// re-derives the group code through the resolver. Unknown bracket inputs
// collapse to the sentinels, so resolution stays total and this method never
// fails on bracket values.
func (s *AuthorService) UpdateProfile(ctx context.Context, id, nickname, age, gender string) (*domain.Author, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	ageBracket := catalog.ParseAgeBracket(strings.TrimSpace(age))
	genderBracket := catalog.ParseGenderBracket(strings.TrimSpace(gender))
	groupCode := catalog.Resolve(ageBracket, genderBracket)

	nickname = s.clipNickname(strings.TrimSpace(nickname))

	err := repo.UpdateAuthorProfile(ctx, s.DB, id, nickname,
		string(ageBracket), string(genderBracket), groupCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	return repo.GetAuthor(ctx, s.DB, id)
}

// clipNickname truncates a nickname to the configured maximum rune length.
func (s *AuthorService) clipNickname(nick string) string {
	max := s.NicknameMaxLen
	if max <= 0 {
		max = 32
	}
	if utf8.RuneCountInString(nick) > max {
		return string([]rune(nick)[:max])
	}
	return nick
}
