// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Author model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/daily-lines-backend/internal/domain"
)

// GetAuthor fetches an author by id, or ErrNotFound.
func GetAuthor(ctx context.Context, db *gorm.DB, id string) (*domain.Author, error) {
	var a domain.Author
	if err := db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// EnsureAuthor gets-or-creates the author row for id. The insert is an
// ON CONFLICT DO NOTHING against the primary key, so a first request racing
// with itself cannot create duplicates; the profile defaults to the general
// brackets and the default group until the author updates it.
func EnsureAuthor(ctx context.Context, db *gorm.DB, id, ageBracket, genderBracket, groupCode string) (*domain.Author, error) {
	a := &domain.Author{
		ID:            id,
		AgeBracket:    ageBracket,
		GenderBracket: genderBracket,
		GroupCode:     groupCode,
		CreatedAt:     time.Now().UTC(),
	}
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(a)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 1 {
		return a, nil
	}
	return GetAuthor(ctx, db, id)
}

// UpdateAuthorProfile rewrites the demographic brackets, nickname, and the
// re-derived group code for an author. Returns ErrNotFound when no row
// matches; the group code is computed by the caller through the resolver.
func UpdateAuthorProfile(ctx context.Context, db *gorm.DB, id, nickname, ageBracket, genderBracket, groupCode string) error {
	res := db.WithContext(ctx).
		Model(&domain.Author{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"nickname":       nickname,
			"age_bracket":    ageBracket,
			"gender_bracket": genderBracket,
			"group_code":     groupCode,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
