// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Sentence
// model, including the idempotent insert-or-fetch used by materialization.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/daily-lines-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// EnsureSentence atomically gets-or-creates the sentence row for the
// (groupCode, dayIndex) natural key. The insert uses ON CONFLICT DO NOTHING
// against the unique index, so two concurrent calls for the same key can
// never produce two rows; the loser of the race falls through to the fetch.
// Existing rows keep their persisted content (no overwrite on read).
func EnsureSentence(ctx context.Context, db *gorm.DB, groupCode string, dayIndex int, content string) (*domain.Sentence, error) {
	s := &domain.Sentence{
		ID:        uuid.NewString(),
		GroupCode: groupCode,
		DayIndex:  dayIndex,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_code"}, {Name: "day_index"}},
			DoNothing: true,
		}).
		Create(s)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 1 {
		return s, nil
	}
	// Conflict path: the row already existed; its content is authoritative.
	return GetSentenceByKey(ctx, db, groupCode, dayIndex)
}

// GetSentenceByKey fetches a sentence by its (groupCode, dayIndex) natural key.
// Returns ErrNotFound if the slot has never been materialized.
func GetSentenceByKey(ctx context.Context, db *gorm.DB, groupCode string, dayIndex int) (*domain.Sentence, error) {
	var s domain.Sentence
	err := db.WithContext(ctx).
		Where("group_code = ? AND day_index = ?", groupCode, dayIndex).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSentence fetches a sentence by its primary key.
func GetSentence(ctx context.Context, db *gorm.DB, id string) (*domain.Sentence, error) {
	var s domain.Sentence
	if err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSentences returns all materialized sentences for a group ordered by
// day index ascending. An unmaterialized group yields an empty slice.
func ListSentences(ctx context.Context, db *gorm.DB, groupCode string) ([]domain.Sentence, error) {
	var out []domain.Sentence
	err := db.WithContext(ctx).
		Where("group_code = ?", groupCode).
		Order("day_index ASC").
		Find(&out).Error
	return out, err
}

// ResyncSentence overwrites the persisted content for an existing
// (groupCode, dayIndex) row with the current catalog text. Returns
// ErrNotFound when the slot was never materialized; resync is an explicit
// editorial operation, it does not create rows.
func ResyncSentence(ctx context.Context, db *gorm.DB, groupCode string, dayIndex int, content string) error {
	res := db.WithContext(ctx).
		Model(&domain.Sentence{}).
		Where("group_code = ? AND day_index = ?", groupCode, dayIndex).
		Update("content", content)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountSentences returns the number of materialized slots for a group.
func CountSentences(ctx context.Context, db *gorm.DB, groupCode string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Sentence{}).
		Where("group_code = ?", groupCode).
		Count(&total).Error
	return total, err
}
