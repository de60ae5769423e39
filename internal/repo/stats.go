// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (e.g., ETag generation) in the HTTP
// layer. Each function is context-aware and safe to call from services or
// handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/daily-lines-backend/internal/domain"
)

// EntriesStats returns aggregate metadata for an author's archive: the total
// number of entry rows and the maximum UpdatedAt timestamp among those rows.
//
// When the author has no entries, the returned count is 0 and maxUpdatedAt
// is nil.
//
// Return values:
//   - count:        total entries for authorID
//   - maxUpdatedAt: pointer to the greatest UpdatedAt, or nil if no rows
//   - err:          database error, if any
func EntriesStats(ctx context.Context, db *gorm.DB, authorID string) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Entry{}).Where("author_id = ?", authorID)

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}

// SentenceFeedStats returns aggregate metadata for the public feed of one
// sentence: total entries and the greatest UpdatedAt among them. Used for the
// feed ETag in the same way EntriesStats backs the archive ETag.
func SentenceFeedStats(ctx context.Context, db *gorm.DB, sentenceID string) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Entry{}).Where("sentence_id = ?", sentenceID)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
