// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Entry model.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving business rules to the services package.
//
// Error semantics:
//   - When an entry is not found, functions return gorm.ErrRecordNotFound
//     (exported as ErrNotFound).
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/daily-lines-backend/internal/domain"
)

// UpsertEntry inserts or overwrites the entry for the (authorID, sentenceID)
// natural key. On conflict with the unique index the existing row's text is
// replaced and its created_at refreshed; there is never a second row, and no
// history of the previous text is kept. The returned entry reflects the
// stored state after the operation.
func UpsertEntry(ctx context.Context, db *gorm.DB, authorID, sentenceID, text string) (*domain.Entry, error) {
	now := time.Now().UTC()
	e := &domain.Entry{
		ID:         uuid.NewString(),
		AuthorID:   authorID,
		SentenceID: sentenceID,
		Text:       text,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "author_id"}, {Name: "sentence_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"text":       text,
				"created_at": now,
				"updated_at": now,
			}),
		}).
		Create(e).Error
	if err != nil {
		return nil, err
	}
	// The conflict path keeps the original row id; read back the stored row.
	return GetEntryByKey(ctx, db, authorID, sentenceID)
}

// GetEntryByKey fetches the entry for (authorID, sentenceID), or ErrNotFound.
func GetEntryByKey(ctx context.Context, db *gorm.DB, authorID, sentenceID string) (*domain.Entry, error) {
	var e domain.Entry
	err := db.WithContext(ctx).
		Where("author_id = ? AND sentence_id = ?", authorID, sentenceID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetEntry fetches an entry by its primary key.
func GetEntry(ctx context.Context, db *gorm.DB, id string) (*domain.Entry, error) {
	var e domain.Entry
	if err := db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// CountEntriesByAuthor returns the total number of entries an author has
// written, for pagination metadata.
func CountEntriesByAuthor(ctx context.Context, db *gorm.DB, authorID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Entry{}).
		Where("author_id = ?", authorID).
		Count(&total).Error
	return total, err
}

// ListEntriesByAuthorPage returns a page of an author's entries ordered by
// creation time descending (most recent first). The caller computes offset
// and limit from (page, pageSize).
func ListEntriesByAuthorPage(ctx context.Context, db *gorm.DB, authorID string, offset, limit int) ([]domain.Entry, error) {
	var out []domain.Entry
	err := db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountEntriesForSentence returns the total number of entries written against
// a sentence; this is also the participant count, since the unique key caps
// each author at one entry per sentence.
func CountEntriesForSentence(ctx context.Context, db *gorm.DB, sentenceID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Entry{}).
		Where("sentence_id = ?", sentenceID).
		Count(&total).Error
	return total, err
}

// ListEntriesForSentencePage returns a page of all authors' entries for a
// sentence, newest first, with a query-time computed like count per entry.
func ListEntriesForSentencePage(ctx context.Context, db *gorm.DB, sentenceID string, offset, limit int) ([]domain.Entry, error) {
	var out []domain.Entry
	err := db.WithContext(ctx).
		Model(&domain.Entry{}).
		Select("entries.*, (SELECT COUNT(*) FROM likes WHERE likes.entry_id = entries.id AND likes.deleted_at IS NULL) AS like_count").
		Where("entries.sentence_id = ?", sentenceID).
		Order("entries.created_at DESC, entries.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
