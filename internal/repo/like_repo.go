// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Like model.
//
// Error semantics:
//   - Duplicate likes (same entry_id, user_id) rely on the database unique
//     constraint and surface as a raw DB error. The service layer translates
//     that into a domain error (ErrDuplicateLike).
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/daily-lines-backend/internal/domain"
)

// CreateLike inserts a like row for the given entry and user. The
// (entry_id, user_id) pair must be unique, enforced by the database schema;
// a duplicate insert returns the driver's unique-violation error.
func CreateLike(ctx context.Context, db *gorm.DB, entryID, userID string) error {
	l := &domain.Like{
		ID:        uuid.NewString(),
		EntryID:   entryID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	return db.WithContext(ctx).Create(l).Error
}

// CountLikes returns the number of likes an entry has received.
func CountLikes(ctx context.Context, db *gorm.DB, entryID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Like{}).
		Where("entry_id = ?", entryID).
		Count(&total).Error
	return total, err
}
