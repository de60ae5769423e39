// Package services – LikeService
//
// This file implements the LikeService, which governs how readers like other
// authors' entries. It enforces business rules (entry existence, no self-like,
// uniqueness) and persists likes atomically. Service-level errors
// (ErrEntryNotFound, ErrOwnEntryLike, ErrDuplicateLike) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/daily-lines-backend/internal/repo"
)

// LikeService implements the use-cases around entry likes. It validates the
// operation (existence, ownership, uniqueness) and persists the like using
// the provided GORM handle, opening its own transaction per call.
type LikeService struct {
	// DB is the database handle used for all like operations.
	DB *gorm.DB
}

// Like records userID's appreciation of entryID.
//
// Semantics and validation:
//   - entryID must exist; otherwise ErrEntryNotFound.
//   - Users may not like their own entry; ErrOwnEntryLike.
//   - A user may like an entry at most once; a repeat yields ErrDuplicateLike.
//
// Concurrency & atomicity:
//   - The existence check and the insert run inside one transaction; the
//     unique index on (entry_id, user_id) is the duplicate guard under
//     concurrency.
func (s *LikeService) Like(ctx context.Context, userID, entryID string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := repo.GetEntry(ctx, tx, entryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEntryNotFound
			}
			return err
		}

		if entry.AuthorID == userID {
			return ErrOwnEntryLike
		}

		if err := repo.CreateLike(ctx, tx, entryID, userID); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
				return ErrDuplicateLike
			}
			return err
		}
		return nil
	})
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
