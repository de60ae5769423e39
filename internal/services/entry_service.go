// Package services – EntryService
//
// This file implements EntryService, which owns the lifecycle of authored
// entries: validated submission (an upsert on the entry natural key, so a
// resubmission overwrites rather than duplicates), the author's private
// archive, and the public per-sentence feed.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// include author/sentence identifiers and pagination parameters.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/tbourn/daily-lines-backend/internal/domain"
	"github.com/tbourn/daily-lines-backend/internal/repo"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MaxEntryRunes is the upper bound on entry text length.
const MaxEntryRunes = 500

// EntryService coordinates entry submission and retrieval.
type EntryService struct {
	DB *gorm.DB

	// MaxRunes overrides MaxEntryRunes when > 0.
	MaxRunes int
}

// maxRunes returns the effective entry length bound.
func (s *EntryService) maxRunes() int {
	if s.MaxRunes > 0 {
		return s.MaxRunes
	}
	return MaxEntryRunes
}

// Submit validates and upserts the entry for (authorID, sentenceID).
//
// Semantics and validation:
//   - text is trimmed; an empty result yields ErrEmptyEntry.
//   - text longer than the configured rune bound yields ErrEntryTooLong.
//   - sentenceID must reference a materialized sentence; otherwise
//     ErrSentenceNotFound.
//   - A second submission for the same key overwrites the stored text and
//     refreshes its timestamp; exactly one row exists per key afterwards.
//
// This is the only operation in the engine that surfaces hard errors to the
// caller; every read path degrades instead.
func (s *EntryService) Submit(ctx context.Context, authorID, sentenceID, text string) (*domain.Entry, error) {
	tr := otel.Tracer("services/EntryService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(
			attribute.String("author.id", authorID),
			attribute.String("sentence.id", sentenceID),
		),
	)
	defer span.End()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyEntry
	}
	if utf8.RuneCountInString(text) > s.maxRunes() {
		return nil, ErrEntryTooLong
	}

	if _, err := repo.GetSentence(ctx, s.DB, sentenceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSentenceNotFound
		}
		return nil, err
	}

	return repo.UpsertEntry(ctx, s.DB, authorID, sentenceID, text)
}

// ListPage returns a page of the author's own entries, newest first, plus the
// total count for pagination metadata.
func (s *EntryService) ListPage(ctx context.Context, authorID string, page, pageSize int) ([]domain.Entry, int64, error) {
	tr := otel.Tracer("services/EntryService")
	ctx, span := tr.Start(ctx, "ListPage",
		trace.WithAttributes(
			attribute.String("author.id", authorID),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountEntriesByAuthor(ctx, s.DB, authorID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Entry{}, 0, nil
	}

	items, err := repo.ListEntriesByAuthorPage(ctx, s.DB, authorID, offset, pageSize)
	return items, total, err
}

// FeedPage returns a page of every author's entries for one sentence, newest
// first, with query-time like counts. An unknown sentence yields
// ErrSentenceNotFound.
func (s *EntryService) FeedPage(ctx context.Context, sentenceID string, page, pageSize int) ([]domain.Entry, int64, error) {
	tr := otel.Tracer("services/EntryService")
	ctx, span := tr.Start(ctx, "FeedPage",
		trace.WithAttributes(
			attribute.String("sentence.id", sentenceID),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	if _, err := repo.GetSentence(ctx, s.DB, sentenceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrSentenceNotFound
		}
		return nil, 0, err
	}

	total, err := repo.CountEntriesForSentence(ctx, s.DB, sentenceID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Entry{}, 0, nil
	}

	items, err := repo.ListEntriesForSentencePage(ctx, s.DB, sentenceID, offset, pageSize)
	return items, total, err
}
