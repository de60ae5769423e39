// Package services – SentenceService
//
// This file implements SentenceService, the application-level component that
// owns content materialization and resolution. It turns the static catalog
// into persisted sentence rows exactly once per (group, day) key, resolves
// "by day", "today", and "random" requests, and implements the layered
// fallback chain that guarantees readers are always shown some sentence.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// include group codes and day indexes where applicable.
package services

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/daily-lines-backend/internal/catalog"
	"github.com/tbourn/daily-lines-backend/internal/domain"
	"github.com/tbourn/daily-lines-backend/internal/repo"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultCampaignEpoch is the first day of the programme when no epoch is
// configured. Day 1 is served on this date.
var DefaultCampaignEpoch = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

// SentenceService coordinates sentence materialization and resolution.
type SentenceService struct {
	DB      *gorm.DB
	Catalog *catalog.Catalog

	// Epoch is the campaign start date; the zero value falls back to
	// DefaultCampaignEpoch.
	Epoch time.Time

	// Now returns the current time; nil means UTC wall clock. Injected so
	// the clamping paths around the epoch are testable.
	Now func() time.Time

	// Intn returns a uniform int in [0,n); nil means math/rand. Injected
	// for deterministic random-pick tests.
	Intn func(n int) int
}

// now returns the effective current time in UTC.
func (s *SentenceService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// epoch returns the effective campaign epoch.
func (s *SentenceService) epoch() time.Time {
	if s.Epoch.IsZero() {
		return DefaultCampaignEpoch
	}
	return s.Epoch
}

// intn returns a uniform int in [0,n).
func (s *SentenceService) intn(n int) int {
	if s.Intn != nil {
		return s.Intn(n)
	}
	return rand.Intn(n)
}

// Ensure materializes the sentence for (groupCode, day), creating the row on
// first access and returning the persisted row on every later call. Returns
// ErrInvalidDayIndex when the catalog has no content for that pair; the
// uniqueness constraint on the natural key makes concurrent calls safe.
func (s *SentenceService) Ensure(ctx context.Context, groupCode string, day int) (*domain.Sentence, error) {
	tr := otel.Tracer("services/SentenceService")
	ctx, span := tr.Start(ctx, "Ensure",
		trace.WithAttributes(
			attribute.String("group.code", groupCode),
			attribute.Int("day.index", day),
		),
	)
	defer span.End()

	content, ok := s.Catalog.Get(groupCode, day)
	if !ok {
		return nil, ErrInvalidDayIndex
	}
	return repo.EnsureSentence(ctx, s.DB, groupCode, day, content)
}

// EnsureAll bulk-materializes the full programme for a group, for bootstrap
// seeding. Per-day failures are logged and skipped; the batch itself never
// fails. Returns the number of days that are materialized afterwards.
func (s *SentenceService) EnsureAll(ctx context.Context, groupCode string) int {
	tr := otel.Tracer("services/SentenceService")
	ctx, span := tr.Start(ctx, "EnsureAll",
		trace.WithAttributes(attribute.String("group.code", groupCode)),
	)
	defer span.End()

	n := 0
	length := s.Catalog.Len(groupCode)
	for day := 1; day <= length; day++ {
		if _, err := s.Ensure(ctx, groupCode, day); err != nil {
			log.Warn().
				Err(err).
				Str("group_code", groupCode).
				Int("day_index", day).
				Msg("ensure skipped")
			continue
		}
		n++
	}
	return n
}

// Resync re-applies the current catalog text onto every materialized slot of
// a group. It is the explicit editorial operation for content edits; plain
// reads never overwrite persisted text. Slots that were never materialized
// are skipped. Returns the number of rows rewritten.
func (s *SentenceService) Resync(ctx context.Context, groupCode string) (int, error) {
	tr := otel.Tracer("services/SentenceService")
	ctx, span := tr.Start(ctx, "Resync",
		trace.WithAttributes(attribute.String("group.code", groupCode)),
	)
	defer span.End()

	n := 0
	length := s.Catalog.Len(groupCode)
	for day := 1; day <= length; day++ {
		content, ok := s.Catalog.Get(groupCode, day)
		if !ok {
			continue
		}
		err := repo.ResyncSentence(ctx, s.DB, groupCode, day, content)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// ByDay resolves an explicit day request. ErrInvalidDayIndex propagates to
// the caller; this is the one resolution path with a hard bounds error.
func (s *SentenceService) ByDay(ctx context.Context, groupCode string, day int) (*domain.Sentence, error) {
	tr := otel.Tracer("services/SentenceService")
	ctx, span := tr.Start(ctx, "ByDay",
		trace.WithAttributes(
			attribute.String("group.code", groupCode),
			attribute.Int("day.index", day),
		),
	)
	defer span.End()

	return s.Ensure(ctx, groupCode, day)
}

// TodayIndex computes the 1-based day index for the current date, clamped to
// [1, programme length]: before the epoch it is 1, after the programme ends
// it stays at the last day.
func (s *SentenceService) TodayIndex(groupCode string) int {
	length := s.Catalog.Len(groupCode)
	day := int(s.now().Sub(s.epoch())/(24*time.Hour)) + 1
	if day < 1 {
		day = 1
	}
	if length > 0 && day > length {
		day = length
	}
	return day
}

// ForToday resolves the sentence for the current date. The index is clamped,
// so a known group always resolves to some valid item; storage errors are the
// only failure mode.
func (s *SentenceService) ForToday(ctx context.Context, groupCode string) (*domain.Sentence, error) {
	tr := otel.Tracer("services/SentenceService")
	ctx, span := tr.Start(ctx, "ForToday",
		trace.WithAttributes(attribute.String("group.code", groupCode)),
	)
	defer span.End()

	return s.Ensure(ctx, groupCode, s.TodayIndex(groupCode))
}

// Random materializes the group's full programme if needed, then picks one
// sentence uniformly among the materialized rows. Returns ErrSentenceNotFound
// only when the group has no content at all.
func (s *SentenceService) Random(ctx context.Context, groupCode string) (*domain.Sentence, error) {
	tr := otel.Tracer("services/SentenceService")
	ctx, span := tr.Start(ctx, "Random",
		trace.WithAttributes(attribute.String("group.code", groupCode)),
	)
	defer span.End()

	s.EnsureAll(ctx, groupCode)

	items, err := repo.ListSentences(ctx, s.DB, groupCode)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrSentenceNotFound
	}
	pick := items[s.intn(len(items))]
	return &pick, nil
}

// ResolveDisplay runs the caller-facing fallback chain: the explicit day when
// given, then today's sentence, then the statically embedded excerpt that
// needs no storage at all. It never returns an error; the returned sentence
// is nil only on the embedded-excerpt path.
func (s *SentenceService) ResolveDisplay(ctx context.Context, groupCode string, explicitDay *int) (content string, sentence *domain.Sentence) {
	tr := otel.Tracer("services/SentenceService")
	ctx, span := tr.Start(ctx, "ResolveDisplay",
		trace.WithAttributes(attribute.String("group.code", groupCode)),
	)
	defer span.End()

	if explicitDay != nil {
		if sent, err := s.ByDay(ctx, groupCode, *explicitDay); err == nil {
			return sent.Content, sent
		}
	}
	if sent, err := s.ForToday(ctx, groupCode); err == nil {
		return sent.Content, sent
	} else {
		log.Warn().
			Err(err).
			Str("group_code", groupCode).
			Msg("falling back to embedded excerpt")
	}
	return catalog.FallbackExcerpt, nil
}

// ParticipantCount counts the distinct authors who have written against the
// (groupCode, day) slot. A never-materialized slot yields 0, not an error;
// resubmissions don't raise the count because of the entry natural key.
func (s *SentenceService) ParticipantCount(ctx context.Context, groupCode string, day int) (int64, error) {
	tr := otel.Tracer("services/SentenceService")
	ctx, span := tr.Start(ctx, "ParticipantCount",
		trace.WithAttributes(
			attribute.String("group.code", groupCode),
			attribute.Int("day.index", day),
		),
	)
	defer span.End()

	sent, err := repo.GetSentenceByKey(ctx, s.DB, groupCode, day)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return repo.CountEntriesForSentence(ctx, s.DB, sent.ID)
}
