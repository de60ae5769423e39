// Entry HTTP handlers.
//
// This file exposes REST endpoints for journal entries:
//   - PUT  /sentences/{id}/entry    (submit or overwrite today's entry)
//   - GET  /users/me/entries        (the author's archive, paginated, ETag support)
//   - GET  /sentences/{id}/entries  (public feed for a sentence, paginated)
//   - POST /entries/{id}/like       (like someone else's entry)
//
// Handlers are transport-thin:
//   - validate & normalize inputs (including newline and length constraints)
//   - delegate to application services (EntryService, LikeService)
//   - implement conditional responses (ETag) on the list endpoints
//
// Submission is an upsert: a second PUT against the same sentence replaces
// the author's previous text rather than creating a sibling row.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/daily-lines-backend/internal/catalog"
	"github.com/tbourn/daily-lines-backend/internal/domain"
	"github.com/tbourn/daily-lines-backend/internal/repo"
	"github.com/tbourn/daily-lines-backend/internal/services"
	"github.com/tbourn/daily-lines-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// EntryService defines entry submission and retrieval operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type EntryService interface {
	// Submit writes or overwrites the author's entry for a sentence.
	Submit(ctx context.Context, authorID, sentenceID, text string) (*domain.Entry, error)
	// ListPage returns a page of the author's entries and the total count.
	ListPage(ctx context.Context, authorID string, page, pageSize int) ([]domain.Entry, int64, error)
	// FeedPage returns a page of all entries written against a sentence.
	FeedPage(ctx context.Context, sentenceID string, page, pageSize int) ([]domain.Entry, int64, error)
}

// LikeService defines operations to appreciate other authors' entries.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type LikeService interface {
	// Like records that userID liked entryID. At most one like per pair.
	Like(ctx context.Context, userID, entryID string) error
}

// AuthorProfileService defines author profile reads and updates.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AuthorProfileService interface {
	// Get returns the author, creating a default profile on first contact.
	Get(ctx context.Context, id string) (*domain.Author, error)
	// UpdateProfile sets nickname and demographics, re-deriving the group.
	UpdateProfile(ctx context.Context, id, nickname, age, gender string) (*domain.Author, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for sentences, entries, likes, and authors.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	sentenceSvc SentenceService
	entrySvc    EntryService
	likeSvc     LikeService
	authorSvc   AuthorProfileService
	catalog     *catalog.Catalog
}

// New constructs and returns a Handlers instance bound to the given services.
func New(sentenceSvc SentenceService, entrySvc EntryService, likeSvc LikeService, authorSvc AuthorProfileService, cat *catalog.Catalog) *Handlers {
	return &Handlers{
		sentenceSvc: sentenceSvc,
		entrySvc:    entrySvc,
		likeSvc:     likeSvc,
		authorSvc:   authorSvc,
		catalog:     cat,
	}
}

// userID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

//
// DTOs
//

// SubmitEntryRequest is the JSON payload for submitting an entry.
//
// Text is normalized by the handler (line endings and excessive blank lines)
// before being passed to the service layer. The service also enforces a
// maximum rune count, which can be configured in EntryService.
type SubmitEntryRequest struct {
	// Text is the author's writing for the day. It must be non-empty.
	Text string `json:"text" binding:"required,min=1" example:"Today the rain wrote the first line for me."`
}

// SubmitEntryResponse is the JSON envelope for a saved entry.
type SubmitEntryResponse struct {
	// Entry is the row persisted (or overwritten) by the request.
	Entry *domain.Entry `json:"entry"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListEntriesResponse wraps a page of entries and pagination information.
type ListEntriesResponse struct {
	Entries    []domain.Entry `json:"entries"`
	Pagination Pagination     `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// nlCollapseRE collapses runs of 3+ newlines to two, preserving paragraphs.
var nlCollapseRE = regexp.MustCompile(`\n{3,}`)

// sanitizeText normalizes user text for consistent downstream behavior:
//   - converts CRLF/CR to LF,
//   - collapses runs of 3+ LFs to exactly two (paragraph separation),
//   - trims surrounding whitespace.
func sanitizeText(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = nlCollapseRE.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// discoverMaxEntryRunes inspects the concrete EntryService for a configured
// length limit. If unavailable, it returns the package default.
func discoverMaxEntryRunes(entrySvc EntryService) int {
	if es, ok := entrySvc.(*services.EntryService); ok {
		if es.MaxRunes > 0 {
			return es.MaxRunes
		}
	}
	return services.MaxEntryRunes
}

//
// Handlers
//

// SubmitEntry godoc
// @ID          submitEntry
// @Summary     Submit or overwrite an entry
// @Description Saves the author's writing against a sentence. A repeat submission for the same sentence overwrites the previous text instead of creating a second entry.
// @Tags        Entries
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Sentence ID (UUID)"     format(uuid)
// @Param       body       body    handlers.SubmitEntryRequest  true  "Entry payload"
//
// @Success     200  {object}  handlers.SubmitEntryResponse  "Saved entry"
// @Failure     400  {object}  handlers.ErrorResponse        "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse        "Sentence not found"
// @Failure     500  {object}  handlers.ErrorResponse        "Internal error"
// @Router      /sentences/{id}/entry [put]
func (h *Handlers) SubmitEntry(c *gin.Context) {
	ctx := c.Request.Context()
	sentenceID := c.Param("id")

	if _, err := uuid.Parse(sentenceID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sentence id must be a UUID")
		return
	}

	var req SubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text required")
		return
	}

	// Sanitize + early size cap to fail fast at the edge.
	text := sanitizeText(req.Text)
	maxRunes := discoverMaxEntryRunes(h.entrySvc)
	if maxRunes > 0 && utf8.RuneCountInString(text) > maxRunes {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("text too long: max %d runes", maxRunes))
		return
	}
	if text == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text required")
		return
	}

	// Normal processing (service has a second guard for length).
	e, err := h.entrySvc.Submit(ctx, userID(c), sentenceID, text)
	if err != nil {
		switch err {
		case services.ErrSentenceNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "sentence not found")
		case services.ErrEntryTooLong:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("text too long: max %d runes", maxRunes))
		case services.ErrEmptyEntry:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSubmitFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, SubmitEntryResponse{Entry: e})
}

// ListMyEntries godoc
// @ID          listMyEntries
// @Summary     List the current author's entries (paginated)
// @Description Returns a page of the author's archive, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Entries
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"       example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListEntriesResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /users/me/entries [get]
func (h *Handlers) ListMyEntries(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, ok := h.entrySvc.(*services.EntryService); ok {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.EntriesStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"entries:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	// Fetch page.
	items, total, err := h.entrySvc.ListPage(ctx, uid, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListEntriesResponse{
		Entries: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// SentenceFeed godoc
// @ID          sentenceFeed
// @Summary     List entries written against a sentence
// @Description Returns a page of all authors' entries for the given sentence, newest first, each with its like count. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Entries
// @Produce     json
//
// @Param       id             path    string  true  "Sentence ID (UUID)"          format(uuid)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListEntriesResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /sentences/{id}/entries [get]
func (h *Handlers) SentenceFeed(c *gin.Context) {
	ctx := c.Request.Context()
	sentenceID := c.Param("id")

	if _, err := uuid.Parse(sentenceID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sentence id must be a UUID")
		return
	}

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, ok := h.entrySvc.(*services.EntryService); ok {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.SentenceFeedStats(ctx, db, sentenceID)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"feed:%s:%d:%d"`, sentenceID, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	page, pageSize := clampPagination(c)

	items, total, err := h.entrySvc.FeedPage(ctx, sentenceID, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListEntriesResponse{
		Entries: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// LikeEntry godoc
// @ID          likeEntry
// @Summary     Like an entry
// @Description Records the current user's like on another author's entry. Liking your own entry or liking twice is rejected.
// @Tags        Entries
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Entry ID (UUID)"        format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Cannot like own entry"
// @Failure     404  {object} handlers.ErrorResponse "Entry not found"
// @Failure     409  {object} handlers.ErrorResponse "Already liked"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /entries/{id}/like [post]
func (h *Handlers) LikeEntry(c *gin.Context) {
	entryID := c.Param("id")
	if _, err := uuid.Parse(entryID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "entry id must be a UUID")
		return
	}

	if err := h.likeSvc.Like(c.Request.Context(), userID(c), entryID); err != nil {
		switch err {
		case services.ErrEntryNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "entry not found")
		case services.ErrOwnEntryLike:
			fail(c, http.StatusForbidden, ErrCodeForbidden, "cannot like your own entry")
		case services.ErrDuplicateLike:
			fail(c, http.StatusConflict, ErrCodeConflict, "already liked")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}
