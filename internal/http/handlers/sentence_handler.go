// Sentence HTTP handlers.
//
// This file exposes REST endpoints for content resolution:
//   - GET  /groups/resolve                          (demographics → group code)
//   - GET  /groups/{code}/sentences/today           (today's sentence, never fails)
//   - GET  /groups/{code}/sentences/random          (uniform pick over the programme)
//   - GET  /groups/{code}/sentences/{day}           (explicit day, bounds-checked)
//   - GET  /groups/{code}/sentences/{day}/participants
//   - POST /groups/{code}/resync                    (re-apply catalog text, editorial)
//
// Handlers are transport-thin: they validate and normalize inputs, delegate
// to the sentence service, and translate results into HTTP responses. The
// "today" endpoint runs the full display fallback chain so it can never
// surface a hard failure; the explicit-day endpoint is the only content read
// with an error path.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/daily-lines-backend/internal/catalog"
	"github.com/tbourn/daily-lines-backend/internal/domain"
	"github.com/tbourn/daily-lines-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// SentenceService defines content materialization and resolution operations
// consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type SentenceService interface {
	// ByDay resolves the sentence for an explicit day; out-of-bounds days
	// yield services.ErrInvalidDayIndex.
	ByDay(ctx context.Context, groupCode string, day int) (*domain.Sentence, error)
	// Random picks uniformly among the group's materialized sentences.
	Random(ctx context.Context, groupCode string) (*domain.Sentence, error)
	// ResolveDisplay runs the fallback chain; it never fails.
	ResolveDisplay(ctx context.Context, groupCode string, explicitDay *int) (string, *domain.Sentence)
	// Resync re-applies catalog text onto materialized rows.
	Resync(ctx context.Context, groupCode string) (int, error)
	// ParticipantCount counts authors who wrote against a (group, day) slot.
	ParticipantCount(ctx context.Context, groupCode string, day int) (int64, error)
}

//
// DTOs
//

// ResolveGroupResponse is the JSON envelope for group resolution.
type ResolveGroupResponse struct {
	GroupCode string `json:"group_code" example:"f20"`
	Label     string `json:"label" example:"Twenties Female"`
}

// SentenceResponse is the JSON envelope for a resolved sentence.
//
// Sentence is nil (omitted) when the content came from the embedded fallback
// excerpt rather than a persisted row; Content always carries the text to
// display.
type SentenceResponse struct {
	Content  string           `json:"content"`
	Sentence *domain.Sentence `json:"sentence,omitempty"`
}

// ParticipantCountResponse reports how many authors wrote for a slot.
type ParticipantCountResponse struct {
	GroupCode string `json:"group_code"`
	DayIndex  int    `json:"day_index"`
	Count     int64  `json:"count"`
}

// ResyncResponse reports how many rows a resync rewrote.
type ResyncResponse struct {
	GroupCode string `json:"group_code"`
	Updated   int    `json:"updated"`
}

//
// Handlers
//

// ResolveGroup godoc
// @ID          resolveGroup
// @Summary     Resolve demographics to a content group
// @Description Maps age and gender brackets to the group code whose programme the user sees. Unknown values collapse to the default group.
// @Tags        Groups
// @Produce     json
//
// @Param       age     query  string  false "Age bracket"    Enums(10s,20s,30s,40s,general)
// @Param       gender  query  string  false "Gender bracket" Enums(female,male,none)
//
// @Success     200  {object}  handlers.ResolveGroupResponse
// @Router      /groups/resolve [get]
func (h *Handlers) ResolveGroup(c *gin.Context) {
	age := catalog.ParseAgeBracket(c.Query("age"))
	gender := catalog.ParseGenderBracket(c.Query("gender"))
	code := catalog.Resolve(age, gender)

	resp := ResolveGroupResponse{GroupCode: code}
	if g, ok := h.catalog.Group(code); ok {
		resp.Label = g.Label
	}
	ok(c, http.StatusOK, resp)
}

// GetToday godoc
// @ID          getToday
// @Summary     Get today's sentence
// @Description Resolves the sentence for the current programme day, clamped to the programme bounds. Falls back through the display chain (today → embedded excerpt) so it always returns content.
// @Tags        Sentences
// @Produce     json
//
// @Param       code  path  string  true  "Group code"  example(f20)
//
// @Success     200  {object}  handlers.SentenceResponse
// @Router      /groups/{code}/sentences/today [get]
func (h *Handlers) GetToday(c *gin.Context) {
	content, sent := h.sentenceSvc.ResolveDisplay(c.Request.Context(), c.Param("code"), nil)
	ok(c, http.StatusOK, SentenceResponse{Content: content, Sentence: sent})
}

// GetByDay godoc
// @ID          getByDay
// @Summary     Get the sentence for an explicit day
// @Description Materializes and returns the sentence for the given 1-based day. Days outside the programme yield invalid_day_index.
// @Tags        Sentences
// @Produce     json
//
// @Param       code  path  string  true  "Group code"            example(f20)
// @Param       day   path  int     true  "1-based day index"     minimum(1)
//
// @Success     200  {object}  handlers.SentenceResponse
// @Failure     400  {object}  handlers.ErrorResponse "Day outside programme bounds"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /groups/{code}/sentences/{day} [get]
func (h *Handlers) GetByDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "day must be an integer")
		return
	}

	sent, err := h.sentenceSvc.ByDay(c.Request.Context(), c.Param("code"), day)
	if err != nil {
		switch err {
		case services.ErrInvalidDayIndex:
			fail(c, http.StatusBadRequest, ErrCodeInvalidDayIndex, "day outside programme bounds")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, SentenceResponse{Content: sent.Content, Sentence: sent})
}

// GetRandom godoc
// @ID          getRandom
// @Summary     Get a random sentence from the programme
// @Description Materializes the group's full programme if needed, then picks one sentence uniformly at random.
// @Tags        Sentences
// @Produce     json
//
// @Param       code  path  string  true  "Group code"  example(f20)
//
// @Success     200  {object}  handlers.SentenceResponse
// @Failure     404  {object}  handlers.ErrorResponse "Group has no content"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /groups/{code}/sentences/random [get]
func (h *Handlers) GetRandom(c *gin.Context) {
	sent, err := h.sentenceSvc.Random(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch err {
		case services.ErrSentenceNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "group has no content")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, SentenceResponse{Content: sent.Content, Sentence: sent})
}

// GetParticipantCount godoc
// @ID          getParticipantCount
// @Summary     Count authors who wrote for a day
// @Description Returns how many distinct authors submitted an entry against the (group, day) sentence. A never-materialized slot counts 0.
// @Tags        Sentences
// @Produce     json
//
// @Param       code  path  string  true  "Group code"          example(f20)
// @Param       day   path  int     true  "1-based day index"   minimum(1)
//
// @Success     200  {object}  handlers.ParticipantCountResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /groups/{code}/sentences/{day}/participants [get]
func (h *Handlers) GetParticipantCount(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "day must be an integer")
		return
	}
	code := c.Param("code")

	count, err := h.sentenceSvc.ParticipantCount(c.Request.Context(), code, day)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, ParticipantCountResponse{GroupCode: code, DayIndex: day, Count: count})
}

// ResyncGroup godoc
// @ID          resyncGroup
// @Summary     Re-apply catalog text onto materialized sentences
// @Description Editorial operation: rewrites every materialized sentence of the group with the catalog's current text. Plain reads never overwrite persisted content.
// @Tags        Sentences
// @Produce     json
//
// @Param       code  path  string  true  "Group code"  example(f20)
//
// @Success     200  {object}  handlers.ResyncResponse
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /groups/{code}/resync [post]
func (h *Handlers) ResyncGroup(c *gin.Context) {
	code := c.Param("code")
	n, err := h.sentenceSvc.Resync(c.Request.Context(), code)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeResyncFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ResyncResponse{GroupCode: code, Updated: n})
}
