// Author HTTP handlers.
//
// This file exposes REST endpoints for the author profile:
//   - GET /users/me          (fetch, auto-creating a default profile)
//   - PUT /users/me/profile  (update nickname and demographics)
//
// A profile update re-derives the author's content group from the new
// demographics, so the next sentence fetch reflects the change.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest is the JSON payload for updating the author profile.
//
// Age and gender take the bracket vocabulary ("10s".."40s", "female"/"male");
// unknown or empty values collapse to the general brackets.
type UpdateProfileRequest struct {
	Nickname string `json:"nickname" example:"quiet-river"`
	Age      string `json:"age" example:"20s"`
	Gender   string `json:"gender" example:"female"`
}

// GetMe godoc
// @ID          getMe
// @Summary     Get the current author profile
// @Description Returns the author row for the current user, creating a default profile (general brackets, default group) on first contact.
// @Tags        Authors
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  domain.Author
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/me [get]
func (h *Handlers) GetMe(c *gin.Context) {
	a, err := h.authorSvc.Get(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, a)
}

// UpdateProfile godoc
// @ID          updateProfile
// @Summary     Update the current author profile
// @Description Sets nickname and demographic brackets and re-derives the author's content group. Unknown bracket values fall back to the general cohort.
// @Tags        Authors
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.UpdateProfileRequest  true  "Profile payload"
//
// @Success     200  {object}  domain.Author
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/me/profile [put]
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	a, err := h.authorSvc.UpdateProfile(
		c.Request.Context(),
		userID(c),
		strings.TrimSpace(req.Nickname),
		strings.TrimSpace(req.Age),
		strings.TrimSpace(req.Gender),
	)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, a)
}
