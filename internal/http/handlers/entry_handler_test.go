package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/tbourn/daily-lines-backend/internal/domain"
)

// materialize fetches a (group, day) sentence through the API and returns it.
func materialize(t *testing.T, env *testEnv, group string, day int) *domain.Sentence {
	t.Helper()
	w := env.do(t, http.MethodGet, "/groups/"+group+"/sentences/"+strconv.Itoa(day), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("materialize %s/%d -> %d", group, day, w.Code)
	}
	var resp SentenceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if resp.Sentence == nil {
		t.Fatalf("no persisted sentence for %s/%d", group, day)
	}
	return resp.Sentence
}

func submit(t *testing.T, env *testEnv, user, sentenceID, text string) *domain.Entry {
	t.Helper()
	body, _ := json.Marshal(SubmitEntryRequest{Text: text})
	w := env.do(t, http.MethodPut, "/sentences/"+sentenceID+"/entry", string(body),
		map[string]string{"X-User-ID": user})
	if w.Code != http.StatusOK {
		t.Fatalf("submit -> %d; body %s", w.Code, w.Body.String())
	}
	var resp SubmitEntryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return resp.Entry
}

func TestSubmitEntry_Validation(t *testing.T) {
	env := newTestEnv(t)

	// Sentence id must be a UUID.
	w := env.do(t, http.MethodPut, "/sentences/not-a-uuid/entry", `{"text":"hi"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad uuid -> %d", w.Code)
	}

	sent := materialize(t, env, "base", 1)

	// Missing text fails binding.
	w = env.do(t, http.MethodPut, "/sentences/"+sent.ID+"/entry", `{}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing text -> %d", w.Code)
	}

	// Whitespace-only text is rejected after sanitization.
	w = env.do(t, http.MethodPut, "/sentences/"+sent.ID+"/entry", `{"text":"  \r\n  "}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank text -> %d", w.Code)
	}

	// Over the rune limit.
	long := strings.Repeat("あ", 501)
	body, _ := json.Marshal(SubmitEntryRequest{Text: long})
	w = env.do(t, http.MethodPut, "/sentences/"+sent.ID+"/entry", string(body), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("over limit -> %d", w.Code)
	}

	// Unknown (but well-formed) sentence id.
	w = env.do(t, http.MethodPut,
		"/sentences/141add05-63f5-4353-9d9a-bb3c94897b2b/entry", `{"text":"hi"}`, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown sentence -> %d", w.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &er)
	if er.Code != ErrCodeNotFound {
		t.Fatalf("code = %q", er.Code)
	}
}

func TestSubmitEntry_UpsertKeepsOneRow(t *testing.T) {
	env := newTestEnv(t)
	sent := materialize(t, env, "base", 2)

	first := submit(t, env, "writer-1", sent.ID, "  draft one  ")
	if first.Text != "draft one" {
		t.Fatalf("text not sanitized: %q", first.Text)
	}

	second := submit(t, env, "writer-1", sent.ID, "final version")
	if second.ID != first.ID {
		t.Fatalf("resubmission must overwrite, got new row %s", second.ID)
	}
	if second.Text != "final version" {
		t.Fatalf("text = %q", second.Text)
	}

	var n int64
	if err := env.db.Model(&domain.Entry{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("entries = %d; want 1", n)
	}
}

func TestListMyEntries_PaginationAndETag(t *testing.T) {
	env := newTestEnv(t)
	s1 := materialize(t, env, "base", 1)
	s2 := materialize(t, env, "base", 2)
	submit(t, env, "writer-1", s1.ID, "one")
	submit(t, env, "writer-1", s2.ID, "two")
	submit(t, env, "writer-2", s1.ID, "other author")

	hdr := map[string]string{"X-User-ID": "writer-1"}
	w := env.do(t, http.MethodGet, "/users/me/entries", "", hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d", w.Code)
	}
	etag := w.Header().Get("ETag")
	if !strings.HasPrefix(etag, `W/"entries:writer-1:`) {
		t.Fatalf("ETag = %q", etag)
	}

	var resp ListEntriesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(resp.Entries) != 2 || resp.Pagination.Total != 2 {
		t.Fatalf("entries=%d total=%d", len(resp.Entries), resp.Pagination.Total)
	}
	if resp.Pagination.Page != 1 || resp.Pagination.PageSize != 20 || resp.Pagination.HasNext {
		t.Fatalf("pagination = %+v", resp.Pagination)
	}

	// Conditional re-read is a 304 without a body.
	hdr["If-None-Match"] = etag
	w = env.do(t, http.MethodGet, "/users/me/entries", "", hdr)
	if w.Code != http.StatusNotModified {
		t.Fatalf("conditional -> %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("304 carried a body: %s", w.Body.String())
	}

	// Small pages report further pages.
	delete(hdr, "If-None-Match")
	w = env.do(t, http.MethodGet, "/users/me/entries?page=1&page_size=1", "", hdr)
	resp = ListEntriesResponse{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if resp.Pagination.TotalPages != 2 || !resp.Pagination.HasNext {
		t.Fatalf("pagination = %+v", resp.Pagination)
	}
}

func TestSentenceFeed(t *testing.T) {
	env := newTestEnv(t)
	sent := materialize(t, env, "f20", 3)
	e1 := submit(t, env, "writer-1", sent.ID, "mine")
	submit(t, env, "writer-2", sent.ID, "theirs")

	// Reader likes one entry so the feed exposes a count.
	w := env.do(t, http.MethodPost, "/entries/"+e1.ID+"/like", "",
		map[string]string{"X-User-ID": "reader-1"})
	if w.Code != http.StatusNoContent {
		t.Fatalf("like -> %d", w.Code)
	}

	w = env.do(t, http.MethodGet, "/sentences/"+sent.ID+"/entries", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("feed -> %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("ETag"), `W/"feed:`+sent.ID) {
		t.Fatalf("ETag = %q", w.Header().Get("ETag"))
	}

	var resp ListEntriesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(resp.Entries) != 2 {
		t.Fatalf("feed size = %d", len(resp.Entries))
	}
	likes := map[string]int64{}
	for _, e := range resp.Entries {
		likes[e.ID] = e.LikeCount
	}
	if likes[e1.ID] != 1 {
		t.Fatalf("like_count = %d; want 1", likes[e1.ID])
	}

	// Malformed sentence id.
	w = env.do(t, http.MethodGet, "/sentences/zzz/entries", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id -> %d", w.Code)
	}
}

func TestLikeEntry_Rules(t *testing.T) {
	env := newTestEnv(t)
	sent := materialize(t, env, "base", 4)
	entry := submit(t, env, "writer-1", sent.ID, "a line of my own")

	// Malformed entry id.
	w := env.do(t, http.MethodPost, "/entries/nope/like", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id -> %d", w.Code)
	}

	// Unknown entry.
	w = env.do(t, http.MethodPost,
		"/entries/141add05-63f5-4353-9d9a-bb3c94897b2b/like", "",
		map[string]string{"X-User-ID": "reader-1"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown entry -> %d", w.Code)
	}

	// Authors cannot like their own entry.
	w = env.do(t, http.MethodPost, "/entries/"+entry.ID+"/like", "",
		map[string]string{"X-User-ID": "writer-1"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("own like -> %d", w.Code)
	}

	// First like succeeds, the repeat conflicts.
	hdr := map[string]string{"X-User-ID": "reader-1"}
	if w := env.do(t, http.MethodPost, "/entries/"+entry.ID+"/like", "", hdr); w.Code != http.StatusNoContent {
		t.Fatalf("like -> %d", w.Code)
	}
	w = env.do(t, http.MethodPost, "/entries/"+entry.ID+"/like", "", hdr)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate like -> %d", w.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &er)
	if er.Code != ErrCodeConflict {
		t.Fatalf("code = %q", er.Code)
	}
}
