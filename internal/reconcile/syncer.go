package reconcile

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultFetchTimeout bounds the remote page fetch. When the deadline
// expires the merge proceeds local-only, identical to a connectivity
// failure.
const DefaultFetchTimeout = 5 * time.Second

// LocalStore is the opaque durable cache on the device. Implementations are
// free to store the records however they like (the engine needs no schema
// knowledge); Load on an empty store returns an empty slice, not an error.
type LocalStore interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
}

// Fetcher retrieves one page of the user's entries from the server. A failed
// call may return any error; the Syncer treats every failure as a silent
// server.
type Fetcher interface {
	FetchPage(ctx context.Context, page, pageSize int) (Page, error)
}

// Syncer coordinates the local read, the bounded remote fetch, and the merge.
// The local read is synchronous; the remote call settles (success or failure)
// before the merge runs. A generation counter guards against late-arriving
// responses: when the owning view goes away, Invalidate discards any fetch
// still in flight instead of applying it to stale state.
type Syncer struct {
	Store   LocalStore
	Fetcher Fetcher

	// Timeout bounds the remote fetch; zero means DefaultFetchTimeout.
	Timeout time.Duration

	gen atomic.Uint64
}

// Invalidate marks every in-flight fetch as stale. Call it when the view
// that requested a page is torn down.
func (s *Syncer) Invalidate() {
	s.gen.Add(1)
}

// Page resolves one page of the user's archive: local snapshot first, then
// the server page under the fetch timeout, then Merge. The error return is
// reserved for a failed local read with no server data to fall back on;
// connectivity failures never surface.
//
// After a trusted merge (the server spoke and the response is still current)
// the merged items are written back to the local store, best effort.
func (s *Syncer) Page(ctx context.Context, page, pageSize int) (Result, error) {
	gen := s.gen.Load()

	local, lerr := s.Store.Load(ctx)
	if lerr != nil {
		log.Warn().Err(lerr).Msg("local cache read failed")
		local = nil
	}

	server := s.fetch(ctx, page, pageSize)

	if s.gen.Load() != gen {
		// The requesting view is gone; do not apply the late response.
		server = Page{}
	}

	if lerr != nil && len(server.Items) == 0 {
		return Result{}, lerr
	}

	res := Merge(local, server, pageSize)

	if len(server.Items) > 0 {
		if err := s.Store.Save(ctx, res.Items); err != nil {
			log.Warn().Err(err).Msg("local cache write failed")
		}
	}

	return res, nil
}

// fetch runs the remote call under the configured timeout, normalizing every
// failure to the zero Page so the merge treats the server as silent.
func (s *Syncer) fetch(ctx context.Context, page, pageSize int) Page {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	p, err := s.Fetcher.FetchPage(fctx, page, pageSize)
	if err != nil {
		log.Warn().Err(err).Int("page", page).Msg("remote fetch failed; using local snapshot")
		return Page{}
	}
	return p
}
