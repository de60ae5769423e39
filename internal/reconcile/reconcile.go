// Package reconcile merges the client's optimistic local cache of authored
// entries with the authoritative server view into one consistent, paginated
// result. It is transport-agnostic: the server page and local snapshot are
// plain values, and the Syncer in this package wires them to pluggable
// stores.
//
// The consistency model is deliberately weak: the server is trusted only when
// it actually speaks (returns a non-empty item list). An empty server page is
// indistinguishable from a failed call, so the local snapshot is kept as-is
// in both cases. This exists so a transient connectivity failure never
// renders a user's own archive empty; the trade-off is that a server-side
// deletion of the user's only entries is invisible while a stale non-empty
// local cache persists.
package reconcile

import (
	"sort"
	"time"
)

// Record is one authored entry as both cache and server represent it. The
// same tagged type is shared by the local-cache path and the remote path so
// the merge-by-id step is type-safe.
type Record struct {
	ID         string    `json:"id"`
	SentenceID string    `json:"sentence_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// Page is one page of the server's view. Total is nil when the server did not
// report an overall count (including every failure path, which callers
// normalize to a zero Page).
type Page struct {
	Items []Record
	Total *int64
}

// Result is the merged, display-ready view.
type Result struct {
	Items      []Record
	TotalPages int
}

// Merge combines the local snapshot with a server page under the
// trust-server-only-when-it-speaks policy:
//
//  1. Local records are keyed by id (insertion order irrelevant).
//  2. When the server page has items, each one is overlaid into the map,
//     server values winning on collision. An empty server page leaves the
//     map exactly as the local snapshot populated it.
//  3. The result is sorted by CreatedAt descending (id ascending on ties,
//     for determinism).
//  4. TotalPages derives from the server total when present, otherwise from
//     the local snapshot size.
//
// pageSize values below 1 are coerced to 1.
func Merge(local []Record, server Page, pageSize int) Result {
	if pageSize < 1 {
		pageSize = 1
	}

	byID := make(map[string]Record, len(local)+len(server.Items))
	order := make([]string, 0, len(local)+len(server.Items))
	for _, r := range local {
		if _, seen := byID[r.ID]; !seen {
			order = append(order, r.ID)
		}
		byID[r.ID] = r
	}
	if len(server.Items) > 0 {
		for _, r := range server.Items {
			if _, seen := byID[r.ID]; !seen {
				order = append(order, r.ID)
			}
			byID[r.ID] = r
		}
	}

	items := make([]Record, 0, len(byID))
	for _, id := range order {
		items = append(items, byID[id])
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})

	var total int64
	if server.Total != nil {
		total = *server.Total
	} else {
		total = int64(len(local))
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return Result{Items: items, TotalPages: totalPages}
}
