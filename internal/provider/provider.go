// Package provider implements the feed content sources. A Provider turns a
// set of interest tags and a paging offset into one batch of news items;
// the Gemini implementation generates them via the generateContent API and
// Sample is the deterministic offline fallback.
package provider

import (
	"context"

	"github.com/vynorlabs/vynornews/internal/model"
)

// Provider produces one page of feed items for a set of interest tags.
// offset is the number of items the caller already holds; implementations
// use it as a paging cursor. Callers treat any error as an empty batch.
type Provider interface {
	Name() string
	FetchFeedPage(ctx context.Context, interests []string, offset int) ([]model.NewsItem, error)
}

const defaultPageSize = 8

// sanitize drops entries that do not satisfy the feed contract: a non-empty
// id, title and summary, and one of the four impact levels.
func sanitize(items []model.NewsItem) []model.NewsItem {
	out := items[:0]
	for _, item := range items {
		if item.ID == "" || item.Title == "" || item.Summary == "" {
			continue
		}
		if !item.Impact.Valid() {
			continue
		}
		out = append(out, item)
	}
	return out
}
