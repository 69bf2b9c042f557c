package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/vynorlabs/vynornews/internal/model"
)

// Sample is the offline provider used when no API key is configured. It
// fabricates deterministic items so the client stays fully usable: the same
// offset always yields the same ids, and every 6th item is critical so the
// alerts view has content to show.
type Sample struct {
	pageSize int
}

// NewSample creates a sample provider with the given page size.
func NewSample(pageSize int) *Sample {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Sample{pageSize: pageSize}
}

func (s *Sample) Name() string {
	return "sample"
}

var sampleHeadlines = []string{
	"%s funding round closes above target",
	"Regulators open inquiry into %s sector practices",
	"%s platform outage traced to config rollout",
	"Earnings beat lifts %s suppliers across the board",
	"Leaked memo hints at %s consolidation wave",
	"CRITICAL: %s infrastructure breach under investigation",
	"%s hiring freeze spreads to mid-size firms",
	"Analysts split on %s guidance revision",
	"Pilot program brings %s tooling to public sector",
	"%s standards body publishes draft framework",
	"Court ruling reshapes %s licensing terms",
	"CRITICAL: %s supply chain halt hits three regions",
}

// impactCycle spreads the four levels over consecutive items. Indices 5 and
// 11 line up with the CRITICAL headlines above.
var impactCycle = []model.Impact{
	model.ImpactMedium, model.ImpactLow, model.ImpactMedium, model.ImpactHigh,
	model.ImpactLow, model.ImpactCritical, model.ImpactMedium, model.ImpactLow,
	model.ImpactMedium, model.ImpactHigh, model.ImpactLow, model.ImpactCritical,
}

// FetchFeedPage fabricates the page starting at offset. Ids are globally
// sequential, so successive pages never collide at the merge.
func (s *Sample) FetchFeedPage(ctx context.Context, interests []string, offset int) ([]model.NewsItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(interests) == 0 {
		return nil, fmt.Errorf("no interests selected")
	}

	now := time.Now()
	items := make([]model.NewsItem, 0, s.pageSize)

	for i := 0; i < s.pageSize; i++ {
		n := offset + i
		category := interests[n%len(interests)]
		headline := fmt.Sprintf(sampleHeadlines[n%len(sampleHeadlines)], category)
		age := time.Duration(n+1) * 45 * time.Minute

		items = append(items, model.NewsItem{
			ID:      fmt.Sprintf("n-%d", n),
			Title:   headline,
			Summary: fmt.Sprintf("Briefing on %s: %s Coverage is developing and figures may be revised.", category, headline),
			Content: fmt.Sprintf("Extended analysis of the %s development, compiled from wire coverage and primary filings. The situation is still unfolding; numbers cited here reflect the earliest confirmed reports.", category),
			Impact:      impactCycle[n%len(impactCycle)],
			Category:    category,
			Timestamp:   ageLabel(age),
			PublishedAt: now.Add(-age).UTC().Format(time.RFC3339),
			Sources: []model.NewsSource{
				{Title: "Vynor Wire", URI: fmt.Sprintf("https://wire.vynor.example/%d", n)},
			},
		})
	}

	return items, nil
}

// ageLabel renders a duration as a compact feed-card label.
func ageLabel(d time.Duration) string {
	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
	return fmt.Sprintf("%dd ago", int(d.Hours())/24)
}
