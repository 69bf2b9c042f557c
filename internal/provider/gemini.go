package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/vynorlabs/vynornews/internal/logging"
	"github.com/vynorlabs/vynornews/internal/model"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// Gemini generates feed pages with Google's Gemini API. Requests are
// rate-limited client-side; the free tier throttles aggressively.
type Gemini struct {
	apiKey   string
	model    string
	endpoint string
	pageSize int
	client   *http.Client
	limiter  *rate.Limiter
}

// NewGemini creates a Gemini provider. An empty model selects the default.
func NewGemini(apiKey, geminiModel string, pageSize int) *Gemini {
	if geminiModel == "" {
		geminiModel = "gemini-3-flash-preview"
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Gemini{
		apiKey:   apiKey,
		model:    geminiModel,
		endpoint: geminiEndpoint,
		pageSize: pageSize,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

func (g *Gemini) Name() string {
	return "gemini"
}

// Available reports whether an API key is configured.
func (g *Gemini) Available() bool {
	return g.apiKey != ""
}

// FetchFeedPage asks the model for one page of items as strict JSON.
// Malformed entries in the response are skipped, not fatal.
func (g *Gemini) FetchFeedPage(ctx context.Context, interests []string, offset int) ([]model.NewsItem, error) {
	if !g.Available() {
		return nil, fmt.Errorf("gemini provider not configured")
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	logging.Debug("Gemini feed request starting", "model", g.model, "offset", offset, "interests", len(interests))

	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]string{
					{"text": g.buildPrompt(interests, offset)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"temperature":      0.7,
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.endpoint, g.model, g.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logging.Error("Gemini API error", "status", resp.StatusCode, "body", string(respBody))
		return nil, fmt.Errorf("API error (status %d)", resp.StatusCode)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
			FinishReason string `json:"finishReason"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	content := result.Candidates[0].Content.Parts[0].Text

	var items []model.NewsItem
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		return nil, fmt.Errorf("model returned unparseable feed: %w", err)
	}

	items = sanitize(items)
	logging.Info("Gemini feed page", "items", len(items), "offset", offset)
	return items, nil
}

// buildPrompt describes the page contract to the model. The offset line
// keeps pages disjoint; duplicate ids are still dropped at merge.
func (g *Gemini) buildPrompt(interests []string, offset int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d concise business-intelligence news summaries for a professional tracking these topics: %s.\n",
		g.pageSize, strings.Join(interests, ", "))
	fmt.Fprintf(&b, "This is a pagination request: the reader has already seen %d items, so produce the next %d distinct stories with ids numbered from n-%d.\n",
		offset, g.pageSize, offset)
	b.WriteString(`Respond with a JSON array only. Each element must have exactly these fields:
"id" (string, "n-" followed by the item number),
"title" (string, under 90 characters),
"summary" (string, 2-3 sentences),
"impact" (one of "low", "medium", "high", "critical"),
"category" (one of the given topics),
"timestamp" (friendly age label such as "2h ago"),
"publishedAt" (ISO-8601 instant),
"sources" (array of {"title","uri"} attributions).`)
	return b.String()
}
