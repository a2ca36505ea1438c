package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"smarttask/internal/model"
)

// Result is the outcome of a classification call. RawLabel and Score
// carry the classifier's own output for logging; only Priority is stored.
type Result struct {
	Priority model.Priority
	RawLabel string
	Score    float64
}

// Fallback is the result used whenever the classifier cannot produce a
// usable answer. Task mutations must never fail because the classifier
// is unreachable.
func Fallback() Result {
	return Result{Priority: model.PriorityMedium, RawLabel: "normal", Score: 0}
}

// Client calls the external priority classification service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Description string `json:"description"`
}

type predictResponse struct {
	Label    string  `json:"label"`
	RawLabel string  `json:"raw_label"`
	Score    float64 `json:"score"`
}

// Classify sends the description to the classification endpoint and
// returns the suggested priority. It never returns an error: any
// non-2xx status, transport failure, timeout, or malformed response
// collapses to Fallback().
func (c *Client) Classify(ctx context.Context, description string) Result {
	body, err := json.Marshal(predictRequest{Description: description})
	if err != nil {
		log.Printf("⚠️  Classifier request encoding failed: %v", err)
		return Fallback()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		log.Printf("⚠️  Classifier request build failed: %v", err)
		return Fallback()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("⚠️  Classifier call failed: %v", err)
		return Fallback()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("⚠️  Classifier responded with status %d", resp.StatusCode)
		return Fallback()
	}

	var pr predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		log.Printf("⚠️  Classifier response decoding failed: %v", err)
		return Fallback()
	}

	priority, ok := model.ParsePriority(pr.Label)
	if !ok {
		log.Printf("⚠️  Classifier returned unknown label %q", pr.Label)
		return Fallback()
	}

	return Result{Priority: priority, RawLabel: pr.RawLabel, Score: pr.Score}
}
