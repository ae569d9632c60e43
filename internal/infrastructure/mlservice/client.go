package mlservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/phishguard/phishguard-api/internal/domain/classifier"
	"github.com/phishguard/phishguard-api/internal/domain/entity"
)

// Client calls the external ML classifier over HTTP. The call is a single
// attempt; there is no retry or circuit breaking.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type predictResponse struct {
	IsPhishing bool           `json:"is_phishing"`
	Confidence float64        `json:"confidence"`
	Features   map[string]any `json:"features"`
}

func (c *Client) Classify(ctx context.Context, text string, kind entity.InputType) (entity.Verdict, error) {
	body, err := json.Marshal(predictRequest{Text: text, Type: string(kind)})
	if err != nil {
		return entity.Verdict{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return entity.Verdict{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return entity.Verdict{}, fmt.Errorf("ml service request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return entity.Verdict{}, fmt.Errorf("ml service returned status %d", res.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return entity.Verdict{}, fmt.Errorf("ml service returned malformed response: %w", err)
	}

	return entity.Verdict{
		IsPhishing: out.IsPhishing,
		Confidence: out.Confidence,
		Features:   out.Features,
	}, nil
}

var _ classifier.Classifier = (*Client)(nil)
