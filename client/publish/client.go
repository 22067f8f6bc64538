package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"

	"transcriptdiff/logger"
	"transcriptdiff/text"
)

// Request is the envelope sent to a rendering service
type Request struct {
	ComparisonID string       `json:"comparison_id"`
	Title        string       `json:"title,omitempty"`
	Summary      string       `json:"summary"`
	CreatedAt    time.Time    `json:"created_at"`
	Result       *text.Result `json:"result"`
}

// Response is returned by the rendering service once a result is stored
type Response struct {
	ComparisonID string `json:"comparison_id"`
	ViewURL      string `json:"view_url"`
}

// NewRequest wraps result in an envelope with a fresh comparison ID
func NewRequest(title, summary string, result *text.Result) *Request {
	return &Request{
		ComparisonID: uuid.NewString(),
		Title:        title,
		Summary:      summary,
		CreatedAt:    time.Now().UTC(),
		Result:       result,
	}
}

// Client posts diff results to a rendering service
type Client struct {
	HTTPClient *http.Client
	URL        string
	AuthToken  string
}

// NewClient creates a new publish client
// timeoutMs is the HTTP client timeout in milliseconds (0 = no timeout)
func NewClient(url, token string, timeoutMs int) *Client {
	timeout := time.Duration(0)
	if timeoutMs > 0 {
		timeout = time.Duration(timeoutMs) * time.Millisecond
	}

	return &Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		URL:       url,
		AuthToken: token,
	}
}

// Publish sends req as brotli-compressed JSON
func (c *Client) Publish(ctx context.Context, req *Request) (*Response, error) {
	defer logger.Trace("publish.Publish")()

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Compress with brotli (quality 1 for speed)
	var compressedBuf bytes.Buffer
	brotliWriter := brotli.NewWriterLevel(&compressedBuf, 1)
	if _, err := brotliWriter.Write(jsonData); err != nil {
		return nil, fmt.Errorf("failed to compress request: %w", err)
	}
	if err := brotliWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close brotli writer: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, &compressedBuf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Content-Encoding", "br")
	if c.AuthToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var pubResp Response
	if err := json.Unmarshal(body, &pubResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	logger.Debug("published comparison %s (%d bytes compressed from %d)", req.ComparisonID, compressedBuf.Len(), len(jsonData))
	return &pubResp, nil
}
