// Package docservice is the HTTP client for the external
// document-construction service used for editable (DOCX) output.
package docservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cvforge/go-cvexport/cv"
	"github.com/cvforge/go-cvexport/export"
)

const defaultTimeout = 30 * time.Second

// Client calls the document-construction service. One request per document,
// no retries: DOCX generation has no fallback and fails loudly.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given service base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

type generateRequest struct {
	Model   cv.Model `json:"model"`
	StyleID string   `json:"styleId"`
}

// Generate posts the model and style choice, returning the document bytes.
func (c *Client) Generate(ctx context.Context, model cv.Model, styleID string) ([]byte, error) {
	if c == nil || c.BaseURL == "" {
		return nil, export.NewError(export.KindPrecondition, "document service url not configured", nil)
	}

	payload, err := json.Marshal(generateRequest{Model: model, StyleID: styleID})
	if err != nil {
		return nil, export.NewError(export.KindInternal, "document request encode failed", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/documents", bytes.NewReader(payload))
	if err != nil {
		return nil, export.NewError(export.KindInternal, "document request build failed", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", export.FormatDOCX.ContentType())

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, export.NewError(export.KindInternal, "document service request failed", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, export.NewError(export.KindInternal,
			fmt.Sprintf("document service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, export.NewError(export.KindInternal, "document service response read failed", err)
	}
	if len(data) == 0 {
		return nil, export.NewError(export.KindInternal, "document service returned an empty document", nil)
	}
	return data, nil
}
