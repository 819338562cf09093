// Package sheets is the client for the spreadsheet-backed web endpoint that
// stores investigator documents
package sheets

//go:generate mockgen -destination=mock/mock_client.go -package=sheetsmock github.com/KirkDiggler/coc-sheet-api/internal/clients/sheets Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
)

const (
	actionList   = "list"
	actionSave   = "save"
	actionDelete = "delete"

	// the endpoint only answers simple requests without a CORS preflight
	contentType = "text/plain;charset=utf-8"

	statusError = "error"

	defaultHTTPTimeout = 30 * time.Second
	maxResponseBytes   = 16 << 20
)

// Client defines the operations offered by the endpoint
type Client interface {
	// List returns every stored document
	List(ctx context.Context) ([]*coc.Character, error)

	// Save upserts a whole document keyed by its ID
	Save(ctx context.Context, char *coc.Character) error

	// Delete removes the document with the given ID
	Delete(ctx context.Context, id string) error
}

// HTTPDoer is the part of *http.Client the sheets client needs
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config contains configuration options for the sheets client.
type Config struct {
	// Endpoint is the deployed web app URL. It may be empty; calls then
	// fail with a transport error.
	Endpoint string
	// HTTPTimeout for requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the default client (optional)
	HTTPClient HTTPDoer
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgument("http timeout cannot be negative")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.Endpoint != "" {
		u, err := url.Parse(cfg.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.InvalidArgumentf("invalid endpoint: %q", cfg.Endpoint)
		}
	}
	return nil
}

type client struct {
	endpoint string
	http     HTTPDoer
}

// New creates a new sheets client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		endpoint: cfg.Endpoint,
		http:     httpClient,
	}, nil
}

type savePayload struct {
	Action string         `json:"action"`
	Data   *coc.Character `json:"data"`
}

type deletePayload struct {
	Action string `json:"action"`
	ID     string `json:"id"`
}

// response is the envelope returned by every action
type response struct {
	Status  string            `json:"status,omitempty"`
	Message string            `json:"message,omitempty"`
	Items   []json.RawMessage `json:"items,omitempty"`
}

func (c *client) List(ctx context.Context) ([]*coc.Character, error) {
	if c.endpoint == "" {
		return nil, errors.Transport(nil, "sheet endpoint is not configured")
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errors.Transport(err, "invalid sheet endpoint")
	}
	q := u.Query()
	q.Set("action", actionList)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Transport(err, "failed to build list request")
	}

	resp, err := c.do(req, actionList)
	if err != nil {
		return nil, err
	}

	items := make([]*coc.Character, 0, len(resp.Items))
	skipped := 0
	for i, raw := range resp.Items {
		var item *coc.Character
		if err := json.Unmarshal(raw, &item); err != nil {
			slog.WarnContext(ctx, "Skipping unreadable sheet row",
				"row", i,
				"error", err,
			)
			skipped++
			continue
		}
		if item != nil {
			items = append(items, item)
		}
	}

	slog.DebugContext(ctx, "Listed characters from sheet", "count", len(items), "skipped", skipped)

	return items, nil
}

func (c *client) Save(ctx context.Context, char *coc.Character) error {
	if char == nil {
		return errors.InvalidArgument("character is required")
	}
	_, err := c.post(ctx, actionSave, savePayload{Action: actionSave, Data: char})
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "Saved character to sheet", "character_id", char.ID)
	return nil
}

func (c *client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("character ID is required")
	}
	_, err := c.post(ctx, actionDelete, deletePayload{Action: actionDelete, ID: id})
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "Deleted character from sheet", "character_id", id)
	return nil
}

func (c *client) post(ctx context.Context, action string, payload any) (*response, error) {
	if c.endpoint == "" {
		return nil, errors.Transport(nil, "sheet endpoint is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s payload", action)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Transportf(err, "failed to build %s request", action)
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req, action)
}

// do sends the request and decodes the envelope. Every failure past this
// point is reported as a single transport error.
func (c *client) do(req *http.Request, action string) (*response, error) {
	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Transportf(err, "sheet %s request failed", action)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Transportf(err, "failed to read sheet %s response", action)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, errors.Transportf(
			fmt.Errorf("unexpected status %d", httpResp.StatusCode),
			"sheet %s request failed", action,
		).WithMeta("http_status", httpResp.StatusCode)
	}

	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errors.Transportf(err, "malformed sheet %s response", action)
	}

	if resp.Status == statusError {
		msg := resp.Message
		if msg == "" {
			msg = "unknown error"
		}
		return nil, errors.Transportf(fmt.Errorf("%s", msg), "sheet rejected %s", action)
	}

	return &resp, nil
}
