package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jakestbu/nilch/internal/pkg/logger"
	"github.com/jakestbu/nilch/internal/search/types"
)

const (
	searchPath = "/api/search"
	imagesPath = "/api/images"

	defaultUserAgent = "nilch/1.0 (jake.stbu@gmail.com)"
)

// Client talks to the backend aggregation API.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *logger.Logger
}

// New creates a backend client.
func New(cfg *Config, log *logger.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: log,
	}, nil
}

// Search performs exactly one round trip for the state's modality and
// classifies the response body. Sentinel conditions come back as statuses,
// not errors; only transport failures and unparseable bodies error out.
// Retrying is the caller's business.
func (c *Client) Search(ctx context.Context, state types.PageState) (*types.Outcome, error) {
	start := time.Now()

	path, params := buildRequest(state)
	body, err := c.fetch(ctx, path, params)
	if err != nil {
		return nil, err
	}

	outcome, err := classify(state.Modality, body)
	if err != nil {
		c.logger.Error("backend response unclassifiable",
			zap.String("path", path),
			zap.Int("bytes", len(body)),
			zap.Error(err),
		)
		return nil, &types.BackendError{
			Endpoint: path,
			Code:     "BAD_PAYLOAD",
			Message:  "classify response body",
			Err:      err,
		}
	}
	outcome.Took = time.Since(start).Milliseconds()

	c.logger.Debug("backend response classified",
		zap.String("path", path),
		zap.String("status", outcome.Status.String()),
		zap.Int("web", len(outcome.Web)),
		zap.Int("images", len(outcome.Images)),
		zap.Int("videos", len(outcome.Videos)),
		zap.Int64("took_ms", outcome.Took),
	)
	return outcome, nil
}

// buildRequest maps page state onto the backend's wire parameters. The
// images endpoint takes only the query and safe mode; video rides the web
// path behind the videos flag.
func buildRequest(state types.PageState) (string, url.Values) {
	params := url.Values{}
	params.Set("q", state.Query)
	params.Set("safe", string(state.Safe))

	if state.Modality == types.ModalityImage {
		return imagesPath, params
	}

	params.Set("page", strconv.Itoa(state.Page))
	if state.Language != "" {
		params.Set("language", state.Language)
	}
	if state.Engine != "" {
		params.Set("engine", state.Engine)
	}
	if state.Modality == types.ModalityVideo {
		params.Set("videos", "true")
	}
	return searchPath, params
}

func (c *Client) fetch(ctx context.Context, path string, params url.Values) ([]byte, error) {
	apiURL := fmt.Sprintf("%s%s?%s", c.config.BaseURL, path, params.Encode())

	c.logger.Debug("backend request", zap.String("url", apiURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed",
			zap.String("url", apiURL),
			zap.Error(err),
		)
		return nil, &types.BackendError{
			Endpoint: path,
			Code:     "REQUEST_FAILED",
			Message:  "execute request",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	// The wire contract makes no status-code promise; the body alone decides
	// classification. A non-200 error page that is neither a sentinel nor
	// JSON surfaces as BAD_PAYLOAD upstream.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.BackendError{
			Endpoint: path,
			Code:     "READ_FAILED",
			Message:  "read response body",
			Err:      err,
		}
	}
	return body, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
