package reddit

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	errs "redditpersona/pkg/errors"
	"redditpersona/pkg/logger"
	"redditpersona/pkg/ratelimit"
	"redditpersona/pkg/retry"
)

// Client fetches Reddit's public JSON endpoints anonymously. A single
// client is shared serially across the whole run; the limiter spaces
// every outgoing request regardless of caller.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	baseURL    string
	limiter    ratelimit.Limiter
	retrier    *retry.Retrier
	logger     logger.Logger
}

// ClientOptions holds the knobs for constructing a Client
type ClientOptions struct {
	BaseURL      string
	UserAgent    string
	Timeout      time.Duration
	RequestDelay time.Duration
	// RequestsPerMinute switches the limiter to a token bucket when positive
	RequestsPerMinute int
	// Retrier is optional; nil disables retries
	Retrier *retry.Retrier
}

// NewClient creates a new Reddit API client
func NewClient(opts ClientOptions, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = BaseURL
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}

	var limiter ratelimit.Limiter
	if opts.RequestsPerMinute > 0 {
		limiter = ratelimit.NewTokenBucket(opts.RequestsPerMinute, time.Minute)
	} else {
		limiter = ratelimit.NewFixedInterval(opts.RequestDelay)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		headers: map[string]string{
			"User-Agent":      userAgent,
			"Accept":          "application/json",
			"Accept-Language": "en-US,en;q=0.9",
		},
		baseURL: baseURL,
		limiter: limiter,
		retrier: opts.Retrier,
		logger:  log,
	}
}

// BaseURL returns the base URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHeader sets a custom header for the client
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// doRequest performs an HTTP request with the configured headers,
// waiting out the rate limit first
func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	c.limiter.Wait()

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      req.URL.String(),
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, &errs.Error{
			Type:    errs.ErrorTypeNetwork,
			Message: fmt.Sprintf("network error: %v", err),
			Code:    0,
		}
	}

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"method":   req.Method,
		"url":      req.URL.String(),
		"status":   resp.StatusCode,
		"duration": duration,
	})

	return resp, nil
}

// Get performs a GET request to the specified URL
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, &errs.Error{
			Type:    errs.ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to create request: %v", err),
			Code:    0,
		}
	}

	return c.doRequest(req)
}

// GetJSON performs a GET request and decodes the JSON response.
// Non-200 statuses and malformed bodies come back as typed errors;
// when a retrier is configured, retryable failures are retried before
// the error surfaces.
func (c *Client) GetJSON(url string, target interface{}) error {
	if c.retrier != nil {
		return c.retrier.Do(func() error {
			return c.getJSON(url, target)
		})
	}
	return c.getJSON(url, target)
}

func (c *Client) getJSON(url string, target interface{}) error {
	resp, err := c.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkResponseStatus(resp); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errs.Error{
			Type:    errs.ErrorTypeNetwork,
			Message: fmt.Sprintf("failed to read response body: %v", err),
			Code:    resp.StatusCode,
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}

		c.logger.ErrorWithFields("failed to parse JSON response", map[string]interface{}{
			"url":          url,
			"status":       resp.StatusCode,
			"error":        err.Error(),
			"body_preview": bodyPreview,
		})
		return &errs.Error{
			Type:    errs.ErrorTypeParsing,
			Message: fmt.Sprintf("failed to parse JSON: %v", err),
			Code:    resp.StatusCode,
		}
	}

	return nil
}

// checkResponseStatus maps HTTP response statuses to typed errors
func (c *Client) checkResponseStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		c.logger.WarnWithFields("resource not found", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
		})
		return &errs.Error{
			Type:    errs.ErrorTypeNotFound,
			Message: "resource not found",
			Code:    resp.StatusCode,
		}
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.WarnWithFields("rate limit exceeded", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
		})
		return &errs.Error{
			Type:    errs.ErrorTypeRateLimit,
			Message: "rate limit exceeded",
			Code:    resp.StatusCode,
		}
	case resp.StatusCode >= 500:
		c.logger.ErrorWithFields("server error", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
		})
		return &errs.Error{
			Type:    errs.ErrorTypeServerError,
			Message: "server error",
			Code:    resp.StatusCode,
		}
	default:
		c.logger.WarnWithFields("unexpected API response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
		})
		return &errs.Error{
			Type:    errs.ErrorTypeUnknown,
			Message: fmt.Sprintf("unexpected status code: %d", resp.StatusCode),
			Code:    resp.StatusCode,
		}
	}
}

// FetchListing fetches one page of a user's listing
func (c *Client) FetchListing(username string, kind ListingKind, limit int, after string) (*Listing, error) {
	url := ListingURL(c.baseURL, username, kind, limit, after)

	c.logger.DebugWithFields("fetching listing page", map[string]interface{}{
		"username": username,
		"kind":     string(kind),
		"after":    after,
	})

	var listing Listing
	if err := c.GetJSON(url, &listing); err != nil {
		return nil, err
	}

	return &listing, nil
}

// FetchAccountInfo fetches account metadata for a user. Any failure is
// soft: the caller proceeds without account info.
func (c *Client) FetchAccountInfo(username string) (*AccountInfo, error) {
	url := AboutURL(c.baseURL, username)

	var response AboutResponse
	if err := c.GetJSON(url, &response); err != nil {
		c.logger.WarnWithFields("failed to fetch account info", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	return &AccountInfo{
		CreatedUTC:   int64(response.Data.CreatedUTC),
		LinkKarma:    response.Data.LinkKarma,
		CommentKarma: response.Data.CommentKarma,
		TotalKarma:   response.Data.TotalKarma,
		IsGold:       response.Data.IsGold,
		IsMod:        response.Data.IsMod,
		Verified:     response.Data.Verified,
	}, nil
}
