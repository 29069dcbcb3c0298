// pkg/registry/client.go
package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/avdata/registry-enrich/pkg/config"
)

// formField is the form field the inquiry endpoint expects the N-NUMBER in.
const formField = "NNumbertxt"

// Client performs N-NUMBER lookups against the FAA aircraft registry.
type Client struct {
	httpClient *http.Client
	url        string
	origin     string
	userAgent  string
	logger     *zap.Logger
}

// NewClient creates a registry client from configuration.
func NewClient(cfg *config.RegistryConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		url:        cfg.URL,
		origin:     originFor(cfg.URL),
		userAgent:  cfg.UserAgent,
		logger:     logger.Named("registry"),
	}
}

// Lookup posts one N-NUMBER to the registry and extracts the field schema
// from the response page. Every call issues exactly one request; nothing is
// cached or batched. Failures come back as *LookupError.
func (c *Client) Lookup(ctx context.Context, nnumber string) (Fields, error) {
	form := url.Values{formField: {nnumber}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &LookupError{NNumber: nnumber, Reason: ReasonRequestFailed, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)
	if c.origin != "" {
		req.Header.Set("Origin", c.origin)
	}

	c.logger.Debug("Posting registry inquiry", zap.String("nNumber", nnumber))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &LookupError{NNumber: nnumber, Reason: ReasonRequestFailed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &LookupError{
			NNumber: nnumber,
			Reason:  ReasonRequestFailed,
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	fields, err := ParsePage(resp.Body)
	if err != nil {
		reason := ReasonParseFailed
		if errors.Is(err, ErrNoRecord) {
			reason = ReasonNoRecord
		}
		return nil, &LookupError{NNumber: nnumber, Reason: reason, Err: err}
	}

	return fields, nil
}

// originFor derives the Origin header value from the endpoint URL. The
// registry turns away cross-site posts that lack it.
func originFor(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
