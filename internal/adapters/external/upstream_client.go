package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"citydash.app/pkg/errors"
)

const maxUpstreamBodyBytes = 8 << 20

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewUpstreamHTTPClient builds the shared outbound client; a zero timeout means none
func NewUpstreamHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// fetchJSON performs exactly one GET against endpoint and returns the body
// unmodified when it is a 2xx response carrying well-formed JSON.
// Returned errors never contain the request URL, which embeds the credential.
func fetchJSON(ctx context.Context, client HTTPClient, endpoint string, query url.Values, upstream string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.NewUpstreamError(fmt.Sprintf("failed to build %s request", upstream), nil)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewUpstreamError(fmt.Sprintf("failed to call %s", upstream), stripURL(err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxUpstreamBodyBytes))
		return nil, errors.NewUpstreamError(fmt.Sprintf("%s returned status %d", upstream, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBodyBytes))
	if err != nil {
		return nil, errors.NewUpstreamError(fmt.Sprintf("failed to read %s response", upstream), stripURL(err))
	}

	if !json.Valid(body) {
		return nil, errors.NewUpstreamError(fmt.Sprintf("%s returned malformed JSON", upstream), nil)
	}

	return json.RawMessage(body), nil
}

// stripURL drops the *url.Error wrapper so the query string never reaches logs
func stripURL(err error) error {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
