package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// FetchHint tells the user how the catalogue document must be reachable when
// a load fails. It is surfaced verbatim in the degraded-mode view.
const FetchHint = "the catalogue document must be served over http(s); a bare file path cannot be fetched"

// LoadError is the only modeled failure in the system: the catalogue document
// was unreachable, answered with a non-success status, or was not a JSON
// array of product records.
type LoadError struct {
	Reason string
	cause  error
}

func (e *LoadError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("catalog load failed: %s: %v", e.Reason, e.cause)
	}
	return fmt.Sprintf("catalog load failed: %s", e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.cause
}

// Loader fetches the product catalogue from its external document once at
// startup. It never retries; a failed load requires a process restart.
type Loader struct {
	url    string
	client *http.Client
}

func NewLoader(rawURL string, timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Loader{
		url:    rawURL,
		client: &http.Client{Timeout: timeout},
	}
}

// Load fetches and decodes the catalogue. The payload is trusted per field;
// only the top-level array shape is validated here, every field read
// downstream tolerates absence.
func (l *Loader) Load(ctx context.Context) ([]Product, error) {
	parsed, err := url.Parse(l.url)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, &LoadError{Reason: "catalogue URL is not an http(s) address", cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, &LoadError{Reason: "building catalogue request", cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &LoadError{Reason: "fetching catalogue document", cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &LoadError{Reason: fmt.Sprintf("catalogue fetch returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Reason: "reading catalogue body", cause: err}
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, &LoadError{Reason: "catalogue payload is not a JSON array of products", cause: err}
	}
	return products, nil
}
