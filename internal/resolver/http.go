package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nuamx/internal/port"
)

// maxLookupBody caps how much of a lookup response is read.
const maxLookupBody = 64 * 1024

// HTTPSource queries an external lookup service: GET <endpoint>?rut=<code>.
// A 200 response with either a JSON name field or a non-empty plain-text
// body is a hit; every other outcome is a miss or a source failure.
type HTTPSource struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSource creates an external lookup source with a per-call timeout.
func NewHTTPSource(endpoint string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Tag() string { return "external:" + s.endpoint }

func (s *HTTPSource) Lookup(ctx context.Context, rut string) (string, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return "", fmt.Errorf("resolver.HTTPSource: bad endpoint %q: %w", s.endpoint, err)
	}
	q := u.Query()
	q.Set("rut", rut)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("resolver.HTTPSource: building request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("resolver.HTTPSource: %s: %w", s.endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", port.ErrNoMatch
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLookupBody))
	if err != nil {
		return "", fmt.Errorf("resolver.HTTPSource: reading body: %w", err)
	}

	if name := nameFromBody(body); name != "" {
		return name, nil
	}
	return "", port.ErrNoMatch
}

// nameFromBody extracts a display name from a structured or plain-text
// lookup response.
func nameFromBody(body []byte) string {
	var payload struct {
		Name        string `json:"name"`
		RazonSocial string `json:"razon_social"`
		Nombre      string `json:"nombre"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, n := range []string{payload.Name, payload.RazonSocial, payload.Nombre} {
			if strings.TrimSpace(n) != "" {
				return strings.TrimSpace(n)
			}
		}
		return ""
	}
	return strings.TrimSpace(string(body))
}
