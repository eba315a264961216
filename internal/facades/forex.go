package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sbilibin2017/gw-forex-archive/internal/logger"
	"github.com/sbilibin2017/gw-forex-archive/internal/metrics"
	"github.com/sbilibin2017/gw-forex-archive/internal/models"
)

var (
	ErrUpstreamStatus = errors.New("upstream returned non-2xx status")
	ErrUnsuccessful   = errors.New("upstream reported an unsuccessful response")
	ErrBodyTooLarge   = errors.New("upstream body too large")
)

const (
	endpointRates      = "rates"
	endpointCheckDates = "check-dates"

	maxBodySize = 4 << 20 // 4 MB
)

// ForexHTTPFacade reads rates and date availability from the upstream rate API.
type ForexHTTPFacade struct {
	client  *http.Client
	baseURL *url.URL
	metrics metrics.Provider
}

// NewForexHTTPFacade creates a facade for the API rooted at baseURL.
func NewForexHTTPFacade(baseURL string, timeout time.Duration, m metrics.Provider) (*ForexHTTPFacade, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream url %q must be absolute", baseURL)
	}
	if m == nil {
		m = metrics.Noop()
	}

	return &ForexHTTPFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: u,
		metrics: m,
	}, nil
}

// GetRates fetches the records published for date (dd-MM-yyyy).
func (f *ForexHTTPFacade) GetRates(ctx context.Context, date string) ([]models.RateRecord, error) {
	return fetchEnvelope[[]models.RateRecord](ctx, f, endpointRates, "", url.Values{"date": {date}})
}

// GetAvailableDates returns the dates in [from, to] that have data, newest first.
func (f *ForexHTTPFacade) GetAvailableDates(ctx context.Context, from, to string) ([]string, error) {
	return fetchEnvelope[[]string](ctx, f, endpointCheckDates, "check-dates", url.Values{
		"from": {from},
		"to":   {to},
	})
}

func fetchEnvelope[T any](ctx context.Context, f *ForexHTTPFacade, endpoint, path string, query url.Values) (T, error) {
	var zero T

	u := *f.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := f.client.Do(req)
	if err != nil {
		f.metrics.IncUpstreamRequests(endpoint, metrics.OutcomeError)
		logger.Log.Errorw("upstream request failed", "endpoint", endpoint, "url", u.String(), "error", err)
		return zero, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize+1))
	if err != nil {
		f.metrics.IncUpstreamRequests(endpoint, metrics.OutcomeError)
		return zero, fmt.Errorf("read upstream body: %w", err)
	}
	if len(body) > maxBodySize {
		f.metrics.IncUpstreamRequests(endpoint, metrics.OutcomeError)
		logger.Log.Errorw("upstream body exceeds limit", "endpoint", endpoint, "limit_bytes", maxBodySize)
		return zero, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, maxBodySize)
	}

	if res.StatusCode > 299 {
		f.metrics.IncUpstreamRequests(endpoint, metrics.OutcomeBadStatus)
		logger.Log.Warnw("upstream returned error status",
			"endpoint", endpoint, "status", res.StatusCode, "body", string(body))
		return zero, fmt.Errorf("%w: %d", ErrUpstreamStatus, res.StatusCode)
	}

	var env models.StandardResponse[T]
	if err := json.Unmarshal(body, &env); err != nil {
		f.metrics.IncUpstreamRequests(endpoint, metrics.OutcomeError)
		return zero, fmt.Errorf("decode upstream %s response: %w", endpoint, err)
	}
	if !env.Success {
		f.metrics.IncUpstreamRequests(endpoint, metrics.OutcomeUnsuccessful)
		return zero, fmt.Errorf("%w: %s", ErrUnsuccessful, env.Message)
	}

	f.metrics.IncUpstreamRequests(endpoint, metrics.OutcomeOK)
	return env.Data, nil
}
