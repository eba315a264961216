package handlers

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/sbilibin2017/gw-forex-archive/internal/logger"
	"github.com/sbilibin2017/gw-forex-archive/internal/models"
)

// ProxyPrefix is the path under which the upstream API is exposed.
const ProxyPrefix = "/api/forex"

// NewForexProxyHandler forwards requests under prefix to target. The path
// suffix and the query string are passed through unchanged.
// @Summary Upstream rate API proxy
// @Description Forwards /api/forex/* to the upstream rate API, e.g. /api/forex/?date=15-03-2024 or /api/forex/check-dates?from=05-03-2024&to=15-03-2024
// @Tags proxy
// @Produce json
// @Success 200 {object} models.StandardResponse[[]models.RateRecord] "Upstream response"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 502 {object} models.ErrorResponse "Upstream unreachable"
// @Router /api/forex/ [get]
func NewForexProxyHandler(target *url.URL, prefix string) http.Handler {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Path = trimPrefix(pr.In.URL.Path, prefix)
			pr.Out.URL.RawPath = trimPrefix(pr.In.URL.RawPath, prefix)
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Log.Errorw("forex proxy request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "upstream unavailable"})
		},
	}
}

func trimPrefix(p, prefix string) string {
	if p == "" {
		return ""
	}
	p = strings.TrimPrefix(p, prefix)
	if p == "" {
		return "/"
	}
	return p
}

// RegisterForexProxyHandler mounts the proxy with its middlewares
func RegisterForexProxyHandler(r chi.Router, h http.Handler, mws ...func(http.Handler) http.Handler) {
	r.With(mws...).Handle(ProxyPrefix, h)
	r.With(mws...).Handle(ProxyPrefix+"/*", h)
}
