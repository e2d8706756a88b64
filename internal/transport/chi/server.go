// Package chi exposes the feed service over HTTP.
package chi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/arXiv/arxiv-feed/internal/domain"
	"github.com/arXiv/arxiv-feed/internal/logger"
	"github.com/arXiv/arxiv-feed/internal/metrics"
	"github.com/arXiv/arxiv-feed/internal/serialize"
)

// FeedService builds serialized feeds.
type FeedService interface {
	Feed(ctx context.Context, rawQuery string, version domain.FeedVersion) (serialize.Feed, error)
	CacheTTL() time.Duration
}

// Pinger checks a dependency for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server routes feed requests.
type Server struct {
	feeds      FeedService
	serializer *serialize.Serializer
	db         Pinger
	logger     *zap.Logger
}

// NewServer creates an HTTP server over the feed service.
func NewServer(feeds FeedService, serializer *serialize.Serializer, db Pinger, log *zap.Logger) *Server {
	return &Server{feeds: feeds, serializer: serializer, db: db, logger: log}
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", s.health)
	r.Get("/rss/{query}", s.feedHandler(domain.FeedVersionRSS20, false))
	r.Get("/atom/{query}", s.feedHandler(domain.FeedVersionAtom10, true))
	// Bare query serves RSS, matching the historical URL shape.
	r.Get("/{query}", s.feedHandler(domain.FeedVersionRSS20, false))
}

func (s *Server) feedHandler(defaultVersion domain.FeedVersion, preferAtom bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawQuery := chi.URLParam(r, "query")
		log := logger.FromContext(r.Context())

		version := defaultVersion
		if v := r.URL.Query().Get("version"); v != "" {
			resolved, err := domain.FeedVersionFrom(v, preferAtom)
			if err != nil {
				s.errorFeed(w, defaultVersion, http.StatusBadRequest, err.Error())
				return
			}
			version = resolved
		}

		feed, err := s.feeds.Feed(r.Context(), rawQuery, version)
		if err != nil {
			if isRequestError(err) {
				s.errorFeed(w, version, http.StatusBadRequest, err.Error())
				return
			}
			log.Error("feed request failed",
				zap.String("query", rawQuery),
				zap.String("version", string(version)),
				zap.Error(err),
			)
			s.errorFeed(w, version, http.StatusInternalServerError,
				"internal error while building the feed")
			return
		}

		w.Header().Set("ETag", feed.ETag)
		w.Header().Set("Cache-Control",
			fmt.Sprintf("max-age=%d", int(s.feeds.CacheTTL().Seconds())))

		if match := r.Header.Get("If-None-Match"); match != "" && match == feed.ETag {
			w.WriteHeader(http.StatusNotModified)
			s.count(version, http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", feed.ContentType)
		if _, err := w.Write(feed.Body); err != nil {
			log.Warn("writing feed response", zap.Error(err))
		}
		s.count(version, http.StatusOK)
	}
}

// errorFeed writes a well-formed feed document carrying the error, so
// feed readers render something instead of choking on bare text.
func (s *Server) errorFeed(w http.ResponseWriter, version domain.FeedVersion, status int, message string) {
	feed := s.serializer.ErrorFeed(message, version, time.Now())
	w.Header().Set("Content-Type", feed.ContentType)
	w.WriteHeader(status)
	_, _ = w.Write(feed.Body)
	s.count(version, status)
}

func (s *Server) count(version domain.FeedVersion, status int) {
	metrics.FeedRequestsTotal.WithLabelValues(string(version), strconv.Itoa(status)).Inc()
}

// isRequestError reports whether the failure was caused by the request
// itself and belongs on a 400.
func isRequestError(err error) bool {
	return errors.Is(err, domain.ErrInvalidQuerySyntax) ||
		errors.Is(err, domain.ErrMalformedStructure) ||
		errors.Is(err, domain.ErrUnknownArchive) ||
		errors.Is(err, domain.ErrUnknownCategory) ||
		errors.Is(err, domain.ErrUnsupportedVersion)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}
