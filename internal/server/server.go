// Package server is the HTTP request layer in front of the scoring
// components. It owns input validation and profile lookups; the scorers only
// ever see validated input.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/spigell/career-scorer/internal/keywords"
	"github.com/spigell/career-scorer/internal/logger"
	"github.com/spigell/career-scorer/internal/metrics"
	"github.com/spigell/career-scorer/internal/profiles"
	"github.com/spigell/career-scorer/internal/recommend"
)

const (
	defaultPreviewLength = 200
	shutdownTimeout      = 5 * time.Second
	maxBodyBytes         = 1 << 20
)

// OverlapScorer scores a resume against a job description.
type OverlapScorer interface {
	Score(resumeText, jobText string) keywords.Result
}

// Recommender ranks career domains for a profile.
type Recommender interface {
	Recommend(profile recommend.Profile) []recommend.Recommendation
}

// ProfileStore supplies profiles and records produced recommendations.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*profiles.Profile, error)
	Update(ctx context.Context, userID string, patch map[string]any) (*profiles.Profile, error)
	SaveRecommendations(ctx context.Context, userID string, recs []recommend.Recommendation) error
}

// Deps aggregates the collaborators of the server. Store may be nil, in which
// case the profile-backed routes answer 503.
type Deps struct {
	Scorer        OverlapScorer
	Recommender   Recommender
	Store         ProfileStore
	Metrics       *metrics.Metrics
	Logger        *zap.Logger
	PreviewLength int
}

type Server struct {
	scorer      OverlapScorer
	recommender Recommender
	store       ProfileStore
	metrics     *metrics.Metrics
	logger      *zap.Logger
	previewLen  int
}

func New(deps Deps) *Server {
	previewLen := deps.PreviewLength
	if previewLen <= 0 {
		previewLen = defaultPreviewLength
	}

	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}

	return &Server{
		scorer:      deps.Scorer,
		recommender: deps.Recommender,
		store:       deps.Store,
		metrics:     m,
		logger:      logger.ForComponent(deps.Logger, "server"),
		previewLen:  previewLen,
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBodyBytes))

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Post("/ats_score", s.handleATSScore)
	r.Post("/analyze", s.handleAnalyze)

	r.Route("/api", func(r chi.Router) {
		r.Post("/recommendations", s.handleRecommend)
		r.Post("/recommendations/batch", s.handleBatchRecommendations)
		r.Get("/recommendations/{userID}", s.handleUserRecommendations)
		r.Put("/profile/{userID}", s.handleUpdateProfile)
	})

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server started", zap.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		elapsed := time.Since(start)
		s.metrics.ObserveRequest(route, status, elapsed)

		s.logger.Debug("request served",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
