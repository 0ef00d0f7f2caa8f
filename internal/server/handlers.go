package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/career-scorer/internal/logger"
	"github.com/spigell/career-scorer/internal/profiles"
	"github.com/spigell/career-scorer/internal/recommend"
	"github.com/spigell/career-scorer/internal/sentiment"
	"github.com/spigell/career-scorer/internal/utils"
)

const (
	msgProfileNotFound = "User profile not found"
	batchConcurrency   = 4
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type atsRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

func (s *Server) handleATSScore(w http.ResponseWriter, r *http.Request) {
	var req atsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.ResumeText) == "" || strings.TrimSpace(req.JobDescription) == "" {
		s.writeError(w, http.StatusBadRequest, "Both resume_text and job_description are required")
		return
	}

	result := s.scorer.Score(req.ResumeText, req.JobDescription)
	s.metrics.ObserveATSScore(result.Score)

	s.logger.Info("ats score computed",
		zap.Float64("score", result.Score),
		zap.Int("matched_keywords", len(result.Matched)),
		zap.String("job_preview", utils.Preview(req.JobDescription, s.previewLen)),
	)

	matched := result.Matched
	if matched == nil {
		matched = []string{}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"ATS Score":        result.Score,
		"Matched Keywords": matched,
	})
}

// feedbackRequest uses pointers so that missing fields can be told apart from
// zero values.
type feedbackRequest struct {
	Rating   *int    `json:"rating"`
	Quality  *string `json:"quality"`
	Comments *string `json:"comments"`
}

func (req feedbackRequest) validate() (sentiment.Feedback, error) {
	if req.Rating == nil || req.Quality == nil || req.Comments == nil {
		return sentiment.Feedback{}, errEmptyInput
	}

	if *req.Rating < sentiment.MinRating || *req.Rating > sentiment.MaxRating {
		return sentiment.Feedback{}, errors.New("rating must be between 1 and 5")
	}

	if _, err := sentiment.ParseQuality(*req.Quality); err != nil {
		return sentiment.Feedback{}, err
	}

	return sentiment.Feedback{
		Rating:   *req.Rating,
		Quality:  *req.Quality,
		Comments: *req.Comments,
	}, nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	feedback, err := req.validate()
	if errors.Is(err, errEmptyInput) {
		s.writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := sentiment.Analyze(feedback)
	s.metrics.ObserveSentiment(result.OverallSentiment, result.Summary)

	s.logger.Info("feedback analyzed",
		zap.Int("rating", feedback.Rating),
		zap.Float64("overall_sentiment", result.OverallSentiment),
		zap.String("summary", result.Summary),
	)

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var profile recommend.Profile
	if err := decodeJSON(r, &profile); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if profile.IsEmpty() {
		s.writeError(w, http.StatusBadRequest, "At least one of interests, skills or projects is required")
		return
	}

	recs := s.rank(profile)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"recommendations": recs,
	})
}

func (s *Server) handleUserRecommendations(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	userID := chi.URLParam(r, "userID")
	profile, err := s.store.Get(r.Context(), userID)
	if errors.Is(err, profiles.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, msgProfileNotFound)
		return
	}
	if err != nil {
		s.storeFailure(w, "get", userID, err)
		return
	}

	recs := s.rank(profile.Ranking())
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"recommendations":  recs,
		"updated_in_store": s.saveRecommendations(r.Context(), userID, recs),
	})
}

type batchRequest struct {
	UserIDs []string `json:"user_ids"`
}

func (s *Server) handleBatchRecommendations(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	var req batchRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries := make([]map[string]any, len(req.UserIDs))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(batchConcurrency)
	for i, userID := range req.UserIDs {
		g.Go(func() error {
			entries[i] = s.batchEntry(ctx, userID)
			return nil
		})
	}
	// batchEntry never fails; every user gets an entry.
	_ = g.Wait()

	results := make(map[string]map[string]any, len(req.UserIDs))
	for i, userID := range req.UserIDs {
		results[userID] = entries[i]
	}

	s.writeJSON(w, http.StatusOK, results)
}

func (s *Server) batchEntry(ctx context.Context, userID string) map[string]any {
	profile, err := s.store.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, profiles.ErrNotFound) {
			s.metrics.ObserveStoreError("get")
			s.logger.Warn("loading profile failed", zap.String(logger.FieldUserID, userID), zap.Error(err))
		}
		return map[string]any{
			"success": false,
			"error":   msgProfileNotFound,
		}
	}

	recs := s.rank(profile.Ranking())
	return map[string]any{
		"success":          true,
		"recommendations":  recs,
		"updated_in_store": s.saveRecommendations(ctx, userID, recs),
	}
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	var patch map[string]any
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := chi.URLParam(r, "userID")
	profile, err := s.store.Update(r.Context(), userID, patch)
	if errors.Is(err, profiles.ErrInvalidPatch) {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.storeFailure(w, "update", userID, err)
		return
	}

	recs := s.rank(profile.Ranking())
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"recommendations":  recs,
		"updated_in_store": s.saveRecommendations(r.Context(), userID, recs),
	})
}

func (s *Server) rank(profile recommend.Profile) []recommend.Recommendation {
	recs := s.recommender.Recommend(profile)
	if len(recs) > 0 {
		s.metrics.ObserveTopDomain(recs[0].DomainID)
		s.logger.Debug("domains ranked",
			zap.String("top_domain", recs[0].DomainID),
			zap.Float64("top_score", recs[0].Score),
		)
	}
	return recs
}

// saveRecommendations reports whether the ranking reached the store. A
// failure is logged but does not fail the request.
func (s *Server) saveRecommendations(ctx context.Context, userID string, recs []recommend.Recommendation) bool {
	if err := s.store.SaveRecommendations(ctx, userID, recs); err != nil {
		s.metrics.ObserveStoreError("save_recommendations")
		s.logger.Warn("storing recommendations failed", zap.String("user_id", userID), zap.Error(err))
		return false
	}
	return true
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "profile store is not configured")
		return false
	}
	return true
}

func (s *Server) storeFailure(w http.ResponseWriter, operation, userID string, err error) {
	s.metrics.ObserveStoreError(operation)
	fields := append(logger.CommonFields("", operation), zap.String(logger.FieldUserID, userID), zap.Error(err))
	s.logger.Error("profile store failure", fields...)
	s.writeError(w, http.StatusInternalServerError, "profile store failure")
}
