package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/spigell/cv-tailor/internal/ingest"
	"github.com/spigell/cv-tailor/internal/keywords"
	"github.com/spigell/cv-tailor/internal/relevance"
	"github.com/spigell/cv-tailor/internal/selection"
	"github.com/spigell/cv-tailor/internal/utils"
)

type keywordsRequest struct {
	JobPosting string `json:"jobPosting"`
	Limit      *int   `json:"limit,omitempty"`
}

type keywordsResponse struct {
	Keywords []string          `json:"keywords"`
	Core     []string          `json:"core"`
	Optional []string          `json:"optional"`
	Scored   []keywords.Scored `json:"scored"`
}

type matchRequest struct {
	JobPosting          string   `json:"jobPosting"`
	OriginalCV          string   `json:"originalCv"`
	SelectedKeywords    []string `json:"selectedKeywords,omitempty"`
	MustIncludeKeywords []string `json:"mustIncludeKeywords,omitempty"`
}

type matchResponse struct {
	Keywords          []string                `json:"keywords"`
	Matched           []string                `json:"matched"`
	TotalWeight       float64                 `json:"totalWeight"`
	MatchedWeight     float64                 `json:"matchedWeight"`
	MatchPercentage   int                     `json:"matchPercentage"`
	Strength          relevance.Strength      `json:"strength"`
	EstimatedATSBoost int                     `json:"estimatedAtsBoost"`
	Weighted          []relevance.Weighted    `json:"weighted"`
	Insights          relevance.InsightResult `json:"insights"`
	Pool              keywords.Pool           `json:"pool"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req keywordsRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := ingest.Validate(req.JobPosting, s.cfg.MaxInputLength); err != nil {
		s.respondError(w, http.StatusBadRequest, s.validationMessage("jobPosting", err))
		return
	}

	limit := s.cfg.PoolLimit
	if req.Limit != nil {
		if *req.Limit < 1 || *req.Limit > maxPoolLimit {
			s.respondError(w, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d.", maxPoolLimit))
			return
		}
		limit = *req.Limit
	}

	scored := keywords.ExtractScored(req.JobPosting, limit)
	ranked := make([]string, 0, len(scored))
	for _, sc := range scored {
		ranked = append(ranked, sc.Term)
	}
	pool := keywords.NewPool(ranked)

	s.logger.Debug("keywords extracted",
		zap.String("posting", utils.Preview(req.JobPosting, 80)),
		zap.Int("limit", limit),
		zap.Int("keywords", len(pool.All)),
	)

	s.respondJSON(w, http.StatusOK, keywordsResponse{
		Keywords: pool.All,
		Core:     pool.Core,
		Optional: pool.Optional,
		Scored:   scored,
	})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := ingest.Validate(req.JobPosting, s.cfg.MaxInputLength); err != nil {
		s.respondError(w, http.StatusBadRequest, s.validationMessage("jobPosting", err))
		return
	}
	if err := ingest.Validate(req.OriginalCV, s.cfg.MaxInputLength); err != nil {
		s.respondError(w, http.StatusBadRequest, s.validationMessage("originalCv", err))
		return
	}

	if len(req.SelectedKeywords) > maxSelected {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("selectedKeywords must contain at most %d keywords.", maxSelected))
		return
	}

	selected := selection.NewSet(req.SelectedKeywords...)
	selected.Add(selection.SanitizeInclude(req.MustIncludeKeywords)...)

	pool := keywords.BuildPool(req.JobPosting, s.cfg.PoolLimit)
	eval := s.scorer.Evaluate(req.JobPosting, req.OriginalCV, pool, selected.Items)

	s.respondJSON(w, http.StatusOK, matchResponse{
		Keywords:          eval.Result.Keywords,
		Matched:           eval.Result.Matched,
		TotalWeight:       eval.Result.TotalWeight,
		MatchedWeight:     eval.Result.MatchedWeight,
		MatchPercentage:   eval.Result.MatchPercentage,
		Strength:          eval.Strength,
		EstimatedATSBoost: eval.Boost,
		Weighted:          eval.Result.Weighted,
		Insights:          eval.Insights,
		Pool:              eval.Pool,
	})
}

// decode reads a JSON body into dst. It answers the request itself and
// returns false when the body is unusable.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, http.StatusRequestEntityTooLarge, "Request body is too large.")
			return false
		}
		s.respondError(w, http.StatusBadRequest, "Request body must be a JSON object with string fields.")
		return false
	}
	return true
}

func (s *Server) validationMessage(field string, err error) string {
	switch {
	case errors.Is(err, ingest.ErrEmpty):
		return fmt.Sprintf("%s cannot be empty.", field)
	case errors.Is(err, ingest.ErrTooLong):
		return fmt.Sprintf("%s must be at most %d characters.", field, s.cfg.MaxInputLength)
	default:
		return err.Error()
	}
}
