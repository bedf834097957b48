package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-scorer/internal/fetch"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

// handleScore scores a resume from the request body. No auth required
// and nothing is persisted.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if req.JobDescription != "" && req.JobDescriptionURL != "" {
		s.errorResponse(w, http.StatusBadRequest, "job_description and job_description_url are mutually exclusive")
		return
	}

	keywords, err := s.resolveKeywords(r.Context(), req.JobDescription, req.JobDescriptionURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.engine.Score(r.Context(), scoring.Request{
		Resume:   &req.Resume,
		Level:    types.ParseLevel(req.Level),
		Mode:     types.ParseMode(req.Mode),
		Keywords: keywords,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// resolveKeywords extracts job keywords from inline text or a fetched
// posting. Returns nil when neither is provided.
func (s *Server) resolveKeywords(ctx context.Context, text, url string) (*types.JobKeywords, error) {
	if url != "" {
		fetched, err := fetch.JobDescription(ctx, url, &fetch.Options{UseBrowser: s.fetchWithBrowser})
		if err != nil {
			return nil, &ErrFetchFailed{URL: url, Err: err}
		}
		text = fetched
	}
	if text == "" {
		return nil, nil
	}
	return parsing.ExtractKeywords(text, s.scoringCfg), nil
}
