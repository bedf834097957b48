package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/server/middleware"
	"github.com/jonathan/resume-scorer/internal/types"
)

// handleSaveResume persists a parsed resume for the authenticated user.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.SaveResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	rec, err := s.db.SaveResume(r.Context(), userID, req.Name, &req.Resume)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, rec)
}

// handleListResumes lists the authenticated user's saved resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	records, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": records})
}

// handleGetResume returns one saved resume with its full data.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, resumeID, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	rec, err := s.db.GetResume(r.Context(), resumeID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrNotFound{Kind: "resume", ID: resumeID}).Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteResume removes a saved resume and its reports.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, resumeID, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteResume(r.Context(), resumeID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, (&ErrNotFound{Kind: "resume", ID: resumeID}).Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRescoreResume runs a fresh scoring pass over a saved resume and
// persists the report.
func (s *Server) handleRescoreResume(w http.ResponseWriter, r *http.Request) {
	userID, resumeID, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	// An empty body rescores with the default level and mode.
	var req types.RescoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
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

	rec, err := s.db.GetResume(r.Context(), resumeID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrNotFound{Kind: "resume", ID: resumeID}).Error())
		return
	}

	keywords, err := s.resolveKeywords(r.Context(), req.JobDescription, req.JobDescriptionURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.engine.Score(r.Context(), scoring.Request{
		Resume:   rec.Data,
		Level:    types.ParseLevel(req.Level),
		Mode:     types.ParseMode(req.Mode),
		Keywords: keywords,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	report, err := s.db.SaveReport(r.Context(), resumeID, result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, report)
}

// handleListReports lists the score reports for a saved resume.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	userID, resumeID, ok := s.pathResumeID(w, r)
	if !ok {
		return
	}

	records, err := s.db.ListReports(r.Context(), resumeID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"reports": records})
}

// handleGetReport returns one score report with its full result.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	reportID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid report ID")
		return
	}

	rec, err := s.db.GetReport(r.Context(), reportID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrNotFound{Kind: "report", ID: reportID}).Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// pathResumeID extracts the authenticated user and the {id} path value.
// It writes the error response itself when either is missing.
func (s *Server) pathResumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, resumeID, true
}
