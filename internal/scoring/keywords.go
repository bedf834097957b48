package scoring

import (
	"fmt"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

// keywordMatch is the outcome of matching one keyword list against a resume.
type keywordMatch struct {
	matched []string
	missing []string
	percent float64
}

// matchKeywords checks each keyword against the resume, case-insensitively.
// An empty keyword list matches 100%: no requirements means nothing to fail.
func matchKeywords(resume *types.ResumeData, keywords []string) keywordMatch {
	if len(keywords) == 0 {
		return keywordMatch{percent: 100}
	}

	searchText := resumeSearchText(resume)
	tokens := tokenSet(searchText)

	m := keywordMatch{}
	for _, kw := range keywords {
		if containsKeyword(searchText, tokens, kw) {
			m.matched = append(m.matched, kw)
		} else {
			m.missing = append(m.missing, kw)
		}
	}
	m.percent = float64(len(m.matched)) / float64(len(keywords)) * 100
	return m
}

// BuildKeywordDetails computes the keyword coverage report for a run.
// Only meaningful when a job description was supplied.
func BuildKeywordDetails(resume *types.ResumeData, keywords *types.JobKeywords) *types.KeywordDetails {
	if keywords.IsEmpty() {
		return nil
	}
	required := matchKeywords(resume, keywords.Required)
	preferred := matchKeywords(resume, keywords.Preferred)
	return &types.KeywordDetails{
		RequiredMatchPercent:  required.percent,
		PreferredMatchPercent: preferred.percent,
		MatchedRequired:       required.matched,
		MissingRequired:       required.missing,
		MatchedPreferred:      preferred.matched,
		MissingPreferred:      preferred.missing,
	}
}

// scoreRequiredKeywords awards the match fraction of required job-description
// keywords. Every missing required keyword is flagged at the parameter's
// declared (critical) severity.
func scoreRequiredKeywords(in Input, _ *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "required_keywords", MaxScore: in.MaxScore}

	if in.Keywords == nil || len(in.Keywords.Required) == 0 {
		res.RawScore = in.MaxScore
		res.Details = append(res.Details, "no required keywords extracted from the job description")
		return res
	}

	m := matchKeywords(in.Resume, in.Keywords.Required)
	res.RawScore = in.MaxScore * m.percent / 100
	res.Details = append(res.Details,
		fmt.Sprintf("matched %d of %d required keywords (%.0f%%)", len(m.matched), len(in.Keywords.Required), m.percent))
	for _, kw := range m.missing {
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: fmt.Sprintf("Missing required keyword: %s", kw),
		})
	}
	return res
}

// scorePreferredKeywords awards the match fraction of preferred keywords.
// Gaps are suggestions, never gates.
func scorePreferredKeywords(in Input, _ *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "preferred_keywords", MaxScore: in.MaxScore}

	if in.Keywords == nil || len(in.Keywords.Preferred) == 0 {
		res.RawScore = in.MaxScore
		res.Details = append(res.Details, "no preferred keywords extracted from the job description")
		return res
	}

	m := matchKeywords(in.Resume, in.Keywords.Preferred)
	res.RawScore = in.MaxScore * m.percent / 100
	res.Details = append(res.Details,
		fmt.Sprintf("matched %d of %d preferred keywords (%.0f%%)", len(m.matched), len(in.Keywords.Preferred), m.percent))
	for _, kw := range m.missing {
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: fmt.Sprintf("Consider adding preferred keyword: %s", kw),
		})
	}
	return res
}
