package scoring

import (
	"fmt"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Input carries everything a parameter scorer may read. Scorers treat all
// fields as immutable and hold no other state, so they are safe to run in
// parallel.
type Input struct {
	Resume   *types.ResumeData
	Level    types.Level
	Keywords *types.JobKeywords
	MaxScore float64
}

// ScoreFunc is the contract every parameter scorer satisfies: a pure
// function from input and shared config to a fresh ParameterResult. It must
// never fail on missing optional fields; absence is a scoring signal.
type ScoreFunc func(in Input, cfg *config.ScoringConfig) types.ParameterResult

// Parameter is one independently-scored resume quality dimension.
// Severity is the statically declared bucket for its flagged items;
// individual items may override it (e.g. a decorative font is critical
// while an extra font is only a warning inside the same parameter).
type Parameter struct {
	ID       string
	Severity types.Severity
	Score    ScoreFunc
}

// registry lists every parameter in declaration order. Issue and strength
// reporting follow this order, so it must stay stable.
var registry = []Parameter{
	{ID: "contact_completeness", Severity: types.SeverityWarning, Score: scoreContactCompleteness},
	{ID: "formatting", Severity: types.SeverityWarning, Score: scoreFormatting},
	{ID: "date_consistency", Severity: types.SeverityWarning, Score: scoreDateConsistency},
	{ID: "file_format", Severity: types.SeverityWarning, Score: scoreFileFormat},
	{ID: "required_keywords", Severity: types.SeverityCritical, Score: scoreRequiredKeywords},
	{ID: "preferred_keywords", Severity: types.SeveritySuggestion, Score: scorePreferredKeywords},
	{ID: "repetition", Severity: types.SeveritySuggestion, Score: scoreRepetition},
	{ID: "action_verbs", Severity: types.SeveritySuggestion, Score: scoreActionVerbs},
	{ID: "quantification", Severity: types.SeveritySuggestion, Score: scoreQuantification},
	{ID: "experience_depth", Severity: types.SeverityWarning, Score: scoreExperienceDepth},
	{ID: "page_count", Severity: types.SeverityWarning, Score: scorePageCount},
	{ID: "word_density", Severity: types.SeveritySuggestion, Score: scoreWordDensity},
	{ID: "skills_breadth", Severity: types.SeveritySuggestion, Score: scoreSkillsBreadth},
	{ID: "education_presence", Severity: types.SeverityWarning, Score: scoreEducationPresence},
}

// parameterIndex maps parameter IDs to their registry position.
var parameterIndex = buildParameterIndex()

func buildParameterIndex() map[string]int {
	idx := make(map[string]int, len(registry))
	for i, p := range registry {
		idx[p.ID] = i
	}
	return idx
}

// lookupParameter resolves a parameter by ID. An unknown ID is a
// configuration error and is caught at engine construction, never during a
// scoring pass.
func lookupParameter(id string) (Parameter, error) {
	i, ok := parameterIndex[id]
	if !ok {
		return Parameter{}, fmt.Errorf("unknown parameter %q", id)
	}
	return registry[i], nil
}

// declarationOrder returns the registry position of a parameter ID, used
// for stable issue ordering. Unknown IDs sort last.
func declarationOrder(id string) int {
	if i, ok := parameterIndex[id]; ok {
		return i
	}
	return len(registry)
}
