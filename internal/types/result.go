package types

// Severity classifies how serious a flagged finding is.
type Severity string

// Severity levels, ordered from most to least serious.
const (
	SeverityCritical   Severity = "critical"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
	SeverityInfo       Severity = "info"
)

// SeverityOrder lists severities in their fixed reporting order.
var SeverityOrder = []Severity{SeverityCritical, SeverityWarning, SeveritySuggestion, SeverityInfo}

// FlaggedItem is a single finding produced by a parameter scorer.
// Severity may be left empty, in which case the parameter's declared
// severity applies.
type FlaggedItem struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity,omitempty"`
}

// ParameterResult is the output of one parameter scorer for one run.
// It is created fresh each pass and never mutated after creation.
type ParameterResult struct {
	ID       string        `json:"id"`
	RawScore float64       `json:"raw_score"`
	MaxScore float64       `json:"max_score"`
	Details  []string      `json:"details,omitempty"`
	Flagged  []FlaggedItem `json:"flagged_items,omitempty"`
}

// Issue is a structured, severity-classified finding surfaced to callers.
// Severity is never encoded inside the message string.
type Issue struct {
	ParameterID string   `json:"parameter_id"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
}

// IssueList groups issues by severity in the fixed reporting order.
type IssueList struct {
	Critical    []Issue `json:"critical"`
	Warnings    []Issue `json:"warnings"`
	Suggestions []Issue `json:"suggestions"`
	Info        []Issue `json:"info"`
}

// Total returns the number of issues across all severities.
func (l *IssueList) Total() int {
	return len(l.Critical) + len(l.Warnings) + len(l.Suggestions) + len(l.Info)
}

// CategoryBreakdown is the aggregated score for one category.
type CategoryBreakdown struct {
	Score    float64  `json:"score"`
	MaxScore float64  `json:"max_score"`
	Issues   []string `json:"issues,omitempty"`
}

// Strength reports a category that scored at or above the strength
// threshold, with the percentage achieved.
type Strength struct {
	Category string  `json:"category"`
	Percent  float64 `json:"percent"`
	Message  string  `json:"message"`
}

// KeywordDetails reports keyword-match coverage for ats_simulation runs.
type KeywordDetails struct {
	RequiredMatchPercent  float64  `json:"required_match_percent"`
	PreferredMatchPercent float64  `json:"preferred_match_percent"`
	MatchedRequired       []string `json:"matched_required,omitempty"`
	MissingRequired       []string `json:"missing_required,omitempty"`
	MatchedPreferred      []string `json:"matched_preferred,omitempty"`
	MissingPreferred      []string `json:"missing_preferred,omitempty"`
}

// PlatformProbability is the estimated pass probability for one named ATS
// platform.
type PlatformProbability struct {
	Platform    string  `json:"platform"`
	Probability float64 `json:"probability"`
}

// PassProbability is the heuristic screening estimate produced in
// ats_simulation mode.
type PassProbability struct {
	Overall    float64               `json:"overall"`
	Platforms  []PlatformProbability `json:"platforms"`
	Confidence string                `json:"confidence"` // high, moderate, low
	Color      string                `json:"color"`      // green, yellow, red (presentation only)
}

// ScoreResult is the terminal, immutable output of one scoring pass.
// A rescore is a brand-new pass producing a brand-new ScoreResult.
type ScoreResult struct {
	OverallScore    float64                      `json:"overall_score"`
	Mode            Mode                         `json:"mode"`
	Breakdown       map[string]CategoryBreakdown `json:"breakdown"`
	Issues          IssueList                    `json:"issues"`
	Strengths       []Strength                   `json:"strengths"`
	KeywordDetails  *KeywordDetails              `json:"keyword_details,omitempty"`
	PassProbability *PassProbability             `json:"pass_probability,omitempty"`
	AutoReject      bool                         `json:"auto_reject"`
}
