// Package config provides configuration loading and validation for the scoring engine and server.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed defaults.json
var defaultsJSON []byte

//go:embed scoring_config.schema.json
var schemaJSON []byte

// PlatformCurve holds the heuristic pass-probability curve for one named
// ATS platform. The constants are calibration knobs, not derived values.
type PlatformCurve struct {
	Name          string  `json:"name"`
	KeywordWeight float64 `json:"keyword_weight"`
	Strictness    float64 `json:"strictness"`
}

// ParameterWeight binds a parameter to its max score inside a category.
type ParameterWeight struct {
	ID       string  `json:"id"`
	MaxScore float64 `json:"max_score"`
}

// CategoryProfile declares one category of a mode profile: its point pool
// and which parameters feed it.
type CategoryProfile struct {
	Name       string            `json:"name"`
	MaxScore   float64           `json:"max_score"`
	Parameters []ParameterWeight `json:"parameters"`
}

// ModeProfile is the declarative mode -> category -> parameter table.
// Adding a parameter or mode is a table edit, not a new code path.
type ModeProfile struct {
	Categories []CategoryProfile `json:"categories"`
}

// ScoringConfig is the process-wide constant table shared read-only across
// scorer invocations. It is loaded and validated once; any malformed value
// is fatal at load time, never at scoring time.
type ScoringConfig struct {
	RepetitionThreshold  int     `json:"repetition_threshold"`
	RepetitionPenaltyCap float64 `json:"repetition_penalty_cap"`
	KeywordFloorPercent  float64 `json:"keyword_floor_percent"`
	StrengthThreshold    float64 `json:"strength_threshold"`
	ActionVerbTarget     float64 `json:"action_verb_target"`
	QuantificationTarget float64 `json:"quantification_target"`
	WordsPerPageMin      int     `json:"words_per_page_min"`
	WordsPerPageMax      int     `json:"words_per_page_max"`
	MaxFontCount         int     `json:"max_font_count"`
	SkillStuffingLimit   int     `json:"skill_stuffing_limit"`

	ExperienceMinimums map[string]int       `json:"experience_minimums"`
	SkillMinimums      map[string]int       `json:"skill_minimums"`
	PageScores         map[string][]float64 `json:"page_scores"`

	StopWords       []string `json:"stop_words"`
	StrongVerbs     []string `json:"strong_verbs"`
	DecorativeFonts []string `json:"decorative_fonts"`
	SectionHeaders  []string `json:"section_headers"`

	Platforms []PlatformCurve        `json:"platforms"`
	Modes     map[string]ModeProfile `json:"modes"`

	// Derived lookup sets, built once in finalize.
	stopWordSet   map[string]bool
	strongVerbSet map[string]bool
}

// DefaultScoringConfig returns the embedded default configuration.
// The embedded defaults are schema-validated like any override file, so a
// broken build-time default fails loudly at startup.
func DefaultScoringConfig() (*ScoringConfig, error) {
	return parseScoringConfig(defaultsJSON, "embedded defaults")
}

// LoadScoringConfig reads a full scoring configuration from a JSON file.
// The file replaces the defaults entirely; partial overrides are not
// supported, which keeps every run reproducible from one document.
func LoadScoringConfig(path string) (*ScoringConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoring config %s: %w", path, err)
	}
	return parseScoringConfig(data, path)
}

func parseScoringConfig(data []byte, source string) (*ScoringConfig, error) {
	if err := validateAgainstSchema(data, source); err != nil {
		return nil, err
	}

	var cfg ScoringConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scoring config %s: %w", source, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config %s: %w", source, err)
	}

	cfg.finalize()
	return &cfg, nil
}

// validateAgainstSchema checks the raw document against the embedded JSON
// Schema before unmarshaling, so structural errors carry field paths.
func validateAgainstSchema(data []byte, source string) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation of %s failed: %w", source, err)
	}
	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("scoring config %s violates schema:", source))
		for _, re := range result.Errors() {
			sb.WriteString(fmt.Sprintf("\n  %s: %s", re.Field(), re.Description()))
		}
		return fmt.Errorf("%s", sb.String())
	}
	return nil
}

// Validate performs semantic checks the JSON Schema cannot express.
func (c *ScoringConfig) Validate() error {
	if c.WordsPerPageMax <= c.WordsPerPageMin {
		return fmt.Errorf("words_per_page_max (%d) must exceed words_per_page_min (%d)",
			c.WordsPerPageMax, c.WordsPerPageMin)
	}

	for _, level := range []string{"beginner", "intermediary", "senior"} {
		if _, ok := c.ExperienceMinimums[level]; !ok {
			return fmt.Errorf("experience_minimums missing level %q", level)
		}
		if _, ok := c.PageScores[level]; !ok {
			return fmt.Errorf("page_scores missing level %q", level)
		}
	}

	for name, mode := range c.Modes {
		seen := make(map[string]bool)
		for _, cat := range mode.Categories {
			for _, p := range cat.Parameters {
				if seen[p.ID] {
					return fmt.Errorf("mode %q assigns parameter %q to more than one category", name, p.ID)
				}
				seen[p.ID] = true
			}
		}
	}

	return nil
}

// finalize builds the derived lookup sets. Called once at load; the config
// is read-only afterward.
func (c *ScoringConfig) finalize() {
	c.stopWordSet = make(map[string]bool, len(c.StopWords))
	for _, w := range c.StopWords {
		c.stopWordSet[strings.ToLower(w)] = true
	}
	c.strongVerbSet = make(map[string]bool, len(c.StrongVerbs))
	for _, v := range c.StrongVerbs {
		c.strongVerbSet[strings.ToLower(v)] = true
	}
}

// IsStopWord reports whether the lower-cased token is a configured stop word.
func (c *ScoringConfig) IsStopWord(token string) bool {
	return c.stopWordSet[strings.ToLower(token)]
}

// IsStrongVerb reports whether the lower-cased token is a configured strong
// action verb.
func (c *ScoringConfig) IsStrongVerb(token string) bool {
	return c.strongVerbSet[strings.ToLower(token)]
}

// ExperienceMinimum returns the minimum complete-entry count for a level,
// falling back to intermediary for unrecognized levels.
func (c *ScoringConfig) ExperienceMinimum(level string) int {
	if minCount, ok := c.ExperienceMinimums[strings.ToLower(level)]; ok {
		return minCount
	}
	return c.ExperienceMinimums["intermediary"]
}

// SkillMinimum returns the minimum skill count for a level, falling back to
// intermediary for unrecognized levels.
func (c *ScoringConfig) SkillMinimum(level string) int {
	if minCount, ok := c.SkillMinimums[strings.ToLower(level)]; ok {
		return minCount
	}
	return c.SkillMinimums["intermediary"]
}

// PageScore returns the score for a page count at a level. Page counts
// beyond the table and non-positive counts score zero.
func (c *ScoringConfig) PageScore(level string, pages int) float64 {
	table, ok := c.PageScores[strings.ToLower(level)]
	if !ok {
		table = c.PageScores["intermediary"]
	}
	if pages < 1 || pages > len(table) {
		return 0
	}
	return table[pages-1]
}

// Mode returns the profile for a mode name.
func (c *ScoringConfig) Mode(name string) (ModeProfile, bool) {
	m, ok := c.Modes[name]
	return m, ok
}
