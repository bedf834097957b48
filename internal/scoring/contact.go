package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

// contactField describes one contact field's share of the parameter score
// and how serious its absence is.
type contactField struct {
	name     string
	weight   float64
	severity types.Severity
	get      func(*types.ContactInfo) string
}

var contactFields = []contactField{
	{"name", 0.15, types.SeverityWarning, func(c *types.ContactInfo) string { return c.Name }},
	{"email", 0.30, types.SeverityCritical, func(c *types.ContactInfo) string { return c.Email }},
	{"phone", 0.25, types.SeverityWarning, func(c *types.ContactInfo) string { return c.Phone }},
	{"location", 0.10, types.SeveritySuggestion, func(c *types.ContactInfo) string { return c.Location }},
	{"linkedin", 0.10, types.SeveritySuggestion, func(c *types.ContactInfo) string { return c.LinkedIn }},
	{"website", 0.10, types.SeverityInfo, func(c *types.ContactInfo) string { return c.Website }},
}

// scoreContactCompleteness awards the weighted fraction of contact fields
// present. Missing fields are flagged with field-specific severities;
// a resume without an email address is effectively unreachable by an ATS.
func scoreContactCompleteness(in Input, cfg *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "contact_completeness", MaxScore: in.MaxScore}

	present := 0.0
	for _, f := range contactFields {
		if strings.TrimSpace(f.get(&in.Resume.Contact)) != "" {
			present += f.weight
			continue
		}
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message:  fmt.Sprintf("Contact section is missing a %s", f.name),
			Severity: f.severity,
		})
	}

	res.RawScore = in.MaxScore * present
	res.Details = append(res.Details,
		fmt.Sprintf("%.0f%% of contact fields present", present*100))
	return res
}
