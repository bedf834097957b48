package scoring

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

// classifyIssues walks every flagged item and assigns it to exactly one
// severity bucket. An item without its own severity inherits the
// parameter's declared severity. Output order is fully deterministic:
// severity buckets in the fixed critical -> warning -> suggestion -> info
// order, parameters in registry declaration order within each bucket, and
// items in emission order within each parameter.
func classifyIssues(results []types.ParameterResult) types.IssueList {
	ordered := make([]types.ParameterResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		return declarationOrder(ordered[i].ID) < declarationOrder(ordered[j].ID)
	})

	buckets := make(map[types.Severity][]types.Issue)
	for _, res := range ordered {
		declared := types.SeverityInfo
		if i, err := lookupParameter(res.ID); err == nil {
			declared = i.Severity
		}
		for _, item := range res.Flagged {
			severity := item.Severity
			if severity == "" {
				severity = declared
			}
			buckets[severity] = append(buckets[severity], types.Issue{
				ParameterID: res.ID,
				Severity:    severity,
				Message:     item.Message,
			})
		}
	}

	return types.IssueList{
		Critical:    buckets[types.SeverityCritical],
		Warnings:    buckets[types.SeverityWarning],
		Suggestions: buckets[types.SeveritySuggestion],
		Info:        buckets[types.SeverityInfo],
	}
}

// deriveStrengths reports every category scoring at or above the strength
// threshold of its max, in the mode profile's category order.
func deriveStrengths(profile config.ModeProfile, breakdown map[string]types.CategoryBreakdown, cfg *config.ScoringConfig) []types.Strength {
	var strengths []types.Strength
	for _, cat := range profile.Categories {
		b, ok := breakdown[cat.Name]
		if !ok || b.MaxScore <= 0 {
			continue
		}
		percent := b.Score / b.MaxScore * 100
		if percent >= cfg.StrengthThreshold*100 {
			strengths = append(strengths, types.Strength{
				Category: cat.Name,
				Percent:  percent,
				Message:  fmt.Sprintf("Strong %s: %.0f%% of available points", cat.Name, percent),
			})
		}
	}
	return strengths
}
