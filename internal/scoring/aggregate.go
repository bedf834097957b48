package scoring

import (
	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

// maxOverallScore caps the final score regardless of how mode profiles are
// configured.
const maxOverallScore = 100

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// aggregate folds parameter results into per-category breakdowns and the
// overall score. Category sums clamp at [0, categoryMax] so penalty-only
// parameters can never drive a category negative; the overall score clamps
// at [0, 100].
func aggregate(profile config.ModeProfile, results map[string]types.ParameterResult) (map[string]types.CategoryBreakdown, float64) {
	breakdown := make(map[string]types.CategoryBreakdown, len(profile.Categories))
	overall := 0.0

	for _, cat := range profile.Categories {
		sum := 0.0
		var issues []string
		for _, pw := range cat.Parameters {
			res, ok := results[pw.ID]
			if !ok {
				continue
			}
			sum += res.RawScore
			for _, item := range res.Flagged {
				issues = append(issues, item.Message)
			}
		}

		score := clamp(sum, 0, cat.MaxScore)
		breakdown[cat.Name] = types.CategoryBreakdown{
			Score:    score,
			MaxScore: cat.MaxScore,
			Issues:   issues,
		}
		overall += score
	}

	return breakdown, clamp(overall, 0, maxOverallScore)
}
