package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

// scorePageCount applies the per-level page-count lookup table. Invalid or
// non-positive page counts degrade to the lowest score, never an error.
func scorePageCount(in Input, cfg *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "page_count", MaxScore: in.MaxScore}

	pages := in.Resume.Metadata.PageCount
	if pages < 1 {
		res.RawScore = 0
		res.Details = append(res.Details, "page count not evaluated: missing or invalid page metadata")
		return res
	}

	res.RawScore = cfg.PageScore(string(in.Level), pages)
	res.Details = append(res.Details,
		fmt.Sprintf("%d pages scores %.0f/%.0f for a %s resume", pages, res.RawScore, in.MaxScore, in.Level))

	if res.RawScore == 0 {
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: fmt.Sprintf("%d pages is far from the expected length for a %s resume", pages, in.Level),
		})
	}
	return res
}

// scoreWordDensity checks words-per-page against the configured band.
// Outside the band the score scales proportionally toward the band edge.
func scoreWordDensity(in Input, cfg *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "word_density", MaxScore: in.MaxScore}

	pages := in.Resume.Metadata.PageCount
	words := in.Resume.Metadata.WordCount
	if pages < 1 || words < 1 {
		res.Details = append(res.Details, "word density not evaluated: missing page or word metadata")
		return res
	}

	perPage := float64(words) / float64(pages)
	minWords := float64(cfg.WordsPerPageMin)
	maxWords := float64(cfg.WordsPerPageMax)

	switch {
	case perPage >= minWords && perPage <= maxWords:
		res.RawScore = in.MaxScore
	case perPage < minWords:
		res.RawScore = in.MaxScore * perPage / minWords
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: fmt.Sprintf("Around %.0f words per page is sparse; aim for %d-%d", perPage, cfg.WordsPerPageMin, cfg.WordsPerPageMax),
		})
	default:
		res.RawScore = in.MaxScore * maxWords / perPage
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: fmt.Sprintf("Around %.0f words per page is dense; aim for %d-%d", perPage, cfg.WordsPerPageMin, cfg.WordsPerPageMax),
		})
	}

	res.Details = append(res.Details, fmt.Sprintf("%.0f words per page across %d pages", perPage, pages))
	return res
}

// scoreSkillsBreadth awards a graduated score against the level-specific
// minimum skill count and flags keyword stuffing past the configured limit.
func scoreSkillsBreadth(in Input, cfg *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "skills_breadth", MaxScore: in.MaxScore}

	count := 0
	for _, s := range in.Resume.Skills {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}

	minimum := cfg.SkillMinimum(string(in.Level))
	res.RawScore = in.MaxScore * scaleToTarget(float64(count), float64(minimum))
	res.Details = append(res.Details,
		fmt.Sprintf("%d skills listed (minimum %d for %s)", count, minimum, in.Level))

	if count < minimum {
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: fmt.Sprintf("Only %d skills listed; a %s resume typically carries at least %d", count, in.Level, minimum),
		})
	}
	if count > cfg.SkillStuffingLimit {
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message:  fmt.Sprintf("%d skills reads as keyword stuffing; keep the list focused", count),
			Severity: types.SeverityWarning,
		})
	}
	return res
}

// scoreEducationPresence awards full credit for at least one education
// entry carrying both degree and institution. A missing graduation date is
// only an informational note.
func scoreEducationPresence(in Input, _ *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "education_presence", MaxScore: in.MaxScore}

	complete := 0
	missingDates := 0
	for i := range in.Resume.Education {
		e := &in.Resume.Education[i]
		if strings.TrimSpace(e.Degree) != "" && strings.TrimSpace(e.Institution) != "" {
			complete++
			if strings.TrimSpace(e.GraduationDate) == "" {
				missingDates++
			}
		}
	}

	if complete > 0 {
		res.RawScore = in.MaxScore
		res.Details = append(res.Details, fmt.Sprintf("%d education entries with degree and institution", complete))
	} else {
		res.RawScore = 0
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: "No education entry lists both a degree and an institution",
		})
	}

	if missingDates > 0 {
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message:  fmt.Sprintf("%d education entries omit a graduation date", missingDates),
			Severity: types.SeverityInfo,
		})
	}
	return res
}
