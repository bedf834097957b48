package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

// scoreRepetition penalizes bullet lists that lean on the same opening verb.
// The first meaningful token of each bullet is counted; any verb appearing
// at least the configured threshold (3) times costs exactly -1, and the
// total penalty floors at the configured cap (-5). A verb used exactly
// twice is never penalized. Penalty-only: maxScore is 0 and rawScore <= 0.
func scoreRepetition(in Input, cfg *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "repetition", MaxScore: in.MaxScore}

	counts := make(map[string]int)
	var order []string
	for _, bullet := range in.Resume.AllBullets() {
		tok := firstMeaningfulToken(bullet, cfg)
		if tok == "" {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	var repeated []string
	for _, tok := range order {
		if counts[tok] >= cfg.RepetitionThreshold {
			repeated = append(repeated, tok)
		}
	}

	penalty := float64(len(repeated))
	if penalty > cfg.RepetitionPenaltyCap {
		penalty = cfg.RepetitionPenaltyCap
	}
	res.RawScore = -penalty

	if len(repeated) > 0 {
		res.Details = append(res.Details,
			fmt.Sprintf("repeated opening verbs: %s", strings.Join(repeated, ", ")))
		for _, verb := range repeated {
			res.Flagged = append(res.Flagged, types.FlaggedItem{
				Message: fmt.Sprintf("%q opens %d bullets; vary your action verbs", verb, counts[verb]),
			})
		}
	}
	return res
}

// scoreActionVerbs awards a graduated score for the fraction of bullets
// that open with a strong action verb, relative to the configured target.
func scoreActionVerbs(in Input, cfg *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "action_verbs", MaxScore: in.MaxScore}

	bullets := in.Resume.AllBullets()
	if len(bullets) == 0 {
		res.Details = append(res.Details, "action verbs not evaluated: no bullets present")
		return res
	}

	strong := 0
	var weakExamples []string
	for _, bullet := range bullets {
		tok := firstMeaningfulToken(bullet, cfg)
		if tok != "" && cfg.IsStrongVerb(tok) {
			strong++
		} else if len(weakExamples) < 3 {
			weakExamples = append(weakExamples, strings.TrimSpace(stripBulletMarker(bullet)))
		}
	}

	ratio := float64(strong) / float64(len(bullets))
	res.RawScore = in.MaxScore * scaleToTarget(ratio, cfg.ActionVerbTarget)
	res.Details = append(res.Details,
		fmt.Sprintf("%d of %d bullets open with a strong action verb", strong, len(bullets)))

	if ratio < cfg.ActionVerbTarget {
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: fmt.Sprintf("%d of %d bullets open with a weak or generic verb; lead with strong action verbs", len(bullets)-strong, len(bullets)),
		})
		for _, ex := range weakExamples {
			res.Details = append(res.Details, fmt.Sprintf("weak opener: %s", truncate(ex, 60)))
		}
	}
	return res
}

var quantifiedPattern = regexp.MustCompile(`[0-9]|%|\$|€|£`)

// scoreQuantification awards a graduated score for the fraction of bullets
// carrying a number, percentage, or currency figure.
func scoreQuantification(in Input, cfg *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "quantification", MaxScore: in.MaxScore}

	bullets := in.Resume.AllBullets()
	if len(bullets) == 0 {
		res.Details = append(res.Details, "quantification not evaluated: no bullets present")
		return res
	}

	quantified := 0
	for _, bullet := range bullets {
		if quantifiedPattern.MatchString(bullet) {
			quantified++
		}
	}

	ratio := float64(quantified) / float64(len(bullets))
	res.RawScore = in.MaxScore * scaleToTarget(ratio, cfg.QuantificationTarget)
	res.Details = append(res.Details,
		fmt.Sprintf("%d of %d bullets carry a measurable result", quantified, len(bullets)))

	if ratio < cfg.QuantificationTarget {
		res.Flagged = append(res.Flagged, types.FlaggedItem{
			Message: "Few bullets quantify their impact; add numbers, percentages, or amounts",
		})
	}
	return res
}

// scoreExperienceDepth is binary: meeting the level-specific minimum count
// of complete entries earns full points, anything less earns zero. The
// boundary case count == minimum scores full.
func scoreExperienceDepth(in Input, cfg *config.ScoringConfig) types.ParameterResult {
	res := types.ParameterResult{ID: "experience_depth", MaxScore: in.MaxScore}

	count := in.Resume.CompleteExperienceCount()
	minimum := cfg.ExperienceMinimum(string(in.Level))

	if count >= minimum {
		res.RawScore = in.MaxScore
		res.Details = append(res.Details,
			fmt.Sprintf("%d complete experience entries (minimum %d for %s)", count, minimum, in.Level))
		return res
	}

	res.RawScore = 0
	res.Flagged = append(res.Flagged, types.FlaggedItem{
		Message: fmt.Sprintf("Only %d complete experience entries; a %s resume needs at least %d with title, company, dates, and impact", count, in.Level, minimum),
	})
	return res
}

// scaleToTarget maps a ratio onto [0,1] where reaching the target earns
// full credit and anything below scales linearly.
func scaleToTarget(ratio, target float64) float64 {
	if target <= 0 || ratio >= target {
		return 1
	}
	return ratio / target
}

// truncate shortens a string for display in details. Counts runes so
// multi-byte text is never cut mid-character.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
