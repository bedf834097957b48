package scoring

import (
	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Color thresholds for the presentation-only traffic light.
const (
	colorGreenFloor  = 80
	colorYellowFloor = 60
)

// estimatePassProbability maps the aggregated score and keyword coverage
// onto per-platform pass probabilities. Each platform blends the overall
// score with the required-keyword match by its keyword weight, then applies
// its strictness penalty for every point of coverage below the keyword
// floor. The curve constants are heuristic calibration knobs from config,
// not derived values.
func estimatePassProbability(overall float64, kd *types.KeywordDetails, breakdown map[string]types.CategoryBreakdown, cfg *config.ScoringConfig) *types.PassProbability {
	if kd == nil {
		return nil
	}

	platforms := make([]types.PlatformProbability, 0, len(cfg.Platforms))
	sum := 0.0
	for _, curve := range cfg.Platforms {
		p := overall*(1-curve.KeywordWeight) + kd.RequiredMatchPercent*curve.KeywordWeight
		if kd.RequiredMatchPercent < cfg.KeywordFloorPercent {
			p -= (cfg.KeywordFloorPercent - kd.RequiredMatchPercent) * curve.Strictness
		}
		p = clamp(p, 0, 100)
		platforms = append(platforms, types.PlatformProbability{Platform: curve.Name, Probability: p})
		sum += p
	}

	overallProb := 0.0
	if len(platforms) > 0 {
		overallProb = sum / float64(len(platforms))
	}

	return &types.PassProbability{
		Overall:    overallProb,
		Platforms:  platforms,
		Confidence: confidenceLabel(overall, breakdown),
		Color:      colorCode(overallProb),
	}
}

// Categories whose parameters measure the document directly rather than
// inferring quality. Contact presence is excluded: it says nothing about
// how a screener reads the body of the resume.
var directlyMeasured = map[string]bool{
	"keywords":   true,
	"formatting": true,
}

// confidenceLabel grades how much of the achieved score comes from directly
// measured signals versus inferred ones.
func confidenceLabel(overall float64, breakdown map[string]types.CategoryBreakdown) string {
	if overall <= 0 {
		return "low"
	}
	measured := 0.0
	for name, b := range breakdown {
		if directlyMeasured[name] {
			measured += b.Score
		}
	}
	share := measured / overall
	switch {
	case share >= 0.75:
		return "high"
	case share >= 0.5:
		return "moderate"
	default:
		return "low"
	}
}

// colorCode is a direct threshold function of the overall probability,
// used only for presentation.
func colorCode(probability float64) string {
	switch {
	case probability >= colorGreenFloor:
		return "green"
	case probability >= colorYellowFloor:
		return "yellow"
	default:
		return "red"
	}
}
