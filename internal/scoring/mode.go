package scoring

import (
	"github.com/jonathan/resume-scorer/internal/types"
)

// resolveMode applies the mode-precondition rules. Requesting
// ats_simulation without any extracted job keywords degrades to
// quality_coach semantics with an info-level note, never an error.
func resolveMode(requested types.Mode, keywords *types.JobKeywords) (types.Mode, *types.Issue) {
	if requested != types.ModeATSSimulation {
		return types.ModeQualityCoach, nil
	}
	if keywords.IsEmpty() {
		return types.ModeQualityCoach, &types.Issue{
			ParameterID: "mode",
			Severity:    types.SeverityInfo,
			Message:     "No job description supplied; scored with general quality criteria instead of ATS simulation",
		}
	}
	return types.ModeATSSimulation, nil
}
