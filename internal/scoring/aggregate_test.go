package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

func twoParamProfile() config.ModeProfile {
	return config.ModeProfile{
		Categories: []config.CategoryProfile{
			{
				Name:     "content",
				MaxScore: 25,
				Parameters: []config.ParameterWeight{
					{ID: "action_verbs", MaxScore: 10},
					{ID: "repetition", MaxScore: 0},
				},
			},
		},
	}
}

func TestAggregateClampsCategoryAtZero(t *testing.T) {
	results := map[string]types.ParameterResult{
		"action_verbs": {ID: "action_verbs", RawScore: 2, MaxScore: 10},
		"repetition":   {ID: "repetition", RawScore: -5, MaxScore: 0},
	}

	breakdown, overall := aggregate(twoParamProfile(), results)
	assert.Equal(t, 0.0, breakdown["content"].Score)
	assert.Equal(t, 0.0, overall)
}

func TestAggregateClampsCategoryAtMax(t *testing.T) {
	results := map[string]types.ParameterResult{
		"action_verbs": {ID: "action_verbs", RawScore: 40, MaxScore: 10},
		"repetition":   {ID: "repetition", RawScore: 0, MaxScore: 0},
	}

	breakdown, _ := aggregate(twoParamProfile(), results)
	assert.Equal(t, 25.0, breakdown["content"].Score)
}

func TestAggregateCollectsFlaggedMessagesPerCategory(t *testing.T) {
	results := map[string]types.ParameterResult{
		"action_verbs": {
			ID: "action_verbs", RawScore: 5, MaxScore: 10,
			Flagged: []types.FlaggedItem{{Message: "weak openers"}},
		},
		"repetition": {
			ID: "repetition", RawScore: -1,
			Flagged: []types.FlaggedItem{{Message: "repeated verb"}},
		},
	}

	breakdown, overall := aggregate(twoParamProfile(), results)
	assert.Equal(t, 4.0, breakdown["content"].Score)
	assert.Equal(t, 4.0, overall)
	assert.Equal(t, []string{"weak openers", "repeated verb"}, breakdown["content"].Issues)
}

func TestAggregateOverallCapped(t *testing.T) {
	profile := config.ModeProfile{
		Categories: []config.CategoryProfile{
			{Name: "a", MaxScore: 80, Parameters: []config.ParameterWeight{{ID: "action_verbs", MaxScore: 80}}},
			{Name: "b", MaxScore: 80, Parameters: []config.ParameterWeight{{ID: "quantification", MaxScore: 80}}},
		},
	}
	results := map[string]types.ParameterResult{
		"action_verbs":   {ID: "action_verbs", RawScore: 80, MaxScore: 80},
		"quantification": {ID: "quantification", RawScore: 80, MaxScore: 80},
	}

	_, overall := aggregate(profile, results)
	assert.Equal(t, 100.0, overall)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-3, 0, 10))
	assert.Equal(t, 10.0, clamp(12, 0, 10))
	assert.Equal(t, 7.0, clamp(7, 0, 10))
}
